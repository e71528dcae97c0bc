package nxask_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/nxask"
	"github.com/stretchr/testify/assert"
)

func TestBuildGroundedPrompt(t *testing.T) {
	t.Parallel()

	t.Run("stuffs every chunk in order", func(t *testing.T) {
		t.Parallel()

		chunks := []*nxask.Chunk{{Content: "first chunk"}, {Content: "second chunk"}, {Content: "third chunk"}}

		prompt := nxask.BuildGroundedPrompt(chunks, "show vlan brief")

		assert.Contains(t, prompt, "<context>\nfirst chunk\n\nsecond chunk\n\nthird chunk\n</context>")
		assert.Less(t, strings.Index(prompt, "first chunk"), strings.Index(prompt, "third chunk"))
	})

	t.Run("ends with the question", func(t *testing.T) {
		t.Parallel()

		prompt := nxask.BuildGroundedPrompt([]*nxask.Chunk{{Content: "c"}}, "show vlan brief")

		assert.True(t, strings.HasSuffix(prompt, "Question: show vlan brief\n\nAnswer:"))
	})

	t.Run("does not contain the system instruction", func(t *testing.T) {
		t.Parallel()

		prompt := nxask.BuildGroundedPrompt(nil, "q")

		assert.NotContains(t, prompt, "You are a Cisco NX-OS expert")
	})
}

func TestBuildGeneralPrompt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "The user said: hello\n\nAnswer:", nxask.BuildGeneralPrompt("hello"))
}

func TestInstructions(t *testing.T) {
	t.Parallel()

	t.Run("grounded instruction asks for five sections", func(t *testing.T) {
		t.Parallel()

		for _, want := range []string{"1. Brief description", "2. Command syntax", "3. Key parameters", "4. Usage examples", "5. Important notes"} {
			assert.Contains(t, nxask.GroundedInstruction, want)
		}
	})

	t.Run("general instruction offers command help", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, nxask.GeneralInstruction, "Cisco show commands")
	})
}
