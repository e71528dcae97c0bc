package nxask_test

import (
	"testing"

	"github.com/fwojciec/nxask"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("show commands are command queries", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, nxask.CommandQuery, nxask.Classify("show bgp summary"))
		assert.Equal(t, nxask.CommandQuery, nxask.Classify("  SHOW VLAN BRIEF  "))
		assert.Equal(t, nxask.CommandQuery, nxask.Classify("show interface ethernet1/1"))
	})

	t.Run("greetings and closings are general", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{
			"hello",
			"Hi there",
			"hey, show me something",
			"good morning",
			"thank you",
			"thanks for the cisco help",
			"bye",
			"how are you?",
		} {
			assert.Equal(t, nxask.GeneralQuery, nxask.Classify(text), text)
		}
	})

	t.Run("short acknowledgements are general only as whole message", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, nxask.GeneralQuery, nxask.Classify("ok"))
		assert.Equal(t, nxask.GeneralQuery, nxask.Classify(" Sure "))
		assert.Equal(t, nxask.CommandQuery, nxask.Classify("ok which nexus command lists vlans"))
	})

	t.Run("exclusions take precedence over command patterns", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, nxask.GeneralQuery, nxask.Classify("tell me about routing"))
		assert.Equal(t, nxask.GeneralQuery, nxask.Classify("tell me about cisco nexus"))
		assert.Equal(t, nxask.GeneralQuery, nxask.Classify("what time is it on the switch"))
		assert.Equal(t, nxask.GeneralQuery, nxask.Classify("help me configure a router"))
		assert.Equal(t, nxask.GeneralQuery, nxask.Classify("explain bgp on cisco"))
	})

	t.Run("explain show is a command query", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, nxask.CommandQuery, nxask.Classify("explain show ip route"))
		assert.Equal(t, nxask.CommandQuery, nxask.Classify("what is show running-config"))
		assert.Equal(t, nxask.CommandQuery, nxask.Classify("how to show mac addresses"))
	})

	t.Run("keywords anywhere mark command queries", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{
			"which cisco feature lists neighbors",
			"nx-os vpc status",
			"nxos vpc status",
			"nexus 9000 fan speed",
			"list the mac table on my switch",
			"router neighbors",
			"which command shows cdp neighbors",
		} {
			assert.Equal(t, nxask.CommandQuery, nxask.Classify(text), text)
		}
	})

	t.Run("leading protocol and config keywords mark command queries", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{
			"configure terminal",
			"config t",
			"interface ethernet1/1",
			"int e1/1",
			"vlan 10",
			"bgp neighbors",
			"ospf interfaces",
			"eigrp topology",
		} {
			assert.Equal(t, nxask.CommandQuery, nxask.Classify(text), text)
		}
	})

	t.Run("ambiguous text defaults to general", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, nxask.GeneralQuery, nxask.Classify("what is the capital of france"))
		assert.Equal(t, nxask.GeneralQuery, nxask.Classify(""))
		assert.Equal(t, nxask.GeneralQuery, nxask.Classify("   "))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		for range 3 {
			assert.Equal(t, nxask.CommandQuery, nxask.Classify("show bgp summary"))
			assert.Equal(t, nxask.GeneralQuery, nxask.Classify("hello"))
		}
	})
}

func TestQueryKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "general", nxask.GeneralQuery.String())
	assert.Equal(t, "cisco_command", nxask.CommandQuery.String())
}
