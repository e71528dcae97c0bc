// Package gemini implements nxask.Generator and nxask.TokenCounter with
// Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/nxask"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements nxask.Generator at compile time.
var _ nxask.Generator = (*Generator)(nil)

// Generator implements nxask.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// GenerateGeneral answers a general chat message.
func (g *Generator) GenerateGeneral(ctx context.Context, message string) (string, error) {
	return g.generate(ctx, nxask.BuildGeneralPrompt(message), BuildGeneralConfig())
}

// GenerateGrounded answers a command question from documentation chunks.
func (g *Generator) GenerateGrounded(ctx context.Context, chunks []*nxask.Chunk, question string) (string, error) {
	if question == "" {
		return "", nxask.Errorf(nxask.EINVALID, "question required")
	}
	return g.generate(ctx, nxask.BuildGroundedPrompt(chunks, question), BuildGroundedConfig())
}

func (g *Generator) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nxask.Errorf(nxask.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildGeneralConfig returns the GenerateContentConfig for general chat.
func BuildGeneralConfig() *genai.GenerateContentConfig {
	return buildConfig(nxask.GeneralInstruction, nxask.GeneralTemperature)
}

// BuildGroundedConfig returns the GenerateContentConfig for command questions.
func BuildGroundedConfig() *genai.GenerateContentConfig {
	return buildConfig(nxask.GroundedInstruction, nxask.GroundedTemperature)
}

func buildConfig(instruction string, temp float32) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature: &temp,
	}
}
