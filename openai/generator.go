// Package openai implements nxask.Generator with the OpenAI chat
// completions API.
package openai

import (
	"context"
	"math"

	"github.com/fwojciec/nxask"
	"github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT4o

// Ensure Generator implements nxask.Generator at compile time.
var _ nxask.Generator = (*Generator)(nil)

// Generator implements nxask.Generator using OpenAI chat completions.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *openai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// NewClient creates an API client. A non-empty baseURL replaces the default
// endpoint, which also allows OpenAI-compatible providers.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// GenerateGeneral answers a general chat message.
func (g *Generator) GenerateGeneral(ctx context.Context, message string) (string, error) {
	return g.generate(ctx, BuildGeneralRequest(g.model, message))
}

// GenerateGrounded answers a command question from documentation chunks.
func (g *Generator) GenerateGrounded(ctx context.Context, chunks []*nxask.Chunk, question string) (string, error) {
	if question == "" {
		return "", nxask.Errorf(nxask.EINVALID, "question required")
	}
	return g.generate(ctx, BuildGroundedRequest(g.model, chunks, question))
}

func (g *Generator) generate(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nxask.Errorf(nxask.EINTERNAL, "openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// BuildGeneralRequest returns the chat completion request for general chat.
func BuildGeneralRequest(model, message string) openai.ChatCompletionRequest {
	return buildRequest(model, nxask.GeneralInstruction, nxask.BuildGeneralPrompt(message), nxask.GeneralTemperature)
}

// BuildGroundedRequest returns the chat completion request for command questions.
func BuildGroundedRequest(model string, chunks []*nxask.Chunk, question string) openai.ChatCompletionRequest {
	return buildRequest(model, nxask.GroundedInstruction, nxask.BuildGroundedPrompt(chunks, question), nxask.GroundedTemperature)
}

func buildRequest(model, instruction, prompt string, temp float32) openai.ChatCompletionRequest {
	// Temperature is omitempty in the request type; a literal zero would be
	// dropped and the API would apply its default of 1.
	if temp == 0 {
		temp = math.SmallestNonzeroFloat32
	}
	return openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temp,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
}
