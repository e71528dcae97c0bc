package nxask

import (
	"fmt"
	"strings"
)

// Sampling temperatures for the two generation modes.
const (
	GeneralTemperature  float32 = 0.7
	GroundedTemperature float32 = 0
)

// GeneralInstruction is the system instruction for general chat.
const GeneralInstruction = `You are a helpful AI assistant specializing in Cisco networking, but you can also handle general conversations.

Instructions:
- If this is a greeting, respond warmly and mention your Cisco expertise
- If this is a general question, answer helpfully but also mention you specialize in Cisco NX-OS commands
- If this seems unrelated to networking, answer appropriately but offer to help with Cisco commands
- Keep responses friendly, concise, and professional
- Always end by asking if they need help with any Cisco show commands`

// GroundedInstruction is the system instruction for command questions.
const GroundedInstruction = `You are a Cisco NX-OS expert assistant providing comprehensive command documentation.

Instructions:
- Provide a clear, structured response about the Cisco command
- Include the exact command syntax
- Explain the purpose and functionality
- List important parameters/options if applicable
- Provide practical examples when possible
- Add any important notes or warnings
- Format your response clearly with sections when appropriate

Structure your response as follows:
1. Brief description of what the command does
2. Command syntax (exact format)
3. Key parameters (if any)
4. Usage examples (if applicable)
5. Important notes or warnings (if any)`

// BuildGeneralPrompt builds the user prompt for general chat.
func BuildGeneralPrompt(message string) string {
	return fmt.Sprintf("The user said: %s\n\nAnswer:", message)
}

// BuildGroundedPrompt builds the user prompt for a command question with
// every chunk stuffed into the context block.
func BuildGroundedPrompt(chunks []*Chunk, question string) string {
	var sb strings.Builder
	sb.WriteString("<context>\n")
	sb.WriteString(StuffChunks(chunks))
	sb.WriteString("\n</context>\n\n")
	fmt.Fprintf(&sb, "Question: %s\n\nAnswer:", question)
	return sb.String()
}

// StuffChunks joins chunk contents in order, separated by blank lines.
func StuffChunks(chunks []*Chunk) string {
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, c.Content)
	}
	return strings.Join(parts, "\n\n")
}
