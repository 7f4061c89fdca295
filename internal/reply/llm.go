package reply

import (
	"context"
	"log"
	"strings"

	"wellbeing-ai/internal/analysis"
	"wellbeing-ai/internal/history"
	"wellbeing-ai/internal/llm"
)

// DefaultCounselorPrompt frames the model as a counselor persona. A custom
// prompt file can override it via configuration.
const DefaultCounselorPrompt = "You are a compassionate school counselor. Respond in a calm, supportive, " +
	"non-judgmental way. Offer brief validation, one or two small coping steps, " +
	"and encourage seeking help if needed."

// LLMGenerator builds the reply with a completion call over the session's
// conversation history. On any failure it returns the fixed fallback
// message rather than surfacing the error.
type LLMGenerator struct {
	client       llm.Client
	systemPrompt string
	history      *history.Manager
}

func NewLLMGenerator(client llm.Client, systemPrompt string, hist *history.Manager) *LLMGenerator {
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultCounselorPrompt
	}
	return &LLMGenerator{client: client, systemPrompt: systemPrompt, history: hist}
}

func (g *LLMGenerator) Reply(ctx context.Context, sessionID, textEN string, _ analysis.RiskAssessment) string {
	msgs := []llm.Message{{Role: "system", Content: g.systemPrompt}}
	if g.history != nil {
		msgs = append(msgs, g.history.Get(sessionID)...)
	}
	msgs = append(msgs, llm.Message{Role: "user", Content: textEN})

	resp, err := g.client.Generate(ctx, msgs, llm.Options{MaxTokens: 250, Temperature: 0.7})
	if err != nil {
		log.Printf("reply generation failed: %v", err)
		return FallbackMessage
	}
	out := strings.TrimSpace(resp.Content)
	if out == "" {
		return FallbackMessage
	}
	return out
}
