package reply

import (
	"context"

	"wellbeing-ai/internal/analysis"
)

// TemplateGenerator selects a canned supportive reply keyed by the
// dominant detected emotion. No network, always available.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator { return &TemplateGenerator{} }

var emotionReplies = map[string]string{
	"sadness": "It sounds like things have felt heavy lately. I'm here to listen. " +
		"Would you like to tell me more about what's been weighing on you?",
	"anger": "It makes sense to feel frustrated when things don't go the way they should. " +
		"Your feelings are valid. What happened that brought this up?",
	"disgust": "It makes sense to feel frustrated when things don't go the way they should. " +
		"Your feelings are valid. What happened that brought this up?",
	"fear": "That sounds like it may be causing some anxiety, and that's a very human response. " +
		"Would it help to talk through what's worrying you?",
	"joy":  "That's wonderful to hear! It sounds like things are going well for you. Keep doing what works.",
	"love": "That's wonderful to hear! It sounds like things are going well for you. Keep doing what works.",
	"neutral": "Thanks for sharing that with me. If there's anything on your mind, big or small, " +
		"I'm happy to listen.",
}

const genericReply = "I'm listening. Whatever you're going through, you don't have to carry it alone. " +
	"Tell me more whenever you're ready."

func (g *TemplateGenerator) Reply(_ context.Context, _ string, _ string, assessment analysis.RiskAssessment) string {
	if r, ok := emotionReplies[assessment.DominantEmotion]; ok {
		return r
	}
	return genericReply
}
