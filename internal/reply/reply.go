// Package reply generates the supportive response shown to the student.
// Whatever the generator would say, the escalation gate's message always
// wins when the current message contains explicit self-harm language.
package reply

import (
	"context"

	"wellbeing-ai/internal/analysis"
)

// EscalationMessage is the fixed urgent response. It unconditionally
// replaces any generated content when the escalation gate fires.
const EscalationMessage = "I hear you and I'm really sorry you're feeling this way. " +
	"This sounds urgent. Please contact local emergency services or a trusted adult right now, " +
	"and consider telling a teacher, parent, or school counselor so they can support you."

// FallbackMessage is returned when the reply backend fails. A student in
// distress must never see an empty or error-shaped reply.
const FallbackMessage = "I'm sorry, I'm having trouble right now. " +
	"Please try again in a moment, or reach out to a counselor directly."

// Generator produces a supportive reply in English for a classified
// message. Implementations must always return non-empty text.
type Generator interface {
	Reply(ctx context.Context, sessionID, textEN string, assessment analysis.RiskAssessment) string
}
