// Package analysis produces normalized risk assessments of student writing.
// Three interchangeable strategies exist (remote model, local classifier,
// lexical heuristic); one is selected at configuration time.
package analysis

import (
	"context"
	"fmt"

	"wellbeing-ai/internal/triggers"
)

// Tier is the ordinal risk classification, Low < Medium < High.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// rank makes Tier ordered and total for comparisons.
func (t Tier) rank() int {
	switch t {
	case TierHigh:
		return 2
	case TierMedium:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether t is at least as severe as other.
func (t Tier) AtLeast(other Tier) bool { return t.rank() >= other.rank() }

// Source records which component produced an assessment. Consumers must
// read it, never infer it.
type Source string

const (
	SourceLexicalTrigger    Source = "lexical_trigger"
	SourceModelBackend      Source = "model_backend"
	SourceHeuristicFallback Source = "heuristic_fallback"
)

// RiskAssessment is the normalized classifier output.
// Invariant: Tier is High whenever Source is SourceLexicalTrigger, and
// Rationale names the matched phrase.
type RiskAssessment struct {
	Tier      Tier   `json:"risk"`
	Rationale string `json:"reason"`
	Summary   string `json:"summary"`
	Source    Source `json:"source"`
	// DominantEmotion is a best-effort hint for the templated reply
	// generator ("sadness", "joy", ...). Empty when unknown.
	DominantEmotion string `json:"dominant_emotion,omitempty"`
}

// Strategy classifies English text. Implementations never return an error:
// every failure degrades to a usable Medium-tier assessment carrying the
// cause in the rationale.
type Strategy interface {
	Classify(ctx context.Context, textEN string) RiskAssessment
}

// FromTrigger builds the deterministic assessment for a lexical match.
// It short-circuits every probabilistic strategy.
func FromTrigger(m *triggers.Match) RiskAssessment {
	if m.Category == triggers.CategoryUrgent {
		return RiskAssessment{
			Tier:      TierHigh,
			Rationale: fmt.Sprintf("Detected urgent phrase: %q", m.Phrase),
			Summary:   "The text contains explicit signs of severe distress.",
			Source:    SourceLexicalTrigger,
		}
	}
	return RiskAssessment{
		Tier:      TierHigh,
		Rationale: fmt.Sprintf("Detected depressive pattern: %q", m.Phrase),
		Summary:   "The text shows signs of depression or emotional withdrawal.",
		Source:    SourceLexicalTrigger,
		DominantEmotion: "sadness",
	}
}
