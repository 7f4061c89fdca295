package analysis

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"wellbeing-ai/internal/triggers"
)

// HeuristicStrategy is the zero-dependency fallback: a small valence
// lexicon plus the shared trigger lists. Fully deterministic, no network.
type HeuristicStrategy struct{}

func NewHeuristicStrategy() *HeuristicStrategy { return &HeuristicStrategy{} }

var positiveWords = map[string]bool{
	"good": true, "great": true, "happy": true, "glad": true, "excited": true,
	"fun": true, "love": true, "loved": true, "enjoy": true, "enjoyed": true,
	"awesome": true, "amazing": true, "wonderful": true, "proud": true,
	"calm": true, "hopeful": true, "grateful": true, "better": true,
	"nice": true, "best": true, "relaxed": true, "confident": true,
}

var negativeWords = map[string]bool{
	"sad": true, "bad": true, "tired": true, "angry": true, "mad": true,
	"hate": true, "hated": true, "lonely": true, "alone": true, "cry": true,
	"crying": true, "scared": true, "afraid": true, "anxious": true,
	"worried": true, "stressed": true, "awful": true, "terrible": true,
	"worse": true, "worst": true, "miserable": true, "upset": true,
	"hurt": true, "broken": true, "lost": true, "dark": true,
}

const mediumPolarityThreshold = -0.2

func (s *HeuristicStrategy) Classify(_ context.Context, textEN string) RiskAssessment {
	if m := triggers.FindUrgent(textEN); m != nil {
		// The pipeline normally short-circuits on triggers before reaching
		// a strategy; this keeps the heuristic safe when used standalone.
		return FromTrigger(m)
	}

	polarity := Polarity(textEN)
	withdrawal := triggers.Find(textEN)

	switch {
	case withdrawal != nil:
		return RiskAssessment{
			Tier:            TierMedium,
			Rationale:       fmt.Sprintf("Concerning phrase %q with polarity %.2f", withdrawal.Phrase, polarity),
			Summary:         "The text contains depressive or withdrawn language.",
			Source:          SourceHeuristicFallback,
			DominantEmotion: "sadness",
		}
	case polarity < mediumPolarityThreshold:
		return RiskAssessment{
			Tier:            TierMedium,
			Rationale:       fmt.Sprintf("Negative polarity %.2f", polarity),
			Summary:         "The text leans negative in tone.",
			Source:          SourceHeuristicFallback,
			DominantEmotion: "sadness",
		}
	case polarity > 0:
		return RiskAssessment{
			Tier:            TierLow,
			Rationale:       fmt.Sprintf("Positive polarity %.2f, no concerning phrases", polarity),
			Summary:         "The text reads as healthy and positive.",
			Source:          SourceHeuristicFallback,
			DominantEmotion: "joy",
		}
	default:
		return RiskAssessment{
			Tier:            TierLow,
			Rationale:       fmt.Sprintf("Neutral polarity %.2f, no concerning phrases", polarity),
			Summary:         "The text shows no clear emotional signal.",
			Source:          SourceHeuristicFallback,
			DominantEmotion: "neutral",
		}
	}
}

// Polarity scores text in [-1, 1] by counting lexicon hits: the balance of
// positive vs negative words over all sentiment-bearing words found.
func Polarity(text string) float64 {
	var pos, neg int
	for _, w := range words(text) {
		if positiveWords[w] {
			pos++
		}
		if negativeWords[w] {
			neg++
		}
	}
	total := pos + neg
	if total == 0 {
		return 0
	}
	return float64(pos-neg) / float64(total)
}

func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}
