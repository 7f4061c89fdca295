package analysis

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
)

// maxClassifierInput caps text passed to the local models. Longer text is
// silently truncated before classification — a known precision loss that is
// part of this strategy's documented behavior. The lexical trigger matcher
// always scans the full text; only this strategy truncates.
const maxClassifierInput = 512

// Prediction is one label with its score.
type Prediction struct {
	Label string
	Score float64
}

// EmotionClassifier is the local-model collaborator: a pre-loaded sentiment
// model (binary polarity + confidence) and an emotion model (distribution
// over a fixed label set).
type EmotionClassifier interface {
	Sentiment(ctx context.Context, text string) (Prediction, error)
	Emotions(ctx context.Context, text string) ([]Prediction, error)
}

// LocalModelStrategy interprets the top emotion labels of a local
// classifier pipeline. Its native output is an emotion reading; the tier
// mapping is this package's policy: dominant sadness is High, other
// negative emotions Medium, positive emotions Low.
type LocalModelStrategy struct {
	classifier EmotionClassifier
}

func NewLocalModelStrategy(classifier EmotionClassifier) *LocalModelStrategy {
	return &LocalModelStrategy{classifier: classifier}
}

func (s *LocalModelStrategy) Classify(ctx context.Context, textEN string) RiskAssessment {
	text := textEN
	if len(text) > maxClassifierInput {
		text = text[:maxClassifierInput]
	}

	sentiment, err := s.classifier.Sentiment(ctx, text)
	if err != nil {
		log.Printf("sentiment classification failed: %v", err)
		return RiskAssessment{
			Tier:      TierMedium,
			Rationale: fmt.Sprintf("error: %v", err),
			Summary:   "Fallback analysis",
			Source:    SourceModelBackend,
		}
	}

	emotions, err := s.classifier.Emotions(ctx, text)
	if err != nil {
		log.Printf("emotion classification failed: %v", err)
		return RiskAssessment{
			Tier:      TierMedium,
			Rationale: fmt.Sprintf("error: %v", err),
			Summary:   "Fallback analysis",
			Source:    SourceModelBackend,
		}
	}

	return interpret(sentiment, topN(emotions, 3))
}

func topN(preds []Prediction, n int) []Prediction {
	sorted := make([]Prediction, len(preds))
	copy(sorted, preds)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func interpret(sentiment Prediction, top []Prediction) RiskAssessment {
	labels := make([]string, 0, len(top))
	has := map[string]bool{}
	for _, p := range top {
		l := strings.ToLower(p.Label)
		labels = append(labels, l)
		has[l] = true
	}
	dominant := ""
	if len(labels) > 0 {
		dominant = labels[0]
	}
	negSentiment := strings.EqualFold(sentiment.Label, "negative")
	basis := fmt.Sprintf("top emotions %v, sentiment %s (%.2f)",
		labels, strings.ToLower(sentiment.Label), sentiment.Score)

	switch {
	case dominant == "sadness":
		return RiskAssessment{
			Tier:            TierHigh,
			Rationale:       "Dominant sadness suggests fatigue or mild depression; " + basis,
			Summary:         "The text shows signs of fatigue or mild depression.",
			Source:          SourceModelBackend,
			DominantEmotion: "sadness",
		}
	case has["sadness"]:
		return RiskAssessment{
			Tier:            TierMedium,
			Rationale:       "Sadness among top emotions; " + basis,
			Summary:         "The text carries an undertone of sadness.",
			Source:          SourceModelBackend,
			DominantEmotion: dominant,
		}
	case has["anger"] || has["disgust"]:
		return RiskAssessment{
			Tier:            TierMedium,
			Rationale:       "Anger or disgust suggests frustration; " + basis,
			Summary:         "The text expresses frustration.",
			Source:          SourceModelBackend,
			DominantEmotion: dominant,
		}
	case has["fear"]:
		return RiskAssessment{
			Tier:            TierMedium,
			Rationale:       "Fear suggests anxiety; " + basis,
			Summary:         "The text expresses anxiety.",
			Source:          SourceModelBackend,
			DominantEmotion: "fear",
		}
	case has["joy"] || has["love"]:
		return RiskAssessment{
			Tier:            TierLow,
			Rationale:       "Positive emotions dominate; " + basis,
			Summary:         "The text reflects positive wellbeing.",
			Source:          SourceModelBackend,
			DominantEmotion: dominant,
		}
	case has["neutral"] && negSentiment:
		return RiskAssessment{
			Tier:            TierMedium,
			Rationale:       "Neutral affect over negative sentiment may mask low mood; " + basis,
			Summary:         "The text may be masking a low mood.",
			Source:          SourceModelBackend,
			DominantEmotion: "neutral",
		}
	default:
		return RiskAssessment{
			Tier:            TierLow,
			Rationale:       "Mixed tone without dominant negative emotion; " + basis,
			Summary:         "The text shows a mixed emotional tone.",
			Source:          SourceModelBackend,
			DominantEmotion: dominant,
		}
	}
}
