package analysis

import (
	"context"
	"strings"
	"testing"
)

type fakeClassifier struct {
	sentiment Prediction
	emotions  []Prediction
	lastInput string
}

func (f *fakeClassifier) Sentiment(ctx context.Context, text string) (Prediction, error) {
	f.lastInput = text
	return f.sentiment, nil
}

func (f *fakeClassifier) Emotions(ctx context.Context, text string) ([]Prediction, error) {
	f.lastInput = text
	return f.emotions, nil
}

func TestLocalModelTruncatesInput(t *testing.T) {
	f := &fakeClassifier{
		sentiment: Prediction{Label: "NEGATIVE", Score: 0.9},
		emotions:  []Prediction{{Label: "neutral", Score: 0.8}},
	}
	s := NewLocalModelStrategy(f)

	long := strings.Repeat("a", 1000)
	s.Classify(context.Background(), long)
	if len(f.lastInput) != maxClassifierInput {
		t.Fatalf("expected classifier input capped at %d chars, got %d", maxClassifierInput, len(f.lastInput))
	}
}

func TestLocalModelDominantSadnessIsHigh(t *testing.T) {
	f := &fakeClassifier{
		sentiment: Prediction{Label: "NEGATIVE", Score: 0.95},
		emotions: []Prediction{
			{Label: "sadness", Score: 0.7},
			{Label: "fear", Score: 0.2},
			{Label: "neutral", Score: 0.05},
		},
	}
	s := NewLocalModelStrategy(f)

	a := s.Classify(context.Background(), "everything feels grey")
	if a.Tier != TierHigh {
		t.Fatalf("expected high tier, got %s (%s)", a.Tier, a.Rationale)
	}
	if a.DominantEmotion != "sadness" {
		t.Fatalf("unexpected dominant emotion %q", a.DominantEmotion)
	}
}

func TestLocalModelJoyIsLow(t *testing.T) {
	f := &fakeClassifier{
		sentiment: Prediction{Label: "POSITIVE", Score: 0.98},
		emotions: []Prediction{
			{Label: "joy", Score: 0.8},
			{Label: "love", Score: 0.1},
			{Label: "neutral", Score: 0.05},
		},
	}
	s := NewLocalModelStrategy(f)

	a := s.Classify(context.Background(), "best day ever")
	if a.Tier != TierLow {
		t.Fatalf("expected low tier, got %s (%s)", a.Tier, a.Rationale)
	}
}

func TestLocalModelNeutralNegativeIsMaskedLowMood(t *testing.T) {
	f := &fakeClassifier{
		sentiment: Prediction{Label: "NEGATIVE", Score: 0.8},
		emotions: []Prediction{
			{Label: "neutral", Score: 0.9},
			{Label: "surprise", Score: 0.05},
		},
	}
	s := NewLocalModelStrategy(f)

	a := s.Classify(context.Background(), "it is what it is")
	if a.Tier != TierMedium {
		t.Fatalf("expected medium tier, got %s (%s)", a.Tier, a.Rationale)
	}
}

func TestLocalModelAngerIsMedium(t *testing.T) {
	f := &fakeClassifier{
		sentiment: Prediction{Label: "NEGATIVE", Score: 0.9},
		emotions: []Prediction{
			{Label: "anger", Score: 0.6},
			{Label: "disgust", Score: 0.3},
		},
	}
	s := NewLocalModelStrategy(f)

	a := s.Classify(context.Background(), "this is so unfair")
	if a.Tier != TierMedium {
		t.Fatalf("expected medium tier, got %s (%s)", a.Tier, a.Rationale)
	}
}

type failingClassifier struct{}

func (failingClassifier) Sentiment(ctx context.Context, text string) (Prediction, error) {
	return Prediction{}, context.DeadlineExceeded
}

func (failingClassifier) Emotions(ctx context.Context, text string) ([]Prediction, error) {
	return nil, context.DeadlineExceeded
}

func TestLocalModelDegradesOnFailure(t *testing.T) {
	s := NewLocalModelStrategy(failingClassifier{})
	a := s.Classify(context.Background(), "anything")
	if a.Tier != TierMedium {
		t.Fatalf("expected medium tier on classifier failure, got %s", a.Tier)
	}
	if a.Rationale == "" {
		t.Fatal("expected non-empty rationale")
	}
}
