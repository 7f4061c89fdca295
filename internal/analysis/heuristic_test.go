package analysis

import (
	"context"
	"testing"
)

func TestHeuristicPositiveTextIsLow(t *testing.T) {
	s := NewHeuristicStrategy()
	a := s.Classify(context.Background(), "Had a great day at school, feeling good!")
	if a.Tier != TierLow {
		t.Fatalf("expected low tier, got %s (%s)", a.Tier, a.Rationale)
	}
	if a.Source != SourceHeuristicFallback {
		t.Fatalf("unexpected source %s", a.Source)
	}
}

func TestHeuristicNegativePolarityIsMedium(t *testing.T) {
	s := NewHeuristicStrategy()
	a := s.Classify(context.Background(), "I am sad and tired and everything is awful and terrible")
	if a.Tier != TierMedium {
		t.Fatalf("expected medium tier, got %s (%s)", a.Tier, a.Rationale)
	}
}

func TestHeuristicWithdrawalKeywordIsMedium(t *testing.T) {
	s := NewHeuristicStrategy()
	a := s.Classify(context.Background(), "school is fine, there is just no motivation lately")
	if a.Tier != TierMedium {
		t.Fatalf("expected medium tier, got %s (%s)", a.Tier, a.Rationale)
	}
}

func TestHeuristicUrgentKeywordIsHigh(t *testing.T) {
	s := NewHeuristicStrategy()
	a := s.Classify(context.Background(), "sometimes I think about self harm")
	if a.Tier != TierHigh {
		t.Fatalf("expected high tier, got %s", a.Tier)
	}
}

func TestPolarityRange(t *testing.T) {
	if p := Polarity("happy great love"); p != 1 {
		t.Fatalf("expected 1, got %f", p)
	}
	if p := Polarity("sad awful terrible"); p != -1 {
		t.Fatalf("expected -1, got %f", p)
	}
	if p := Polarity("the bus was on time"); p != 0 {
		t.Fatalf("expected 0 for neutral text, got %f", p)
	}
}

func TestTierOrdering(t *testing.T) {
	if !TierHigh.AtLeast(TierMedium) || !TierMedium.AtLeast(TierLow) {
		t.Fatal("tier ordering broken")
	}
	if TierLow.AtLeast(TierMedium) {
		t.Fatal("low must not outrank medium")
	}
}
