package triggers

import (
	"strings"
	"testing"
)

func TestFindUrgentFirstMatchWins(t *testing.T) {
	// Both lists would match; the urgent list is scanned first.
	m := Find("I feel empty and I want to die")
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Category != CategoryUrgent || m.Phrase != "want to die" {
		t.Fatalf("unexpected match: %+v", m)
	}
}

func TestFindWithdrawal(t *testing.T) {
	m := Find("I feel kind of empty and don't care about anything")
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Category != CategoryWithdrawal || m.Phrase != "don't care" {
		t.Fatalf("unexpected match: %+v", m)
	}
}

func TestFindCaseInsensitive(t *testing.T) {
	m := Find("I Just Want To END MY LIFE")
	if m == nil || m.Phrase != "end my life" {
		t.Fatalf("unexpected match: %+v", m)
	}
}

func TestFindCurlyApostrophe(t *testing.T) {
	m := Find("I don’t feel much these days")
	if m == nil {
		t.Fatal("expected curly-apostrophe variant to match")
	}
	if m.Phrase != "don't feel much" {
		t.Fatalf("unexpected phrase %q", m.Phrase)
	}
}

func TestFindSubstringInsideWord(t *testing.T) {
	// Substring containment, not token matching.
	if m := Find("reading about suicidewatch forums"); m == nil || m.Phrase != "suicide" {
		t.Fatalf("expected substring match, got %+v", m)
	}
}

func TestFindScansFullText(t *testing.T) {
	// The matcher never truncates; only model strategies cap input length.
	text := strings.Repeat("a", 1000) + " I want to die"
	m := FindUrgent(text)
	if m == nil || m.Phrase != "want to die" {
		t.Fatalf("expected match past the 512-char model cap, got %+v", m)
	}
}

func TestFindUrgentIgnoresWithdrawal(t *testing.T) {
	if m := FindUrgent("everything feels numb and hopeless"); m != nil {
		t.Fatalf("withdrawal phrases must not register as urgent, got %+v", m)
	}
}

func TestFindNoMatch(t *testing.T) {
	if m := Find("Had a great day at school, feeling good!"); m != nil {
		t.Fatalf("expected no match, got %+v", m)
	}
}
