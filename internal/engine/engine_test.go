package engine

import (
	"context"
	"strings"
	"testing"

	"wellbeing-ai/internal/analysis"
	"wellbeing-ai/internal/history"
	"wellbeing-ai/internal/reply"
	"wellbeing-ai/internal/store"
	"wellbeing-ai/internal/translate"
)

type memStore struct {
	assignments []store.AssignmentRecord
	chats       []store.ChatExchange
}

func (m *memStore) AppendAssignment(rec store.AssignmentRecord) (string, error) {
	m.assignments = append(m.assignments, rec)
	return "A1", nil
}

func (m *memStore) AppendChat(rec store.ChatExchange) (string, error) {
	m.chats = append(m.chats, rec)
	return "C1", nil
}

func (m *memStore) RecentAssignments(n int) ([]store.AssignmentRecord, error) {
	return m.assignments, nil
}

func (m *memStore) RecentChats(n int) ([]store.ChatExchange, error) {
	return m.chats, nil
}

type stubStrategy struct {
	result analysis.RiskAssessment
	called bool
}

func (s *stubStrategy) Classify(ctx context.Context, textEN string) analysis.RiskAssessment {
	s.called = true
	return s.result
}

type stubReplier struct{ text string }

func (s stubReplier) Reply(ctx context.Context, sessionID, textEN string, a analysis.RiskAssessment) string {
	return s.text
}

func newTestEngine(strategy analysis.Strategy, replier reply.Generator) (*Engine, *memStore) {
	st := &memStore{}
	e := New(translate.NewNormalizer(nil), strategy, replier, st, history.NewManager())
	return e, st
}

func TestChatUrgentPhraseEscalates(t *testing.T) {
	strategy := &stubStrategy{result: analysis.RiskAssessment{Tier: analysis.TierLow, Rationale: "x", Source: analysis.SourceModelBackend}}
	e, st := newTestEngine(strategy, stubReplier{text: "generated reply"})

	res, err := e.SendChatMessage(context.Background(), "s1", "I just want to end my life")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Exchange.UrgentFlag {
		t.Fatal("expected urgent flag")
	}
	if res.Exchange.ReplyEN != reply.EscalationMessage {
		t.Fatalf("escalation must replace generated content, got %q", res.Exchange.ReplyEN)
	}
	if res.Assessment.Tier != analysis.TierHigh || res.Assessment.Source != analysis.SourceLexicalTrigger {
		t.Fatalf("unexpected assessment %+v", res.Assessment)
	}
	if !strings.Contains(res.Assessment.Rationale, "end my life") {
		t.Fatalf("rationale must name the phrase, got %q", res.Assessment.Rationale)
	}
	if strategy.called {
		t.Fatal("trigger match must short-circuit the classifier strategy")
	}
	if len(st.chats) != 1 || !st.chats[0].UrgentFlag {
		t.Fatalf("exchange not persisted correctly: %+v", st.chats)
	}
}

func TestChatWithdrawalIsHighButNotUrgent(t *testing.T) {
	strategy := &stubStrategy{}
	e, _ := newTestEngine(strategy, stubReplier{text: "supportive reply"})

	res, err := e.SendChatMessage(context.Background(), "s1", "I feel kind of empty and don't care about anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Exchange.UrgentFlag {
		t.Fatal("withdrawal phrases must not set the urgent flag")
	}
	if res.Assessment.Tier != analysis.TierHigh {
		t.Fatalf("expected high tier for withdrawal phrase, got %s", res.Assessment.Tier)
	}
	if res.Exchange.ReplyEN != "supportive reply" {
		t.Fatalf("expected generated reply, got %q", res.Exchange.ReplyEN)
	}
}

func TestChatEmptyInputRejected(t *testing.T) {
	e, st := newTestEngine(&stubStrategy{}, stubReplier{text: "r"})

	if _, err := e.SendChatMessage(context.Background(), "s1", "   \n"); err != ErrEmptyInput {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if len(st.chats) != 0 {
		t.Fatal("nothing must be persisted for rejected input")
	}
}

func TestAnalyzeAssignmentPositiveText(t *testing.T) {
	strategy := &stubStrategy{result: analysis.RiskAssessment{
		Tier: analysis.TierLow, Rationale: "positive", Summary: "Happy.", Source: analysis.SourceModelBackend,
	}}
	e, st := newTestEngine(strategy, stubReplier{})

	res, err := e.AnalyzeAssignment(context.Background(), "Had a great day at school, feeling good!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Urgent {
		t.Fatal("positive text must not be urgent")
	}
	if res.Record.Analysis.Tier != analysis.TierLow {
		t.Fatalf("unexpected tier %s", res.Record.Analysis.Tier)
	}
	if !strategy.called {
		t.Fatal("strategy should classify non-trigger text")
	}
	if len(st.assignments) != 1 {
		t.Fatal("assignment must be persisted")
	}
	if st.assignments[0].DetectedLanguage != "en" {
		t.Fatalf("unexpected language %q", st.assignments[0].DetectedLanguage)
	}
}

func TestAnalyzeUrgentBeyondModelTruncation(t *testing.T) {
	// The lexical matcher scans the full text; the model-side 512-char cap
	// must not hide a late urgent phrase.
	e, _ := newTestEngine(&stubStrategy{}, stubReplier{})
	text := strings.Repeat("a", 1000) + " I want to die"

	res, err := e.AnalyzeAssignment(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Urgent {
		t.Fatal("urgent phrase past 512 chars must still escalate")
	}
	if res.Record.Analysis.Source != analysis.SourceLexicalTrigger {
		t.Fatalf("unexpected source %s", res.Record.Analysis.Source)
	}
}

func TestChatEmptyReplyGetsFallback(t *testing.T) {
	e, _ := newTestEngine(&stubStrategy{result: analysis.RiskAssessment{Tier: analysis.TierLow, Rationale: "r"}}, stubReplier{text: ""})

	res, err := e.SendChatMessage(context.Background(), "s1", "just a normal message")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Exchange.ReplyEN != reply.FallbackMessage {
		t.Fatalf("empty generator output must fall back, got %q", res.Exchange.ReplyEN)
	}
}

type fakeTranslator struct{}

func (fakeTranslator) Detect(ctx context.Context, text string) (string, error) {
	if translate.DetectByScript(text) == "ar" {
		return "ar", nil
	}
	return "en", nil
}

func (fakeTranslator) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if dst == "en" {
		return "I want to die", nil
	}
	return "<arabic reply>", nil
}

func TestChatBilingualRoundTrip(t *testing.T) {
	st := &memStore{}
	e := New(translate.NewNormalizer(fakeTranslator{}), &stubStrategy{}, stubReplier{text: "x"}, st, history.NewManager())

	res, err := e.SendChatMessage(context.Background(), "s1", "أريد أن أموت")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Exchange.UrgentFlag {
		t.Fatal("urgent detection must run on the English translation")
	}
	if res.Exchange.DetectedLanguage != "ar" {
		t.Fatalf("unexpected language %q", res.Exchange.DetectedLanguage)
	}
	if res.Exchange.ReplyEN != reply.EscalationMessage {
		t.Fatalf("unexpected English reply %q", res.Exchange.ReplyEN)
	}
	if res.Exchange.ReplyLocal != "<arabic reply>" {
		t.Fatalf("reply must be translated back, got %q", res.Exchange.ReplyLocal)
	}
}

func TestGateDecide(t *testing.T) {
	var g Gate
	if !g.Decide("sometimes I think about suicide") {
		t.Fatal("urgent phrase must fire the gate")
	}
	if g.Decide("everything is hopeless and numb") {
		t.Fatal("withdrawal phrases must not fire the gate")
	}
	if g.Decide("looking forward to the weekend") {
		t.Fatal("neutral text must not fire the gate")
	}
}
