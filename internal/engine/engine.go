// Package engine wires the wellbeing pipeline: bilingual normalization,
// lexical trigger matching, backend classification, the escalation gate,
// reply generation, and durable recording. Surfaces (HTTP, Telegram, MCP)
// call only the two operations here.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"wellbeing-ai/internal/analysis"
	"wellbeing-ai/internal/history"
	"wellbeing-ai/internal/reply"
	"wellbeing-ai/internal/store"
	"wellbeing-ai/internal/translate"
	"wellbeing-ai/internal/triggers"
)

// ErrEmptyInput rejects blank submissions before any backend call.
// Nothing is persisted for them.
var ErrEmptyInput = errors.New("input text is empty")

type Engine struct {
	normalizer *translate.Normalizer
	strategy   analysis.Strategy
	replier    reply.Generator
	gate       Gate
	store      store.Store
	history    *history.Manager
	now        func() time.Time
}

func New(normalizer *translate.Normalizer, strategy analysis.Strategy, replier reply.Generator, st store.Store, hist *history.Manager) *Engine {
	return &Engine{
		normalizer: normalizer,
		strategy:   strategy,
		replier:    replier,
		store:      st,
		history:    hist,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// AnalyzeResult is what the teacher-facing surface shows for one
// assignment.
type AnalyzeResult struct {
	Record store.AssignmentRecord
	// Urgent mirrors the escalation gate for the surface's indicator; the
	// persisted record keeps only the assessment.
	Urgent bool
}

// ChatResult is one completed chat turn.
type ChatResult struct {
	Exchange   store.ChatExchange
	Assessment analysis.RiskAssessment
}

// AnalyzeAssignment classifies a block of student writing and persists the
// analysis. The lexical trigger matcher runs on the full untruncated text
// before any model is consulted; a hit short-circuits the classifier.
func (e *Engine) AnalyzeAssignment(ctx context.Context, rawText string) (AnalyzeResult, error) {
	if strings.TrimSpace(rawText) == "" {
		return AnalyzeResult{}, ErrEmptyInput
	}

	textEN, lang := e.normalizer.ToEnglish(ctx, rawText)

	assessment := e.classify(ctx, textEN)
	urgent := e.gate.Decide(textEN)
	if urgent {
		log.Printf("⚠️ urgent content detected in assignment (lang=%s)", lang)
	}

	rec := store.AssignmentRecord{
		Timestamp:        e.now(),
		OriginalText:     rawText,
		DetectedLanguage: lang,
		Analysis:         assessment,
	}
	id, err := e.store.AppendAssignment(rec)
	if err != nil {
		// Persistence failures are surfaced but never block the result.
		log.Printf("failed to persist assignment record: %v", err)
	}
	rec.ID = id

	return AnalyzeResult{Record: rec, Urgent: urgent}, nil
}

// SendChatMessage runs one chat turn: classify, decide escalation, reply,
// translate back, persist.
func (e *Engine) SendChatMessage(ctx context.Context, sessionID, message string) (ChatResult, error) {
	if strings.TrimSpace(message) == "" {
		return ChatResult{}, ErrEmptyInput
	}

	textEN, lang := e.normalizer.ToEnglish(ctx, message)

	assessment := e.classify(ctx, textEN)
	urgent := e.gate.Decide(textEN)

	var replyEN string
	if urgent {
		// The gate's message replaces whatever the generator would say.
		log.Printf("⚠️ urgent content detected in chat session %s", sessionID)
		replyEN = reply.EscalationMessage
	} else {
		replyEN = e.replier.Reply(ctx, sessionID, textEN, assessment)
		if strings.TrimSpace(replyEN) == "" {
			replyEN = reply.FallbackMessage
		}
	}

	replyLocal := e.normalizer.FromEnglish(ctx, replyEN, lang)

	if e.history != nil {
		e.history.AppendUser(sessionID, textEN)
		e.history.AppendAssistant(sessionID, replyEN)
	}

	exchange := store.ChatExchange{
		Timestamp:        e.now(),
		DetectedLanguage: lang,
		MessageOriginal:  message,
		MessageEN:        textEN,
		ReplyEN:          replyEN,
		ReplyLocal:       replyLocal,
		UrgentFlag:       urgent,
	}
	id, err := e.store.AppendChat(exchange)
	if err != nil {
		log.Printf("failed to persist chat exchange: %v", err)
	}
	exchange.ID = id

	return ChatResult{Exchange: exchange, Assessment: assessment}, nil
}

// ResetSession clears the in-memory conversation context.
func (e *Engine) ResetSession(sessionID string) {
	if e.history != nil {
		e.history.Reset(sessionID)
	}
}

// RecentAssignments exposes the dashboard read path.
func (e *Engine) RecentAssignments(n int) ([]store.AssignmentRecord, error) {
	return e.store.RecentAssignments(n)
}

func (e *Engine) RecentChats(n int) ([]store.ChatExchange, error) {
	return e.store.RecentChats(n)
}

// classify applies the deterministic safety floor first: any trigger match
// (urgent or withdrawal) yields the lexical High assessment and the
// configured strategy is never consulted.
func (e *Engine) classify(ctx context.Context, textEN string) analysis.RiskAssessment {
	if m := triggers.Find(textEN); m != nil {
		return analysis.FromTrigger(m)
	}
	a := e.strategy.Classify(ctx, textEN)
	if a.Rationale == "" {
		// Strategies degrade rather than fail; an empty rationale would
		// break the assessment contract downstream.
		a.Rationale = fmt.Sprintf("no rationale from %s", a.Source)
	}
	return a
}
