// Package store is the append-only durable log of assignment analyses and
// chat exchanges. Records are immutable once appended; ids are sequential
// per kind, not UUIDs, so the dashboard can show "A3" and "C7".
package store

import (
	"time"

	"wellbeing-ai/internal/analysis"
)

// AssignmentRecord is one analyze action. Created once, never mutated.
type AssignmentRecord struct {
	ID               string                  `json:"id"`
	Timestamp        time.Time               `json:"timestamp"`
	OriginalText     string                  `json:"original_text"`
	DetectedLanguage string                  `json:"detected_language"`
	Analysis         analysis.RiskAssessment `json:"analysis"`
}

// ChatExchange is one chat turn: the student's message in both languages,
// the reply in both languages, and whether the escalation gate fired.
type ChatExchange struct {
	ID               string    `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	DetectedLanguage string    `json:"detected_language"`
	MessageOriginal  string    `json:"message_original"`
	MessageEN        string    `json:"message_en"`
	ReplyEN          string    `json:"reply_en"`
	ReplyLocal       string    `json:"reply_local"`
	UrgentFlag       bool      `json:"urgent_flag"`
}

// Store abstracts persistence of the two record sequences. Implementations
// must serialize appends: each append is a read-modify-write over the whole
// store.
type Store interface {
	AppendAssignment(rec AssignmentRecord) (string, error)
	AppendChat(rec ChatExchange) (string, error)
	RecentAssignments(n int) ([]AssignmentRecord, error)
	RecentChats(n int) ([]ChatExchange, error)
}
