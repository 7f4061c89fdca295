package analytics

import (
	"encoding/json"
	"fmt"
	"time"

	"wellbeing-ai/internal/analysis"
	"wellbeing-ai/internal/store"
)

// DailyStats aggregates one day of wellbeing activity for the counselor
// dashboard and the scheduled report.
type DailyStats struct {
	Date           string         `json:"date"`
	Assignments    int            `json:"assignments"`
	ChatMessages   int            `json:"chat_messages"`
	UrgentChats    int            `json:"urgent_chats"`
	TierCounts     map[string]int `json:"tier_counts"`
	LanguageCounts map[string]int `json:"language_counts"`
	TriggerMatches int            `json:"trigger_matches"`
}

// AnalyzeDay aggregates records falling on the given UTC day.
func AnalyzeDay(assignments []store.AssignmentRecord, chats []store.ChatExchange, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)
	inDay := func(ts time.Time) bool {
		return !ts.Before(startOfDay) && ts.Before(endOfDay)
	}

	stats := &DailyStats{
		Date:           startOfDay.Format("2006-01-02"),
		TierCounts:     make(map[string]int),
		LanguageCounts: make(map[string]int),
	}

	for _, rec := range assignments {
		if !inDay(rec.Timestamp) {
			continue
		}
		stats.Assignments++
		stats.TierCounts[string(rec.Analysis.Tier)]++
		if rec.DetectedLanguage != "" {
			stats.LanguageCounts[rec.DetectedLanguage]++
		}
		if rec.Analysis.Source == analysis.SourceLexicalTrigger {
			stats.TriggerMatches++
		}
	}

	for _, ex := range chats {
		if !inDay(ex.Timestamp) {
			continue
		}
		stats.ChatMessages++
		if ex.UrgentFlag {
			stats.UrgentChats++
		}
		if ex.DetectedLanguage != "" {
			stats.LanguageCounts[ex.DetectedLanguage]++
		}
	}

	return stats
}

// FormatReport renders the stats for the log-based daily report.
func FormatReport(stats *DailyStats) string {
	return fmt.Sprintf(
		"wellbeing report %s: %d assignments, %d chat messages, %d urgent, tiers %s",
		stats.Date, stats.Assignments, stats.ChatMessages, stats.UrgentChats, formatCounts(stats.TierCounts),
	)
}

func formatCounts(counts map[string]int) string {
	b, err := json.Marshal(counts)
	if err != nil {
		return "{}"
	}
	return string(b)
}
