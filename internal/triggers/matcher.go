// Package triggers implements the lexical safety floor: fixed phrase lists
// checked before any model call. Matching is plain substring containment
// over the full, untruncated text — deterministic and auditable, which is
// the point.
package triggers

import "strings"

type Category string

const (
	CategoryUrgent     Category = "urgent"
	CategoryWithdrawal Category = "withdrawal"
)

// Match is a hit on one of the configured phrase lists.
type Match struct {
	Phrase   string
	Category Category
}

// UrgentPhrases are explicit self-harm/suicide signals. Order matters:
// the first phrase found wins.
var UrgentPhrases = []string{
	"kill myself",
	"end my life",
	"suicide",
	"want to die",
	"give up",
	"i can't go on",
	"life is pointless",
	"i wish i was dead",
	"self harm",
	"cut myself",
}

// WithdrawalPhrases signal depressive withdrawal. They raise the risk tier
// but never the urgent flag.
var WithdrawalPhrases = []string{
	"don't feel much",
	"don't feel anything",
	"tired of people",
	"nothing excites me",
	"same thing every day",
	"no motivation",
	"just okay",
	"don't care",
	"feel empty",
	"numb",
	"pointless",
	"hopeless",
}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'")

func normalize(text string) string {
	return apostrophes.Replace(strings.ToLower(text))
}

// Find returns the first phrase contained in text, urgent list first, then
// withdrawal list, each in declared order. Casing is ignored and curly
// apostrophes are treated as straight ones. No word-boundary checking:
// "suicide" matches inside longer words too. Returns nil when nothing
// matches.
func Find(text string) *Match {
	folded := normalize(text)
	for _, p := range UrgentPhrases {
		if strings.Contains(folded, p) {
			return &Match{Phrase: p, Category: CategoryUrgent}
		}
	}
	for _, p := range WithdrawalPhrases {
		if strings.Contains(folded, p) {
			return &Match{Phrase: p, Category: CategoryWithdrawal}
		}
	}
	return nil
}

// FindUrgent scans the urgent list only. This is the escalation gate's
// input: withdrawal phrases deliberately do not count.
func FindUrgent(text string) *Match {
	folded := normalize(text)
	for _, p := range UrgentPhrases {
		if strings.Contains(folded, p) {
			return &Match{Phrase: p, Category: CategoryUrgent}
		}
	}
	return nil
}
