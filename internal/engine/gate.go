package engine

import "wellbeing-ai/internal/triggers"

// Gate is the safety-critical escalation decision. Urgent is reserved for
// the narrowest, most literal signal: an urgent-category trigger phrase in
// the current message. Withdrawal phrases and a classifier High tier never
// set it, and prior messages never accumulate into the decision.
type Gate struct{}

// Decide reports whether the current message requires escalation.
func (Gate) Decide(textEN string) bool {
	return triggers.FindUrgent(textEN) != nil
}
