package models

import "time"

// Analysis outcome constants
const (
	OutcomeAnalyzed = "analyzed"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

// AnalysisOutcome is an aggregate count of analysis requests per channel and outcome.
type AnalysisOutcome struct {
	Channel    string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
