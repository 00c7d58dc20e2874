package ranking

import "fmt"

// ScoringError represents a candidate that could not be scored.
// Inside a batch it is recorded in the degraded result instead of being returned.
type ScoringError struct {
	CandidateID string
	Message     string
	Cause       error
}

func (e *ScoringError) Error() string {
	prefix := "scoring error"
	if e.CandidateID != "" {
		prefix = fmt.Sprintf("scoring error for candidate %s", e.CandidateID)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}
