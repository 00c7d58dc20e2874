package resume

import "fmt"

// ParsingError records the extraction stage that aborted a parse
type ParsingError struct {
	Stage string
	Cause error
}

func (e *ParsingError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("parsing failed during %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("parsing failed: %v", e.Cause)
}

func (e *ParsingError) Unwrap() error {
	return e.Cause
}
