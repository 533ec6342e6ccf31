package synthesis

import "fmt"

// SynthesisError represents a failure to produce a complete markup document.
// The synthesizer never returns a partial document.
type SynthesisError struct {
	Message string
	Cause   error
}

func (e *SynthesisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("synthesis error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("synthesis error: %s", e.Message)
}

func (e *SynthesisError) Unwrap() error {
	return e.Cause
}
