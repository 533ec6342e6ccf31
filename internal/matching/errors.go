package matching

import "fmt"

// ValidationError represents a malformed success profile or item set,
// rejected before any scoring takes place.
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// FetchError represents a storage failure while loading matching-eligible items.
type FetchError struct {
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error: %s", e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ScoringUnavailableError represents a failure of the external scoring
// service. The call is aborted with no partial matches or gaps.
type ScoringUnavailableError struct {
	Message string
	Cause   error
}

func (e *ScoringUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring unavailable: %s", e.Message)
}

func (e *ScoringUnavailableError) Unwrap() error {
	return e.Cause
}
