package pipeline

import (
	"errors"

	"github.com/jonathan/career-tailor/internal/db"
	"github.com/jonathan/career-tailor/internal/markup"
	"github.com/jonathan/career-tailor/internal/matching"
	"github.com/jonathan/career-tailor/internal/rendering"
	"github.com/jonathan/career-tailor/internal/synthesis"
)

// ErrorKind classifies a pipeline failure for the caller.
type ErrorKind string

const (
	// ErrorKindValidation is malformed input, rejected before side effects.
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindDependency is a storage or external-service failure;
	// retryable, details are logged rather than surfaced.
	ErrorKindDependency ErrorKind = "dependency"
	// ErrorKindNotFound is a missing or unowned record; terminal.
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindRender is a data or grammar bug in markup or document
	// encoding, distinct from an infrastructure outage.
	ErrorKindRender ErrorKind = "render"
)

// Status is the structured outcome crossing the pipeline boundary. Failures
// are returned, not panicked, so the orchestrating caller can present them
// without crashing the interaction.
type Status struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
}

// okStatus is the successful outcome.
func okStatus() Status {
	return Status{Success: true}
}

// failStatus classifies err into a caller-facing status. Dependency failures
// surface a generic retryable message; the detailed cause stays internal.
func failStatus(err error) Status {
	var validationErr *matching.ValidationError
	var fetchErr *matching.FetchError
	var scoringErr *matching.ScoringUnavailableError
	var notFoundErr *db.NotFoundError
	var conflictErr *db.ConflictError
	var parseErr *markup.ParseError
	var templateErr *rendering.TemplateError
	var renderErr *rendering.RenderError
	var synthesisErr *synthesis.SynthesisError

	switch {
	case errors.As(err, &validationErr):
		return Status{Error: validationErr.Error(), ErrorKind: ErrorKindValidation}
	case errors.As(err, &notFoundErr):
		return Status{Error: notFoundErr.Error(), ErrorKind: ErrorKindNotFound}
	case errors.As(err, &conflictErr):
		return Status{Error: conflictErr.Error(), ErrorKind: ErrorKindValidation}
	case errors.As(err, &parseErr), errors.As(err, &templateErr), errors.As(err, &renderErr), errors.As(err, &synthesisErr):
		return Status{Error: err.Error(), ErrorKind: ErrorKindRender}
	case errors.As(err, &fetchErr), errors.As(err, &scoringErr):
		return Status{Error: "a required service is unavailable; please retry", ErrorKind: ErrorKindDependency}
	default:
		return Status{Error: "a required service is unavailable; please retry", ErrorKind: ErrorKindDependency}
	}
}
