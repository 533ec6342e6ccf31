package markup

import "fmt"

// ParseError represents markup malformed beyond the parser's tolerance.
// Unrecognized lines inside an otherwise valid document are ignored, not
// fatal; this error is reserved for documents with no recoverable content.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markup parse error: %s", e.Message)
}
