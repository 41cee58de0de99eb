package errors

import (
	"fmt"
	"log/slog"
	"net/http"
)

// Error is a catalogue error raised by a subsystem. It implements the
// standard error interface and exposes the catalogue code for
// programmatic handling.
//
// Error values are not modified after creation; the With* methods return
// copies.
type Error struct {
	// Code is the catalogue code (e.g., 1510), or [CodeUnknown].
	Code Code

	// Identifier is the catalogue identifier (e.g., "ERROR_QUERY_PARSE").
	Identifier string

	// Message is the rendered catalogue template.
	Message string

	// Cause is the underlying error, if any.
	Cause error

	// Details holds additional structured context such as the collection
	// name or the offending bind parameter.
	Details map[string]any
}

// Error implements the error interface as "code: message[: cause]".
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%d: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, errors.New(errors.CodeCursorNotFound)) matches any
// cursor-not-found error regardless of message or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t.Code == e.Code
}

// HTTPStatus returns the HTTP status code a REST layer should answer with.
// Not-found and conflict codes map to 404 and 409; otherwise the band
// decides: query errors are client errors (400), everything else is a
// server error (500).
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeDocumentNotFound, CodeCursorNotFound, CodeFileNotFound, CodeQueryCollectionNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeIndexExists:
		return http.StatusConflict
	case CodeIllegalParameter:
		return http.StatusBadRequest
	case CodeReadOnly:
		return http.StatusForbidden
	case CodeQueryOOM:
		return http.StatusInternalServerError
	case CodeQueryKilled:
		return http.StatusGone
	}
	if e.Code.Band() == bandQuery {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// WithDetails returns a copy of e with details merged into its details.
func (e *Error) WithDetails(details map[string]any) *Error {
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	cp := *e
	cp.Details = merged
	return &cp
}

// WithDetail returns a copy of e with a single detail added.
func (e *Error) WithDetail(key string, value any) *Error {
	return e.WithDetails(map[string]any{key: value})
}

// LogValue implements slog.LogValuer, so an *Error logged as an attribute
// expands into a group of its fields.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 5)
	attrs = append(attrs,
		slog.Int("code", int(e.Code)),
		slog.String("identifier", e.Identifier),
		slog.String("message", e.Message),
	)
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	if len(e.Details) > 0 {
		details := make([]any, 0, len(e.Details)*2)
		for k, v := range e.Details {
			details = append(details, k, v)
		}
		attrs = append(attrs, slog.Group("details", details...))
	}
	return slog.GroupValue(attrs...)
}

// Format implements fmt.Formatter. %v and %s print Error(); %+v prints
// every field including the cause chain.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "Error{Code: %d, Identifier: %q, Message: %q", e.Code, e.Identifier, e.Message)
			if len(e.Details) > 0 {
				fmt.Fprintf(s, ", Details: %v", e.Details)
			}
			if e.Cause != nil {
				fmt.Fprintf(s, ", Cause: %+v", e.Cause)
			}
			fmt.Fprint(s, "}")
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
