package errors

import (
	"fmt"

	"github.com/StricklySoft/errcatalog/pkg/registry"
)

// New creates an Error for code, rendering the catalogue template with
// args. Missing arguments leave "%s" markers in the message; surplus
// arguments are ignored.
//
// If code is not in the catalogue, the returned Error carries that code,
// an empty identifier, and a message naming the unknown code.
//
// Example:
//
//	err := errors.New(errors.CodeQueryParse, "unexpected token")
//	// 1510: parse error: unexpected token
func New(code Code, args ...any) *Error {
	def, ok := registry.Default().LookupByCode(int(code))
	if !ok {
		return &Error{
			Code:    code,
			Message: fmt.Sprintf("unknown error code %d", int(code)),
		}
	}
	return fromDefinition(def, args)
}

// FromIdentifier creates an Error for the catalogue entry named identifier.
// An identifier missing from the catalogue yields an Error with
// [CodeUnknown] and the identifier preserved.
//
// Example:
//
//	err := errors.FromIdentifier("ERROR_CURSOR_NOT_FOUND")
func FromIdentifier(identifier string, args ...any) *Error {
	def, ok := registry.Default().LookupByIdentifier(identifier)
	if !ok {
		return &Error{
			Code:       CodeUnknown,
			Identifier: identifier,
			Message:    fmt.Sprintf("unknown error identifier %q", identifier),
		}
	}
	return fromDefinition(def, args)
}

// Wrap creates an Error for code with err as its cause.
// If err is nil, Wrap returns nil.
//
// Example:
//
//	if err := f.Sync(); err != nil {
//	    return errors.Wrap(err, errors.CodeMsyncFailed)
//	}
func Wrap(err error, code Code, args ...any) *Error {
	if err == nil {
		return nil
	}
	e := New(code, args...)
	e.Cause = err
	return e
}

func fromDefinition(def registry.Definition, args []any) *Error {
	return &Error{
		Code:       Code(def.Code),
		Identifier: def.Identifier,
		Message:    def.Format(args...),
	}
}

// IllegalParameter creates a VOC_ERROR_ILLEGAL_PARAMETER error recording
// the offending parameter name in the details.
func IllegalParameter(name string) *Error {
	return New(CodeIllegalParameter).WithDetail("parameter", name)
}

// Conflict creates a VOC_ERROR_CONFLICT error.
func Conflict() *Error {
	return New(CodeConflict)
}

// DocumentNotFound creates a VOC_ERROR_DOCUMENT_NOT_FOUND error recording
// the document key in the details.
func DocumentNotFound(key string) *Error {
	return New(CodeDocumentNotFound).WithDetail("key", key)
}

// FileNotFound creates a VOC_ERROR_FILE_NOT_FOUND error recording the
// path in the details.
func FileNotFound(path string) *Error {
	return New(CodeFileNotFound).WithDetail("path", path)
}

// QueryParse creates an ERROR_QUERY_PARSE error.
//
// Example:
//
//	err := errors.QueryParse("unexpected end of input")
func QueryParse(detail string) *Error {
	return New(CodeQueryParse, detail)
}

// CollectionNotFound creates an ERROR_QUERY_COLLECTION_NOT_FOUND error.
func CollectionNotFound(collection string) *Error {
	return New(CodeQueryCollectionNotFound, collection).WithDetail("collection", collection)
}

// BindParameterMissing creates an ERROR_QUERY_BIND_PARAMETER_MISSING error.
func BindParameterMissing(name string) *Error {
	return New(CodeQueryBindParameterMissing, name).WithDetail("parameter", name)
}

// CursorNotFound creates an ERROR_CURSOR_NOT_FOUND error recording the
// cursor id in the details.
func CursorNotFound(id string) *Error {
	return New(CodeCursorNotFound).WithDetail("cursor", id)
}
