package errors

import (
	"errors"

	"github.com/StricklySoft/errcatalog/pkg/registry"
)

const (
	bandStorage  = registry.BandStorage
	bandIO       = registry.BandIO
	bandDocument = registry.BandDocument
	bandQuery    = registry.BandQuery
	bandCursor   = registry.BandCursor
)

// AsError returns the first *Error in err's chain.
//
// Example:
//
//	if e, ok := errors.AsError(err); ok {
//	    log.Printf("error code: %d, message: %s", e.Code, e.Message)
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetCode returns the code of the first *Error in err's chain, or
// [CodeUnknown] if there is none.
func GetCode(err error) Code {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return CodeUnknown
}

// HasCode reports whether err carries code.
//
// Example:
//
//	if errors.HasCode(err, errors.CodeQueryKilled) {
//	    // query was cancelled by the user
//	}
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// HasIdentifier reports whether err carries the catalogue identifier.
func HasIdentifier(err error, identifier string) bool {
	e, ok := AsError(err)
	return ok && e.Identifier == identifier
}

func inBand(err error, band string) bool {
	e, ok := AsError(err)
	return ok && e.Code.Band() == band
}

// IsStorage reports whether err is a storage engine error (1000-1099).
func IsStorage(err error) bool {
	return inBand(err, bandStorage)
}

// IsIO reports whether err is a datafile or filesystem error (1100-1199).
func IsIO(err error) bool {
	return inBand(err, bandIO)
}

// IsDocument reports whether err is a document error (1200-1299).
func IsDocument(err error) bool {
	return inBand(err, bandDocument)
}

// IsQuery reports whether err is a query processor error (1500-1599).
func IsQuery(err error) bool {
	return inBand(err, bandQuery)
}

// IsCursor reports whether err is a cursor error (1600-1699).
func IsCursor(err error) bool {
	return inBand(err, bandCursor)
}

// IsNotFound reports whether err signals a missing document, file,
// collection, or cursor.
//
// Example:
//
//	if errors.IsNotFound(err) {
//	    // return 404 Not Found
//	}
func IsNotFound(err error) bool {
	switch GetCode(err) {
	case CodeDocumentNotFound, CodeFileNotFound, CodeQueryCollectionNotFound, CodeCursorNotFound:
		return true
	}
	return false
}

// IsUnknown reports whether err is an *Error raised with a code or
// identifier missing from the catalogue.
func IsUnknown(err error) bool {
	e, ok := AsError(err)
	if !ok {
		return false
	}
	_, known := registry.Default().LookupByCode(int(e.Code))
	return !known
}
