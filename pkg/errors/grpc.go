package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorInfoDomain is the Domain of the errdetails.ErrorInfo attached by
// [Error.GRPCStatus].
const ErrorInfoDomain = "errcatalog"

// ErrorInfo metadata keys. Details of the *Error are sent under
// metadataDetailPrefix + key, rendered with fmt.Sprint.
const (
	metadataCode         = "code"
	metadataMessage      = "message"
	metadataCause        = "cause"
	metadataDetailPrefix = "detail."
)

// GRPCCode returns the gRPC status code matching e's catalogue code.
func (e *Error) GRPCCode() codes.Code {
	switch e.Code {
	case CodeDocumentNotFound, CodeCursorNotFound, CodeFileNotFound, CodeQueryCollectionNotFound:
		return codes.NotFound
	case CodeConflict:
		return codes.Aborted
	case CodeIndexExists:
		return codes.AlreadyExists
	case CodeIllegalParameter:
		return codes.InvalidArgument
	case CodeReadOnly:
		return codes.PermissionDenied
	case CodeDatafileFull, CodeFilesystemFull, CodeQueryOOM:
		return codes.ResourceExhausted
	case CodeQueryKilled:
		return codes.Canceled
	case CodeCorruptedDatafile, CodeCorruptedCollection:
		return codes.DataLoss
	}
	switch e.Code.Band() {
	case bandQuery:
		return codes.InvalidArgument
	case bandStorage, bandIO, bandDocument, bandCursor:
		return codes.Internal
	}
	return codes.Unknown
}

// GRPCStatus returns the gRPC status for e. grpc-go calls this through
// status.FromError and status.Code, so returning an *Error from a handler
// is enough to put it on the wire, wrapped or not.
//
// The status message is e.Error(). The catalogue fields travel separately
// in an errdetails.ErrorInfo (Reason is the identifier, Metadata holds the
// code, message, cause, and details), because grpc-go replaces the message
// with the outer error text when the *Error is wrapped.
func (e *Error) GRPCStatus() *status.Status {
	st := status.New(e.GRPCCode(), e.Error())
	withInfo, err := st.WithDetails(e.errorInfo())
	if err != nil {
		return st
	}
	return withInfo
}

func (e *Error) errorInfo() *errdetails.ErrorInfo {
	md := make(map[string]string, 3+len(e.Details))
	md[metadataCode] = strconv.Itoa(int(e.Code))
	md[metadataMessage] = e.Message
	if e.Cause != nil {
		md[metadataCause] = e.Cause.Error()
	}
	for k, v := range e.Details {
		md[metadataDetailPrefix+k] = fmt.Sprint(v)
	}
	return &errdetails.ErrorInfo{
		Reason:   e.Identifier,
		Domain:   ErrorInfoDomain,
		Metadata: md,
	}
}

// FromStatus rebuilds an *Error on the receiving side of a gRPC call. It
// returns nil for a nil or OK status.
//
// The ErrorInfo attached by [Error.GRPCStatus] is preferred: it restores
// the code, identifier, message, and details exactly, and the cause as
// an opaque error carrying the original text. Statuses without one are
// parsed from a leading "<code>: " in the message; when that fails too
// the result carries [CodeUnknown] and the raw status message.
func FromStatus(st *status.Status) *Error {
	if st == nil || st.Code() == codes.OK {
		return nil
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorInfoDomain {
			return fromErrorInfo(info)
		}
	}
	return fromMessage(st.Message())
}

func fromErrorInfo(info *errdetails.ErrorInfo) *Error {
	md := info.GetMetadata()
	n, err := strconv.Atoi(md[metadataCode])
	if err != nil {
		n = int(CodeUnknown)
	}

	e := &Error{
		Code:       Code(n),
		Identifier: info.GetReason(),
		Message:    md[metadataMessage],
	}
	if cause, ok := md[metadataCause]; ok {
		e.Cause = errors.New(cause)
	}
	for k, v := range md {
		if key, ok := strings.CutPrefix(k, metadataDetailPrefix); ok {
			if e.Details == nil {
				e.Details = make(map[string]any)
			}
			e.Details[key] = v
		}
	}
	return e
}

func fromMessage(msg string) *Error {
	prefix, rest, found := strings.Cut(msg, ": ")
	if !found {
		prefix, rest = msg, ""
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return &Error{Code: CodeUnknown, Message: msg}
	}

	e := New(Code(n))
	if rest != "" {
		e.Message = rest
	}
	return e
}
