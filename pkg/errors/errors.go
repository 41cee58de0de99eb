// Package errors provides the error value raised by subsystems that report
// failures through the error catalogue (package registry). An [Error]
// pairs a catalogue [Code] and identifier with a message rendered from the
// catalogue template, an optional cause, and optional structured details.
//
// # Error Codes
//
// Each error carries the stable numeric code of its catalogue entry
// (e.g., 1510 for ERROR_QUERY_PARSE). Clients, including remote ones on
// the other side of a gRPC boundary, branch on the code rather than on
// message text. Codes are grouped into bands by owning subsystem:
//
//   - storage  (1000-1099): storage engine failures
//   - io       (1100-1199): datafile and filesystem failures
//   - document (1200-1299): document access failures
//   - query    (1500-1599): query parsing and planning failures
//   - cursor   (1600-1699): cursor management failures
//
// # Usage
//
// Raise an error from a catalogue code:
//
//	err := errors.New(errors.CodeQueryCollectionNotFound, "users")
//	// 1560: unable to open collection 'users'
//
// Wrap an underlying failure:
//
//	if _, err := os.ReadFile(path); err != nil {
//	    return errors.Wrap(err, errors.CodeReadFailed)
//	}
//
// Branch on the code:
//
//	if errors.HasCode(err, errors.CodeDocumentNotFound) {
//	    // return 404 Not Found
//	}
//
// Log with slog; [*Error] implements [log/slog.LogValuer]:
//
//	logger.Error("query failed", "error", err)
//
// Constructors never panic, even for codes or identifiers missing from the
// catalogue, because they run inside error-handling paths. Such errors carry
// [CodeUnknown].
package errors
