package errors

import (
	"strconv"

	"github.com/StricklySoft/errcatalog/pkg/registry"
)

// Code is a catalogue error code. Codes are stable across releases and are
// the field clients should branch on; see package registry for the table.
type Code int

// CodeUnknown is carried by errors raised with an identifier or code that
// is not in the catalogue.
const CodeUnknown Code = 0

// Catalogue codes, grouped by band.
const (
	// Storage engine (1000-1099).
	CodeIllegalState        Code = 1000
	CodeShaperFailed        Code = 1001
	CodeCorruptedDatafile   Code = 1002
	CodeMmapFailed          Code = 1003
	CodeMsyncFailed         Code = 1004
	CodeNoJournal           Code = 1005
	CodeDatafileSealed      Code = 1006
	CodeCorruptedCollection Code = 1007
	CodeUnknownType         Code = 1008
	CodeIllegalParameter    Code = 1009
	CodeIndexExists         Code = 1010
	CodeConflict            Code = 1011

	// Datafiles and filesystem (1100-1199).
	CodeWrongPath         Code = 1100
	CodeCannotRename      Code = 1101
	CodeWriteFailed       Code = 1102
	CodeReadOnly          Code = 1103
	CodeDatafileFull      Code = 1104
	CodeFilesystemFull    Code = 1105
	CodeReadFailed        Code = 1106
	CodeFileNotFound      Code = 1107
	CodeFileNotAccessible Code = 1108

	// Documents (1200-1299).
	CodeDocumentNotFound Code = 1200

	// Query processor (1500-1599).
	CodeQueryOOM                           Code = 1500
	CodeQueryKilled                        Code = 1501
	CodeQueryParse                         Code = 1510
	CodeQueryEmpty                         Code = 1511
	CodeQuerySpecificationInvalid          Code = 1512
	CodeQueryNumberOutOfRange              Code = 1520
	CodeQueryLimitValueOutOfRange          Code = 1521
	CodeQueryTooManyJoins                  Code = 1540
	CodeQueryCollectionNameInvalid         Code = 1550
	CodeQueryCollectionAliasInvalid        Code = 1551
	CodeQueryCollectionAliasRedeclared     Code = 1552
	CodeQueryCollectionAliasUndeclared     Code = 1553
	CodeQueryCollectionNotFound            Code = 1560
	CodeQueryGeoRestrictionInvalid         Code = 1570
	CodeQueryGeoIndexMissing               Code = 1571
	CodeQueryBindParameterMissing          Code = 1590
	CodeQueryBindParameterRedeclared       Code = 1591
	CodeQueryBindParameterUndeclared       Code = 1592
	CodeQueryBindParameterValueInvalid     Code = 1593
	CodeQueryBindParameterNumberOutOfRange Code = 1594

	// Cursors (1600-1699).
	CodeCursorNotFound Code = 1600
)

// String returns the catalogue identifier for c, or the decimal code when
// c is not catalogued.
func (c Code) String() string {
	if d, ok := registry.Default().LookupByCode(int(c)); ok {
		return d.Identifier
	}
	return strconv.Itoa(int(c))
}

// Band returns the name of the band containing c, or "" when c lies
// outside every band.
func (c Code) Band() string {
	b, _ := registry.BandOf(int(c), registry.DefaultBands)
	return b.Name
}
