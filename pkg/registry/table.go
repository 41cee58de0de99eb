package registry

// builtin is the compiled-in catalogue. Entries are append-only: never
// change or reuse an identifier or code once it has shipped.
var builtin = []Definition{
	// Storage engine.
	{Identifier: "VOC_ERROR_ILLEGAL_STATE", Code: 1000, Template: "illegal state"},
	{Identifier: "VOC_ERROR_SHAPER_FAILED", Code: 1001, Template: "illegal shaper"},
	{Identifier: "VOC_ERROR_CORRUPTED_DATAFILE", Code: 1002, Template: "corrupted datafile"},
	{Identifier: "VOC_ERROR_MMAP_FAILED", Code: 1003, Template: "mmap failed"},
	{Identifier: "VOC_ERROR_MSYNC_FAILED", Code: 1004, Template: "msync failed"},
	{Identifier: "VOC_ERROR_NO_JOURNAL", Code: 1005, Template: "no journal"},
	{Identifier: "VOC_ERROR_DATAFILE_SEALED", Code: 1006, Template: "datafile sealed"},
	{Identifier: "VOC_ERROR_CORRUPTED_COLLECTION", Code: 1007, Template: "corrupted collection"},
	{Identifier: "VOC_ERROR_UNKNOWN_TYPE", Code: 1008, Template: "unknown type"},
	{Identifier: "VOC_ERROR_ILLEGAL_PARAMETER", Code: 1009, Template: "illegal parameter"},
	{Identifier: "VOC_ERROR_INDEX_EXISTS", Code: 1010, Template: "index exists"},
	{Identifier: "VOC_ERROR_CONFLICT", Code: 1011, Template: "conflict"},

	// Datafiles and filesystem.
	{Identifier: "VOC_ERROR_WRONG_PATH", Code: 1100, Template: "wrong path"},
	{Identifier: "VOC_ERROR_CANNOT_RENAME", Code: 1101, Template: "cannot rename"},
	{Identifier: "VOC_ERROR_WRITE_FAILED", Code: 1102, Template: "write failed"},
	{Identifier: "VOC_ERROR_READ_ONLY", Code: 1103, Template: "ready only"},
	{Identifier: "VOC_ERROR_DATAFILE_FULL", Code: 1104, Template: "datafile full"},
	{Identifier: "VOC_ERROR_FILESYSTEM_FULL", Code: 1105, Template: "filesystem full"},
	{Identifier: "VOC_ERROR_READ_FAILED", Code: 1106, Template: "read failed"},
	{Identifier: "VOC_ERROR_FILE_NOT_FOUND", Code: 1107, Template: "file not found"},
	{Identifier: "VOC_ERROR_FILE_NOT_ACCESSIBLE", Code: 1108, Template: "file not accessible"},

	// Documents.
	{Identifier: "VOC_ERROR_DOCUMENT_NOT_FOUND", Code: 1200, Template: "document not found"},

	// Query processor.
	{Identifier: "ERROR_QUERY_OOM", Code: 1500, Template: "out of memory"},
	{Identifier: "ERROR_QUERY_KILLED", Code: 1501, Template: "query killed"},
	{Identifier: "ERROR_QUERY_PARSE", Code: 1510, Template: "parse error: %s"},
	{Identifier: "ERROR_QUERY_EMPTY", Code: 1511, Template: "query is empty"},
	{Identifier: "ERROR_QUERY_SPECIFICATION_INVALID", Code: 1512, Template: "query specification invalid"},
	{Identifier: "ERROR_QUERY_NUMBER_OUT_OF_RANGE", Code: 1520, Template: "number '%s' is out of range"},
	{Identifier: "ERROR_QUERY_LIMIT_VALUE_OUT_OF_RANGE", Code: 1521, Template: "limit value '%s' is out of range"},
	{Identifier: "ERROR_QUERY_TOO_MANY_JOINS", Code: 1540, Template: "too many joins."},
	{Identifier: "ERROR_QUERY_COLLECTION_NAME_INVALID", Code: 1550, Template: "collection name '%s' is invalid"},
	{Identifier: "ERROR_QUERY_COLLECTION_ALIAS_INVALID", Code: 1551, Template: "collection alias '%s' is invalid"},
	{Identifier: "ERROR_QUERY_COLLECTION_ALIAS_REDECLARED", Code: 1552, Template: "collection alias '%s' is declared multiple times in the same query"},
	{Identifier: "ERROR_QUERY_COLLECTION_ALIAS_UNDECLARED", Code: 1553, Template: "collection alias '%s' is used but was not declared in the from clause"},
	{Identifier: "ERROR_QUERY_COLLECTION_NOT_FOUND", Code: 1560, Template: "unable to open collection '%s'"},
	{Identifier: "ERROR_QUERY_GEO_RESTRICTION_INVALID", Code: 1570, Template: "geo restriction for alias '%s' is invalid"},
	{Identifier: "ERROR_QUERY_GEO_INDEX_MISSING", Code: 1571, Template: "no suitable geo index found for geo restriction on '%s'"},
	{Identifier: "ERROR_QUERY_BIND_PARAMETER_MISSING", Code: 1590, Template: "no value specified for declared bind parameter '%s'"},
	{Identifier: "ERROR_QUERY_BIND_PARAMETER_REDECLARED", Code: 1591, Template: "value for bind parameter '%s' is declared multiple times"},
	{Identifier: "ERROR_QUERY_BIND_PARAMETER_UNDECLARED", Code: 1592, Template: "bind parameter '%s' was not declared in the query"},
	{Identifier: "ERROR_QUERY_BIND_PARAMETER_VALUE_INVALID", Code: 1593, Template: "invalid value for bind parameter '%s'"},
	{Identifier: "ERROR_QUERY_BIND_PARAMETER_NUMBER_OUT_OF_RANGE", Code: 1594, Template: "bind parameter number '%s' out of range"},

	// Cursors.
	{Identifier: "ERROR_CURSOR_NOT_FOUND", Code: 1600, Template: "cursor not found"},
}

// Builtin returns a copy of the compiled-in catalogue in declaration order.
func Builtin() []Definition {
	out := make([]Definition, len(builtin))
	copy(out, builtin)
	return out
}
