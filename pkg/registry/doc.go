// Package registry provides the process-wide error catalogue: an immutable
// table mapping a symbolic error identifier (e.g. "ERROR_QUERY_PARSE") to a
// stable numeric code (e.g. 1510) and a message template with positional
// "%s" placeholders.
//
// # Codes and Bands
//
// Codes are partitioned into bands by owning subsystem:
//
//	1000-1099  storage   storage engine (VOC_ERROR_*)
//	1100-1199  io        datafiles and filesystem (VOC_ERROR_*)
//	1200-1299  document  document access (VOC_ERROR_*)
//	1500-1599  query     query processor (ERROR_QUERY_*)
//	1600-1699  cursor    cursor management (ERROR_CURSOR_*)
//
// Gaps between bands are reserved. Codes are never reassigned or reused
// once published, because clients persist and compare them across versions.
//
// # Usage
//
// Look up a definition and render its message:
//
//	def, ok := registry.Default().LookupByIdentifier("ERROR_QUERY_COLLECTION_NAME_INVALID")
//	if ok {
//	    msg := def.Format("foo") // "collection name 'foo' is invalid"
//	}
//
// Iterate the catalogue, e.g. for documentation:
//
//	for def := range registry.Default().All() {
//	    fmt.Println(def.Code, def.Identifier)
//	}
//
// A [Registry] is never mutated after [New] returns, so all of its methods
// are safe for concurrent use without synchronization.
package registry
