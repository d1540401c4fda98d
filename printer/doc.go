// Package printer renders arena-allocated document trees.
//
// # Overview
//
// The printer walks a validated tree and emits it in one of three formats:
// HTML (the production output), plain text (tag-stripped content, used for
// summaries and feeds), and JSON (a structural dump for debugging).
//
// # HTML Output
//
// Text content and attribute values are escaped (&, <, >, ", '); attribute
// names and tag names are emitted as stored. Elements whose schema entry has
// no closing tag (br, img, meta and the other void elements) are emitted
// without one. Pre-serialized nodes contribute their recorded bytes
// verbatim, so rendering a cached subtree is a single copy.
//
// # Preserialization
//
// Preserialize renders an element subtree once and returns the result as an
// [arena.Serialized] blob. Allocating that blob into any arena (of the same
// schema) yields a node that serializes byte-identically to the original
// subtree, which is the library's caching mechanism.
//
// # Thread Safety
//
// A Printer reuses an internal buffer and is not safe for concurrent use.
// The package-level helpers allocate per call and are safe to call from
// multiple goroutines on arenas that are not being mutated.
package printer
