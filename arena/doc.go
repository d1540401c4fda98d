// Package arena implements the region-allocated document tree: an append-only
// node store addressed by small integer handles, the construction API that
// validates elements against the schema database at allocation time, and an
// arena pool for request-scoped reuse.
//
// # Overview
//
// Trees are built once and discarded wholesale. An Arena hands out NodeRef
// handles for every allocated node; there is no per-node free operation.
// Reset invalidates every handle the arena ever issued and returns it to an
// empty state, which is the unit of deallocation. Nodes are immutable once
// written: a "modification" is always a new node referencing unchanged
// children by handle, so sharing a subtree across many parents costs one
// handle copy.
//
// # Handles
//
// A NodeRef names a slot in one arena at one generation. Resolving a handle
// after the arena was reset fails with ErrInvalidHandle. Resolving a handle
// minted by a different arena that was never grafted into this one is a
// programming error and panics; it indicates a use-after-reset or
// cross-arena bug, not bad input data.
//
// # Construction
//
// Elements are allocated through per-tag builders (A, Div, P, ...) or the
// generic Element call. When the arena carries a schema database, attributes
// and children are validated before the node is allocated, so an invalid
// tree can never exist. Within one arena, children always have lower slot
// indices than their parent; the handle graph is acyclic by construction.
//
// # Grafting
//
// A subtree built in one arena can be spliced into a tree under construction
// in another via Graft. The receiving arena records a durable reference to
// the source arena so that resolution and serialization can route handles
// across arenas; the source must not be reset while the combined tree is in
// use.
//
// # Thread Safety
//
// An Arena is owned by exactly one goroutine for its lifetime and performs
// no locking. The Pool is the only synchronized component; its critical
// sections are pointer bookkeeping only.
package arena
