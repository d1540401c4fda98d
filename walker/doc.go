// Package walker provides read-only traversal and structure-preserving
// transformation of arena document trees.
//
// # Traversal
//
// Walk visits a subtree depth-first in document order. The visitor can
// prune a subtree (SkipChildren) or abort the walk (ErrStop). The walk
// never mutates the tree.
//
// # Transformation
//
// Map, FilterChildren and FlatMapChildren build a new tree in a destination
// arena while reusing every untouched subtree by handle; the structural
// sharing case costs zero allocation per reused node. Rebuilt elements go
// through the construction API again, so a transformation cannot produce a
// tree that validation would have rejected. The source arena is never
// mutated; when source and destination differ the destination records a
// graft dependency on the source so shared handles keep resolving.
//
// # Validation
//
// ValidateTree checks the arena invariants over a built tree: every handle
// resolves, and same-arena children sit at lower slot indices than their
// parent, which is what makes the handle graph acyclic.
package walker
