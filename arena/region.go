package arena

import (
	"fmt"
	"sync/atomic"
)

// Region identifies one arena at one generation. The top 24 bits are a
// process-unique arena id, the low 8 bits a generation counter bumped on
// every Reset. Two handles denote the same node only if their regions are
// identical.
type Region uint32

func makeRegion(arenaID uint32, generation uint8) Region {
	return Region(arenaID<<8 | uint32(generation))
}

func (r Region) arenaID() uint32   { return uint32(r) >> 8 }
func (r Region) generation() uint8 { return uint8(r) }

// String formats the region for diagnostics.
func (r Region) String() string {
	return fmt.Sprintf("region(%d.%d)", r.arenaID(), r.generation())
}

// nextArenaID wraps at 24 bits, matching the id width inside Region.
var arenaIDCounter atomic.Uint32

func nextArenaID() uint32 {
	return arenaIDCounter.Add(1) & 0xFFFFFF
}

// NodeRef is an opaque handle to a node slot in one arena generation.
// It is cheap to copy and carries no ownership; the arena owns the node.
// The zero NodeRef resolves to nothing.
type NodeRef struct {
	region Region
	index  uint32
}

// Region returns the region the handle belongs to.
func (r NodeRef) Region() Region { return r.region }

// Index returns the slot index within the originating arena.
func (r NodeRef) Index() uint32 { return r.index }

// IsZero reports whether the handle is the zero value.
func (r NodeRef) IsZero() bool { return r == NodeRef{} }

// String formats the handle for diagnostics.
func (r NodeRef) String() string {
	return fmt.Sprintf("node(%v#%d)", r.region, r.index)
}

// AttrRef is an opaque handle to an attribute slot in one arena generation.
type AttrRef struct {
	region Region
	index  uint32
}

// Region returns the region the handle belongs to.
func (r AttrRef) Region() Region { return r.region }

// Index returns the slot index within the originating arena.
func (r AttrRef) Index() uint32 { return r.index }

// NodeSlice is a window over node handles stored in an arena's reference
// table. Elements and fragments store their ordered children this way.
type NodeSlice struct {
	region Region
	start  uint32
	count  uint32
}

// Len returns the number of handles in the slice.
func (s NodeSlice) Len() int { return int(s.count) }

// Region returns the region owning the slice storage.
func (s NodeSlice) Region() Region { return s.region }

// SplitAt splits the slice before index i. It returns false when i is out
// of range.
func (s NodeSlice) SplitAt(i int) (NodeSlice, NodeSlice, bool) {
	if i < 0 || i > int(s.count) {
		return NodeSlice{}, NodeSlice{}, false
	}
	head := NodeSlice{region: s.region, start: s.start, count: uint32(i)}
	tail := NodeSlice{region: s.region, start: s.start + uint32(i), count: s.count - uint32(i)}
	return head, tail, true
}

// AttrSlice is a window over attribute handles stored in an arena's
// reference table.
type AttrSlice struct {
	region Region
	start  uint32
	count  uint32
}

// Len returns the number of handles in the slice.
func (s AttrSlice) Len() int { return int(s.count) }

// Region returns the region owning the slice storage.
func (s AttrSlice) Region() Region { return s.region }
