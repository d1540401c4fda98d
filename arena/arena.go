package arena

import (
	"fmt"

	"github.com/grovekit/grove/meta"
)

// DefaultCapacity is the per-store slot limit used when New is given a
// non-positive capacity. Sized for a typical fully-assembled page.
const DefaultCapacity = 100_000

// initialSlots is the pre-allocated store capacity; stores grow on demand up
// to the configured limit.
const initialSlots = 256

// Arena is an append-only region of document tree nodes. It owns every node,
// attribute and handle-table entry allocated into it, and releases them all
// at once on Reset. Not safe for concurrent use.
type Arena struct {
	region Region
	db     *meta.DB
	limit  int

	nodes    []Node
	attrs    []Attr
	nodeRefs []NodeRef
	attrRefs []AttrRef

	// foreign maps the regions of grafted source arenas to the arenas
	// themselves, keyed by the region at graft time. This is the durable
	// cross-arena lifetime dependency: as long as this arena is reachable,
	// so are its graft sources.
	foreign map[Region]*Arena
}

// New creates an empty arena validating against db. A nil db disables schema
// validation. capacity bounds each backing store; pass 0 for
// DefaultCapacity.
func New(db *meta.DB, capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	initial := initialSlots
	if capacity < initial {
		initial = capacity
	}
	return &Arena{
		region:   makeRegion(nextArenaID(), 0),
		db:       db,
		limit:    capacity,
		nodes:    make([]Node, 0, initial),
		attrs:    make([]Attr, 0, initial),
		nodeRefs: make([]NodeRef, 0, initial),
		attrRefs: make([]AttrRef, 0, initial),
	}
}

// DB returns the schema database the arena validates against, or nil.
func (a *Arena) DB() *meta.DB { return a.db }

// Region returns the arena's current region identity.
func (a *Arena) Region() Region { return a.region }

// Generation returns how many times the arena has been reset.
func (a *Arena) Generation() int { return int(a.region.generation()) }

// Len returns the number of nodes currently allocated.
func (a *Arena) Len() int { return len(a.nodes) }

// Reset invalidates every handle this arena has issued and returns it to an
// empty state. Backing storage is retained for reuse. Grafted source arenas
// are released.
func (a *Arena) Reset() {
	a.nodes = a.nodes[:0]
	a.attrs = a.attrs[:0]
	a.nodeRefs = a.nodeRefs[:0]
	a.attrRefs = a.attrRefs[:0]
	a.foreign = nil
	a.region = makeRegion(a.region.arenaID(), a.region.generation()+1)
}

// owner resolves a region to the arena owning it: this arena or one of its
// graft sources. A stale generation yields ErrInvalidHandle; a region this
// arena has never seen is a contract violation and panics.
func (a *Arena) owner(r Region) (*Arena, error) {
	if r == a.region {
		return a, nil
	}
	if src, ok := a.foreign[r]; ok {
		if src.region != r {
			return nil, fmt.Errorf("%w: grafted arena %v was reset (now %v)",
				ErrInvalidHandle, r, src.region)
		}
		return src, nil
	}
	if r.arenaID() == a.region.arenaID() {
		return nil, fmt.Errorf("%w: handle from generation %d used after reset (arena at generation %d)",
			ErrInvalidHandle, r.generation(), a.region.generation())
	}
	panic(fmt.Sprintf("arena: handle from unrelated %v used against %v", r, a.region))
}

// Node resolves a handle to its node. The pointer is valid until the owning
// arena is reset; the node behind it never changes.
func (a *Arena) Node(ref NodeRef) (*Node, error) {
	owner, err := a.owner(ref.region)
	if err != nil {
		return nil, err
	}
	if ref.index >= uint32(len(owner.nodes)) {
		return nil, fmt.Errorf("%w: node slot %d of %d", ErrInvalidHandle,
			ref.index, len(owner.nodes))
	}
	return &owner.nodes[ref.index], nil
}

// Attr resolves an attribute handle.
func (a *Arena) Attr(ref AttrRef) (*Attr, error) {
	owner, err := a.owner(ref.region)
	if err != nil {
		return nil, err
	}
	if ref.index >= uint32(len(owner.attrs)) {
		return nil, fmt.Errorf("%w: attribute slot %d of %d", ErrInvalidHandle,
			ref.index, len(owner.attrs))
	}
	return &owner.attrs[ref.index], nil
}

// NodeAt returns the i'th handle of a node slice.
func (a *Arena) NodeAt(s NodeSlice, i int) (NodeRef, error) {
	owner, err := a.owner(s.region)
	if err != nil {
		return NodeRef{}, err
	}
	if i < 0 || i >= int(s.count) || s.start+s.count > uint32(len(owner.nodeRefs)) {
		return NodeRef{}, fmt.Errorf("%w: slice index %d of %d", ErrInvalidHandle, i, s.count)
	}
	return owner.nodeRefs[s.start+uint32(i)], nil
}

// AttrAt returns the i'th handle of an attribute slice.
func (a *Arena) AttrAt(s AttrSlice, i int) (AttrRef, error) {
	owner, err := a.owner(s.region)
	if err != nil {
		return AttrRef{}, err
	}
	if i < 0 || i >= int(s.count) || s.start+s.count > uint32(len(owner.attrRefs)) {
		return AttrRef{}, fmt.Errorf("%w: slice index %d of %d", ErrInvalidHandle, i, s.count)
	}
	return owner.attrRefs[s.start+uint32(i)], nil
}

// Valid reports whether ref resolves against this arena without panicking,
// including handles from grafted arenas.
func (a *Arena) Valid(ref NodeRef) bool {
	if ref.region != a.region {
		src, ok := a.foreign[ref.region]
		if !ok || src.region != ref.region {
			return false
		}
		return ref.index < uint32(len(src.nodes))
	}
	return ref.index < uint32(len(a.nodes))
}

// Graft splices a subtree owned by src into trees built in this arena. The
// returned handle is ref unchanged; what changes is that this arena records
// a durable reference to src (and src's own graft sources), so handles into
// src resolve here from now on. src must stay un-reset for as long as trees
// referencing the subtree are in use.
func (a *Arena) Graft(src *Arena, ref NodeRef) (NodeRef, error) {
	if _, err := src.Node(ref); err != nil {
		return NodeRef{}, fmt.Errorf("graft: %w", err)
	}
	if src == a || src.region == a.region {
		return ref, nil
	}
	if a.foreign == nil {
		a.foreign = make(map[Region]*Arena)
	}
	a.foreign[src.region] = src
	for r, s := range src.foreign {
		a.foreign[r] = s
	}
	return ref, nil
}

// allocNode appends a node and returns its handle.
func (a *Arena) allocNode(n Node) (NodeRef, error) {
	if len(a.nodes) >= a.limit {
		return NodeRef{}, fmt.Errorf("%w: %d nodes", ErrArenaFull, a.limit)
	}
	a.nodes = append(a.nodes, n)
	return NodeRef{region: a.region, index: uint32(len(a.nodes) - 1)}, nil
}

// allocAttr appends an attribute and returns its handle.
func (a *Arena) allocAttr(at Attr) (AttrRef, error) {
	if len(a.attrs) >= a.limit {
		return AttrRef{}, fmt.Errorf("%w: %d attributes", ErrArenaFull, a.limit)
	}
	a.attrs = append(a.attrs, at)
	return AttrRef{region: a.region, index: uint32(len(a.attrs) - 1)}, nil
}

// growNodeRefs reserves n contiguous handle-table slots, copying the window
// [copyStart, copyStart+copyLen) into the front of the new block. This is
// the backing operation for List growth.
func (a *Arena) growNodeRefs(n, copyStart, copyLen uint32) (uint32, error) {
	if len(a.nodeRefs)+int(n) > a.limit*2 {
		return 0, fmt.Errorf("%w: %d node handle slots", ErrArenaFull, a.limit*2)
	}
	start := uint32(len(a.nodeRefs))
	a.nodeRefs = append(a.nodeRefs, make([]NodeRef, n)...)
	copy(a.nodeRefs[start:], a.nodeRefs[copyStart:copyStart+copyLen])
	return start, nil
}

func (a *Arena) growAttrRefs(n, copyStart, copyLen uint32) (uint32, error) {
	if len(a.attrRefs)+int(n) > a.limit*2 {
		return 0, fmt.Errorf("%w: %d attribute handle slots", ErrArenaFull, a.limit*2)
	}
	start := uint32(len(a.attrRefs))
	a.attrRefs = append(a.attrRefs, make([]AttrRef, n)...)
	copy(a.attrRefs[start:], a.attrRefs[copyStart:copyStart+copyLen])
	return start, nil
}
