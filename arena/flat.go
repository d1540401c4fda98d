package arena

type flatKind uint8

const (
	flatNone flatKind = iota
	flatOne
	flatTwo
	flatSlice
)

// Flat carries zero, one, two or a slice of node handles for call sites
// that splice a variable number of siblings where one value is expected,
// without allocating an intermediate slice for the common small cases.
type Flat struct {
	kind  flatKind
	one   NodeRef
	two   NodeRef
	slice NodeSlice
}

// None returns the empty Flat.
func None() Flat { return Flat{} }

// One wraps a single handle.
func One(ref NodeRef) Flat { return Flat{kind: flatOne, one: ref} }

// Two wraps two handles in order.
func Two(a, b NodeRef) Flat { return Flat{kind: flatTwo, one: a, two: b} }

// Many wraps a stored handle slice.
func Many(s NodeSlice) Flat { return Flat{kind: flatSlice, slice: s} }
