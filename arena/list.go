package arena

// List accumulates node handles into the arena's handle table and yields a
// NodeSlice. Growth doubles the reserved window and copies the handles
// forward; abandoned windows are reclaimed only by Reset, which is the
// arena trade-off.
type List struct {
	a     *Arena
	start uint32
	count uint32
	cap   uint32
}

// NewList returns an empty node-handle list backed by the arena.
func (a *Arena) NewList() *List {
	return &List{a: a}
}

// NewListCap returns a list with n handle slots pre-reserved.
func (a *Arena) NewListCap(n int) (*List, error) {
	l := &List{a: a}
	if n > 0 {
		start, err := a.growNodeRefs(uint32(n), 0, 0)
		if err != nil {
			return nil, err
		}
		l.start, l.cap = start, uint32(n)
	}
	return l, nil
}

// Len returns the number of handles pushed so far.
func (l *List) Len() int { return int(l.count) }

// Push appends one handle.
func (l *List) Push(ref NodeRef) error {
	if l.count == l.cap {
		newCap := max(l.cap*2, 8)
		start, err := l.a.growNodeRefs(newCap, l.start, l.count)
		if err != nil {
			return err
		}
		l.start, l.cap = start, newCap
	}
	l.a.nodeRefs[l.start+l.count] = ref
	l.count++
	return nil
}

// PushFlat appends zero, one, two or a slice of handles.
func (l *List) PushFlat(f Flat) error {
	switch f.kind {
	case flatNone:
		return nil
	case flatOne:
		return l.Push(f.one)
	case flatTwo:
		if err := l.Push(f.one); err != nil {
			return err
		}
		return l.Push(f.two)
	case flatSlice:
		return l.Append(f.slice)
	default:
		return nil
	}
}

// Append pushes every handle of s in order. s may belong to this arena or
// to a grafted one.
func (l *List) Append(s NodeSlice) error {
	for i := 0; i < s.Len(); i++ {
		ref, err := l.a.NodeAt(s, i)
		if err != nil {
			return err
		}
		if err := l.Push(ref); err != nil {
			return err
		}
	}
	return nil
}

// Reverse reverses the handles pushed so far in place.
func (l *List) Reverse() {
	refs := l.a.nodeRefs
	for i := uint32(0); i < l.count/2; i++ {
		refs[l.start+i], refs[l.start+l.count-1-i] =
			refs[l.start+l.count-1-i], refs[l.start+i]
	}
}

// Slice returns the accumulated handles as a NodeSlice. The list may keep
// growing afterwards; the returned slice is a snapshot of the current
// window.
func (l *List) Slice() NodeSlice {
	return NodeSlice{region: l.a.region, start: l.start, count: l.count}
}

// AttrList accumulates attribute handles, mirroring List.
type AttrList struct {
	a     *Arena
	start uint32
	count uint32
	cap   uint32
}

// NewAttrList returns an empty attribute-handle list backed by the arena.
func (a *Arena) NewAttrList() *AttrList {
	return &AttrList{a: a}
}

// Len returns the number of handles pushed so far.
func (l *AttrList) Len() int { return int(l.count) }

// Push appends one attribute handle.
func (l *AttrList) Push(ref AttrRef) error {
	if l.count == l.cap {
		newCap := max(l.cap*2, 4)
		start, err := l.a.growAttrRefs(newCap, l.start, l.count)
		if err != nil {
			return err
		}
		l.start, l.cap = start, newCap
	}
	l.a.attrRefs[l.start+l.count] = ref
	l.count++
	return nil
}

// Slice returns the accumulated handles as an AttrSlice.
func (l *AttrList) Slice() AttrSlice {
	return AttrSlice{region: l.a.region, start: l.start, count: l.count}
}

// MakeNodes stores the given handles and returns them as a slice.
func (a *Arena) MakeNodes(refs ...NodeRef) (NodeSlice, error) {
	if len(refs) == 0 {
		return NodeSlice{region: a.region}, nil
	}
	l, err := a.NewListCap(len(refs))
	if err != nil {
		return NodeSlice{}, err
	}
	for _, ref := range refs {
		if err := l.Push(ref); err != nil {
			return NodeSlice{}, err
		}
	}
	return l.Slice(), nil
}

// MakeAttrs allocates the given attributes and returns their handles as a
// slice.
func (a *Arena) MakeAttrs(attrs ...Attr) (AttrSlice, error) {
	if len(attrs) == 0 {
		return AttrSlice{region: a.region}, nil
	}
	l := a.NewAttrList()
	for _, at := range attrs {
		ref, err := a.allocAttr(at)
		if err != nil {
			return AttrSlice{}, err
		}
		if err := l.Push(ref); err != nil {
			return AttrSlice{}, err
		}
	}
	return l.Slice(), nil
}
