package walker

import (
	"github.com/grovekit/grove/arena"
	"github.com/grovekit/grove/meta"
)

// MapFunc inspects one node and either keeps it or replaces it. Returning
// changed=false keeps the node: its handle is reused unchanged and its
// children are visited. Returning changed=true substitutes out, which must
// be a handle valid in the destination arena; the engine does not descend
// into replacements.
type MapFunc func(dst *arena.Arena, ref arena.NodeRef, n *arena.Node) (out arena.NodeRef, changed bool, err error)

// Map rewrites the subtree at root bottom-up into dst, reusing every
// subtree the function leaves alone by handle. dst may be the source arena
// itself (transformations only reference already-built handles, so forward
// references cannot arise) or a fresh one; in the latter case dst records a
// graft dependency on src and shared handles keep resolving through it.
// Elements rebuilt because a descendant changed are validated again.
func Map(dst, src *arena.Arena, root arena.NodeRef, fn MapFunc) (arena.NodeRef, error) {
	if _, err := dst.Graft(src, root); err != nil {
		return arena.NodeRef{}, err
	}
	return mapNode(dst, src, root, fn)
}

func mapNode(dst, src *arena.Arena, ref arena.NodeRef, fn MapFunc) (arena.NodeRef, error) {
	n, err := src.Node(ref)
	if err != nil {
		return arena.NodeRef{}, err
	}
	out, changed, err := fn(dst, ref, n)
	if err != nil {
		return arena.NodeRef{}, err
	}
	if changed {
		return out, nil
	}

	if n.Kind() != arena.KindElement && n.Kind() != arena.KindFragment {
		return ref, nil
	}

	kids := n.Children()
	var rebuilt *arena.List
	for i := 0; i < kids.Len(); i++ {
		child, err := src.NodeAt(kids, i)
		if err != nil {
			return arena.NodeRef{}, err
		}
		mapped, err := mapNode(dst, src, child, fn)
		if err != nil {
			return arena.NodeRef{}, err
		}
		if rebuilt == nil && mapped != child {
			// First divergence: copy the untouched prefix, then switch to
			// assembling a new child list.
			rebuilt = dst.NewList()
			for j := 0; j < i; j++ {
				prev, err := src.NodeAt(kids, j)
				if err != nil {
					return arena.NodeRef{}, err
				}
				if err := rebuilt.Push(prev); err != nil {
					return arena.NodeRef{}, err
				}
			}
		}
		if rebuilt != nil {
			if err := rebuilt.Push(mapped); err != nil {
				return arena.NodeRef{}, err
			}
		}
	}
	if rebuilt == nil {
		// No descendant changed: reuse the whole subtree by handle.
		return ref, nil
	}
	if n.Kind() == arena.KindFragment {
		return dst.FragmentFrom(rebuilt.Slice())
	}
	return dst.ElementFrom(n.Meta(), n.Attrs(), rebuilt.Slice())
}

// Identity returns root unchanged; it exists to make the sharing guarantee
// testable and as the no-op base for conditional pipelines.
func Identity(dst, src *arena.Arena, root arena.NodeRef) (arena.NodeRef, error) {
	return Map(dst, src, root, func(*arena.Arena, arena.NodeRef, *arena.Node) (arena.NodeRef, bool, error) {
		return arena.NodeRef{}, false, nil
	})
}

// FilterChildren rebuilds the element or fragment at root keeping only the
// direct children pred accepts, in original order. Kept children are reused
// by handle. Non-container roots are returned unchanged.
func FilterChildren(dst, src *arena.Arena, root arena.NodeRef, pred func(ref arena.NodeRef, n *arena.Node) (bool, error)) (arena.NodeRef, error) {
	if _, err := dst.Graft(src, root); err != nil {
		return arena.NodeRef{}, err
	}
	n, err := src.Node(root)
	if err != nil {
		return arena.NodeRef{}, err
	}
	if n.Kind() != arena.KindElement && n.Kind() != arena.KindFragment {
		return root, nil
	}
	kids := n.Children()
	kept := dst.NewList()
	dropped := false
	for i := 0; i < kids.Len(); i++ {
		child, err := src.NodeAt(kids, i)
		if err != nil {
			return arena.NodeRef{}, err
		}
		cn, err := src.Node(child)
		if err != nil {
			return arena.NodeRef{}, err
		}
		keep, err := pred(child, cn)
		if err != nil {
			return arena.NodeRef{}, err
		}
		if !keep {
			dropped = true
			continue
		}
		if err := kept.Push(child); err != nil {
			return arena.NodeRef{}, err
		}
	}
	if !dropped {
		return root, nil
	}
	if n.Kind() == arena.KindFragment {
		return dst.FragmentFrom(kept.Slice())
	}
	return dst.ElementFrom(n.Meta(), n.Attrs(), kept.Slice())
}

// FlatMapChildren rebuilds the element or fragment at root with every
// direct child replaced by the handles fn returns: None drops the child,
// One substitutes, Two and Many splice several siblings in its place.
func FlatMapChildren(dst, src *arena.Arena, root arena.NodeRef, fn func(ref arena.NodeRef, n *arena.Node) (arena.Flat, error)) (arena.NodeRef, error) {
	if _, err := dst.Graft(src, root); err != nil {
		return arena.NodeRef{}, err
	}
	n, err := src.Node(root)
	if err != nil {
		return arena.NodeRef{}, err
	}
	if n.Kind() != arena.KindElement && n.Kind() != arena.KindFragment {
		return root, nil
	}
	kids := n.Children()
	out := dst.NewList()
	for i := 0; i < kids.Len(); i++ {
		child, err := src.NodeAt(kids, i)
		if err != nil {
			return arena.NodeRef{}, err
		}
		cn, err := src.Node(child)
		if err != nil {
			return arena.NodeRef{}, err
		}
		flat, err := fn(child, cn)
		if err != nil {
			return arena.NodeRef{}, err
		}
		if err := out.PushFlat(flat); err != nil {
			return arena.NodeRef{}, err
		}
	}
	if n.Kind() == arena.KindFragment {
		return dst.FragmentFrom(out.Slice())
	}
	return dst.ElementFrom(n.Meta(), n.Attrs(), out.Slice())
}

// UnwrapOne returns the body of s's single element when s contains exactly
// one element node of tag m; with strict set the element must also carry no
// attributes. ok is false otherwise.
func UnwrapOne(a *arena.Arena, s arena.NodeSlice, m *meta.Element, strict bool) (arena.NodeSlice, bool, error) {
	if s.Len() != 1 {
		return arena.NodeSlice{}, false, nil
	}
	ref, err := a.NodeAt(s, 0)
	if err != nil {
		return arena.NodeSlice{}, false, err
	}
	n, err := a.Node(ref)
	if err != nil {
		return arena.NodeSlice{}, false, err
	}
	if n.Kind() != arena.KindElement || n.Meta() != m {
		return arena.NodeSlice{}, false, nil
	}
	if strict && n.Attrs().Len() > 0 {
		return arena.NodeSlice{}, false, nil
	}
	return n.Children(), true, nil
}

// UnwrapAll splices the bodies of all direct elements of tag m in s into a
// new slice, keeping everything else as is.
func UnwrapAll(a *arena.Arena, s arena.NodeSlice, m *meta.Element, strict bool) (arena.NodeSlice, error) {
	out := a.NewList()
	for i := 0; i < s.Len(); i++ {
		ref, err := a.NodeAt(s, i)
		if err != nil {
			return arena.NodeSlice{}, err
		}
		n, err := a.Node(ref)
		if err != nil {
			return arena.NodeSlice{}, err
		}
		unwrappable := n.Kind() == arena.KindElement && n.Meta() == m &&
			(!strict || n.Attrs().Len() == 0)
		if unwrappable {
			if err := out.Append(n.Children()); err != nil {
				return arena.NodeSlice{}, err
			}
			continue
		}
		if err := out.Push(ref); err != nil {
			return arena.NodeSlice{}, err
		}
	}
	return out.Slice(), nil
}
