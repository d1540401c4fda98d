package walker

import (
	"testing"

	"github.com/grovekit/grove/arena"
	"github.com/grovekit/grove/meta"
	"github.com/grovekit/grove/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMap_IdentitySharesEverything tests the structural sharing guarantee:
// a transformation that changes nothing returns the original handle and
// allocates no nodes.
func TestMap_IdentitySharesEverything(t *testing.T) {
	a := arena.New(meta.Builtin(), 0)
	root := buildPage(t, a)

	before := a.Len()
	got, err := Identity(a, a, root)
	require.NoError(t, err)
	assert.Equal(t, root, got, "identity should return the same handle")
	assert.Equal(t, before, a.Len(), "identity should allocate nothing")
}

// TestMap_IdentitySerializesIdentically tests that an identity transform
// leaves the rendered bytes untouched.
func TestMap_IdentitySerializesIdentically(t *testing.T) {
	a := arena.New(meta.Builtin(), 0)
	root := buildPage(t, a)

	before, err := printer.HTML(a, root, false)
	require.NoError(t, err)

	got, err := Identity(a, a, root)
	require.NoError(t, err)
	after, err := printer.HTML(a, got, false)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// TestMap_RewritesSpine tests that replacing one leaf rebuilds only the
// path to the root and shares every untouched sibling.
func TestMap_RewritesSpine(t *testing.T) {
	a := arena.New(meta.Builtin(), 0)
	root := buildPage(t, a)

	// Locate the original h1 and the link label for later comparison.
	h1Before, ok, err := Find(a, root, func(n *arena.Node) bool {
		return n.Kind() == arena.KindElement && n.Meta() == meta.H1
	})
	require.NoError(t, err)
	require.True(t, ok)

	got, err := Map(a, a, root, func(dst *arena.Arena, _ arena.NodeRef, n *arena.Node) (arena.NodeRef, bool, error) {
		if n.Kind() == arena.KindText && n.Text() == "more" {
			out, err := dst.Text("MORE")
			return out, true, err
		}
		return arena.NodeRef{}, false, nil
	})
	require.NoError(t, err)
	require.NotEqual(t, root, got, "the root is on the rewritten spine")

	n, err := a.Node(got)
	require.NoError(t, err)
	require.Equal(t, 2, n.Children().Len())

	// The h1 branch was untouched, so its handle is shared as-is.
	h1After, err := a.NodeAt(n.Children(), 0)
	require.NoError(t, err)
	assert.Equal(t, h1Before, h1After, "untouched branch should be shared by handle")

	// The p branch was rebuilt and now carries the replacement text.
	_, ok, err = Find(a, got, func(n *arena.Node) bool {
		return n.Kind() == arena.KindText && n.Text() == "MORE"
	})
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = Find(a, got, func(n *arena.Node) bool {
		return n.Kind() == arena.KindText && n.Text() == "more"
	})
	require.NoError(t, err)
	assert.False(t, ok, "the old text is not reachable from the new root")
}

// TestMap_IntoFreshArena tests transformation across arenas with a graft
// dependency carrying the shared subtrees.
func TestMap_IntoFreshArena(t *testing.T) {
	src := arena.New(meta.Builtin(), 0)
	dst := arena.New(meta.Builtin(), 0)
	root := buildPage(t, src)

	got, err := Map(dst, src, root, func(d *arena.Arena, _ arena.NodeRef, n *arena.Node) (arena.NodeRef, bool, error) {
		if n.Kind() == arena.KindText && n.Text() == "Title" {
			out, err := d.Text("Retitled")
			return out, true, err
		}
		return arena.NodeRef{}, false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, dst.Region(), got.Region(), "the rebuilt root lives in dst")

	// Shared subtrees still resolve through dst via the graft dependency.
	_, ok, err := Find(dst, got, func(n *arena.Node) bool {
		return n.Kind() == arena.KindText && n.Text() == "more"
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, ValidateTree(dst, got))
}

// TestMap_RebuiltElementsRevalidate tests that a replacement violating the
// parent's content model fails the rebuild.
func TestMap_RebuiltElementsRevalidate(t *testing.T) {
	a := arena.New(meta.Builtin(), 0)

	label, err := a.Text("x")
	require.NoError(t, err)
	span, err := a.Span(nil, label)
	require.NoError(t, err)

	_, err = Map(a, a, span, func(dst *arena.Arena, _ arena.NodeRef, n *arena.Node) (arena.NodeRef, bool, error) {
		if n.Kind() == arena.KindText {
			out, err := dst.P(nil)
			return out, true, err
		}
		return arena.NodeRef{}, false, nil
	})
	require.ErrorIs(t, err, meta.ErrDisallowedChild, "p is not phrasing content")
}

func TestFilterChildren(t *testing.T) {
	a := arena.New(meta.Builtin(), 0)

	var items []arena.NodeRef
	for _, s := range []string{"keep", "drop", "keep"} {
		text, err := a.Text(s)
		require.NoError(t, err)
		li, err := a.Li(nil, text)
		require.NoError(t, err)
		items = append(items, li)
	}
	ul, err := a.Ul(nil, items...)
	require.NoError(t, err)

	got, err := FilterChildren(a, a, ul, func(_ arena.NodeRef, n *arena.Node) (bool, error) {
		first, err := a.NodeAt(n.Children(), 0)
		if err != nil {
			return false, err
		}
		fn, err := a.Node(first)
		if err != nil {
			return false, err
		}
		return fn.Text() == "keep", nil
	})
	require.NoError(t, err)
	require.NotEqual(t, ul, got)

	n, err := a.Node(got)
	require.NoError(t, err)
	require.Equal(t, 2, n.Children().Len())
	for i := 0; i < 2; i++ {
		kept, err := a.NodeAt(n.Children(), i)
		require.NoError(t, err)
		assert.Equal(t, items[i*2], kept, "kept children are shared by handle")
	}
}

func TestFilterChildren_NothingDropped(t *testing.T) {
	a := arena.New(meta.Builtin(), 0)
	root := buildPage(t, a)

	got, err := FilterChildren(a, a, root, func(arena.NodeRef, *arena.Node) (bool, error) {
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, root, got, "an all-keep filter should reuse the root")
}

func TestFlatMapChildren(t *testing.T) {
	a := arena.New(meta.Builtin(), 0)

	one, err := a.Text("one")
	require.NoError(t, err)
	li, err := a.Li(nil, one)
	require.NoError(t, err)
	ul, err := a.Ul(nil, li)
	require.NoError(t, err)

	// Duplicate every item.
	got, err := FlatMapChildren(a, a, ul, func(ref arena.NodeRef, _ *arena.Node) (arena.Flat, error) {
		return arena.Two(ref, ref), nil
	})
	require.NoError(t, err)

	n, err := a.Node(got)
	require.NoError(t, err)
	require.Equal(t, 2, n.Children().Len())
	for i := 0; i < 2; i++ {
		child, err := a.NodeAt(n.Children(), i)
		require.NoError(t, err)
		assert.Equal(t, li, child)
	}

	// Drop every item.
	got, err = FlatMapChildren(a, a, ul, func(arena.NodeRef, *arena.Node) (arena.Flat, error) {
		return arena.None(), nil
	})
	require.NoError(t, err)
	n, err = a.Node(got)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Children().Len())
}

func TestUnwrapOne(t *testing.T) {
	a := arena.New(meta.Builtin(), 0)

	text, err := a.Text("inner")
	require.NoError(t, err)
	div, err := a.Div(nil, text)
	require.NoError(t, err)
	wrapped, err := a.MakeNodes(div)
	require.NoError(t, err)

	body, ok, err := UnwrapOne(a, wrapped, meta.Div, true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, body.Len())
	inner, err := a.NodeAt(body, 0)
	require.NoError(t, err)
	assert.Equal(t, text, inner)

	// Wrong tag: no unwrap.
	_, ok, err = UnwrapOne(a, wrapped, meta.P, true)
	require.NoError(t, err)
	assert.False(t, ok)

	// Attributes block strict unwrapping.
	attributed, err := a.Div([]arena.Attr{{Name: "class", Value: "x"}}, text)
	require.NoError(t, err)
	s, err := a.MakeNodes(attributed)
	require.NoError(t, err)
	_, ok, err = UnwrapOne(a, s, meta.Div, true)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = UnwrapOne(a, s, meta.Div, false)
	require.NoError(t, err)
	assert.True(t, ok, "non-strict unwrapping ignores attributes")
}

func TestUnwrapAll(t *testing.T) {
	a := arena.New(meta.Builtin(), 0)

	t1, err := a.Text("a")
	require.NoError(t, err)
	t2, err := a.Text("b")
	require.NoError(t, err)
	div, err := a.Div(nil, t1, t2)
	require.NoError(t, err)
	plain, err := a.Text("c")
	require.NoError(t, err)
	s, err := a.MakeNodes(div, plain)
	require.NoError(t, err)

	out, err := UnwrapAll(a, s, meta.Div, true)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len(), "div body splices in place, other nodes stay")

	want := []arena.NodeRef{t1, t2, plain}
	for i, w := range want {
		got, err := a.NodeAt(out, i)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
}
