package arena

import (
	"testing"

	"github.com/grovekit/grove/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArena_AllocAndResolve tests basic allocation and handle resolution.
func TestArena_AllocAndResolve(t *testing.T) {
	a := New(meta.Builtin(), 0)
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Generation())

	ref, err := a.Text("hello")
	require.NoError(t, err, "Text should allocate")
	require.False(t, ref.IsZero())
	assert.Equal(t, 1, a.Len())

	n, err := a.Node(ref)
	require.NoError(t, err, "handle should resolve")
	assert.Equal(t, KindText, n.Kind())
	assert.Equal(t, "hello", n.Text())
}

// TestArena_DistinctRegions tests that every arena gets its own region.
func TestArena_DistinctRegions(t *testing.T) {
	a := New(nil, 0)
	b := New(nil, 0)
	assert.NotEqual(t, a.Region(), b.Region(), "arenas should have distinct regions")
}

// TestArena_ResetInvalidatesHandles tests bulk invalidation.
func TestArena_ResetInvalidatesHandles(t *testing.T) {
	a := New(meta.Builtin(), 0)

	ref, err := a.Text("stale")
	require.NoError(t, err)
	require.True(t, a.Valid(ref))

	a.Reset()
	assert.Equal(t, 0, a.Len(), "Reset should empty the arena")
	assert.Equal(t, 1, a.Generation())
	assert.False(t, a.Valid(ref))

	_, err = a.Node(ref)
	require.ErrorIs(t, err, ErrInvalidHandle, "stale handle should not resolve")

	// The arena is usable again, and new handles carry the new generation.
	fresh, err := a.Text("fresh")
	require.NoError(t, err)
	n, err := a.Node(fresh)
	require.NoError(t, err)
	assert.Equal(t, "fresh", n.Text())
	assert.NotEqual(t, ref.Region(), fresh.Region())
}

// TestArena_UnrelatedHandlePanics tests the misuse contract: handles from an
// arena that was never grafted are a programming error, not a runtime
// condition.
func TestArena_UnrelatedHandlePanics(t *testing.T) {
	a := New(nil, 0)
	b := New(nil, 0)

	ref, err := b.Text("elsewhere")
	require.NoError(t, err)

	assert.Panics(t, func() {
		_, _ = a.Node(ref)
	}, "resolving a foreign, ungrafted handle should panic")
}

// TestArena_CapacityLimit tests that allocation stops at the configured
// capacity.
func TestArena_CapacityLimit(t *testing.T) {
	a := New(nil, 2)

	_, err := a.Text("one")
	require.NoError(t, err)
	_, err = a.Text("two")
	require.NoError(t, err)
	_, err = a.Text("three")
	require.ErrorIs(t, err, ErrArenaFull, "allocation past capacity should fail")
}

// TestArena_StructuralSharing tests that one subtree handle can appear under
// several parents without copying.
func TestArena_StructuralSharing(t *testing.T) {
	a := New(meta.Builtin(), 0)

	shared, err := a.Text("shared")
	require.NoError(t, err)

	p1, err := a.P(nil, shared)
	require.NoError(t, err)
	p2, err := a.P(nil, shared)
	require.NoError(t, err)

	n1, err := a.Node(p1)
	require.NoError(t, err)
	n2, err := a.Node(p2)
	require.NoError(t, err)

	c1, err := a.NodeAt(n1.Children(), 0)
	require.NoError(t, err)
	c2, err := a.NodeAt(n2.Children(), 0)
	require.NoError(t, err)
	assert.Equal(t, c1, c2, "both parents should reference the same slot")
	assert.Equal(t, shared, c1)
}

// TestArena_ChildrenPrecedeParents tests the allocation-order invariant that
// rules out cycles.
func TestArena_ChildrenPrecedeParents(t *testing.T) {
	a := New(meta.Builtin(), 0)

	text, err := a.Text("x")
	require.NoError(t, err)
	em, err := a.Em(nil, text)
	require.NoError(t, err)
	p, err := a.P(nil, em)
	require.NoError(t, err)

	assert.Less(t, text.Index(), em.Index())
	assert.Less(t, em.Index(), p.Index())
}

func TestArena_Graft(t *testing.T) {
	src := New(meta.Builtin(), 0)
	dst := New(meta.Builtin(), 0)

	label, err := src.Text("footer")
	require.NoError(t, err)
	sub, err := src.Footer(nil, label)
	require.NoError(t, err)

	ref, err := dst.Graft(src, sub)
	require.NoError(t, err, "graft of a valid subtree should succeed")
	assert.Equal(t, sub, ref, "graft returns the handle unchanged")

	// The grafted subtree resolves through dst and can be used as a child.
	n, err := dst.Node(ref)
	require.NoError(t, err)
	assert.Equal(t, "footer", n.Meta().Tag)

	body, err := dst.Body(nil, ref)
	require.NoError(t, err)
	bn, err := dst.Node(body)
	require.NoError(t, err)
	child, err := dst.NodeAt(bn.Children(), 0)
	require.NoError(t, err)
	assert.Equal(t, sub, child)
}

func TestArena_GraftInvalidRef(t *testing.T) {
	src := New(nil, 0)
	dst := New(nil, 0)

	ref, err := src.Text("x")
	require.NoError(t, err)
	src.Reset()

	_, err = dst.Graft(src, ref)
	require.ErrorIs(t, err, ErrInvalidHandle, "grafting a stale handle should fail")
}

// TestArena_GraftSourceReset tests that handles into a reset graft source
// fail instead of resolving to recycled slots.
func TestArena_GraftSourceReset(t *testing.T) {
	src := New(nil, 0)
	dst := New(nil, 0)

	ref, err := src.Text("volatile")
	require.NoError(t, err)
	_, err = dst.Graft(src, ref)
	require.NoError(t, err)

	src.Reset()
	_, err = dst.Node(ref)
	require.ErrorIs(t, err, ErrInvalidHandle)
	assert.False(t, dst.Valid(ref))
}

// TestArena_GraftTransitive tests that grafting carries the source's own
// graft dependencies along.
func TestArena_GraftTransitive(t *testing.T) {
	first := New(meta.Builtin(), 0)
	second := New(meta.Builtin(), 0)
	third := New(meta.Builtin(), 0)

	leaf, err := first.Text("deep")
	require.NoError(t, err)
	_, err = second.Graft(first, leaf)
	require.NoError(t, err)
	mid, err := second.Span(nil, leaf)
	require.NoError(t, err)

	_, err = third.Graft(second, mid)
	require.NoError(t, err)

	// third can resolve handles owned by first, reached through second.
	n, err := third.Node(leaf)
	require.NoError(t, err)
	assert.Equal(t, "deep", n.Text())
}

func TestArena_GraftSelf(t *testing.T) {
	a := New(nil, 0)
	ref, err := a.Text("self")
	require.NoError(t, err)

	got, err := a.Graft(a, ref)
	require.NoError(t, err, "self-graft is a no-op")
	assert.Equal(t, ref, got)
}
