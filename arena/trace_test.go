package arena

import (
	"strings"
	"testing"

	"github.com/grovekit/grove/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attrByName(t *testing.T, a *Arena, n *Node, name string) (Attr, bool) {
	t.Helper()
	attrs := n.Attrs()
	for i := 0; i < attrs.Len(); i++ {
		ref, err := a.AttrAt(attrs, i)
		require.NoError(t, err)
		at, err := a.Attr(ref)
		require.NoError(t, err)
		if at.Name == name {
			return *at, true
		}
	}
	return Attr{}, false
}

func TestTracing_AttachesCallSite(t *testing.T) {
	EnableTracing(true)
	defer EnableTracing(false)

	a := New(meta.Builtin(), 0)
	ref, err := a.P(nil)
	require.NoError(t, err)

	n, err := a.Node(ref)
	require.NoError(t, err)
	title, ok := attrByName(t, a, n, "title")
	require.True(t, ok, "traced element should carry a title attribute")
	assert.True(t, strings.HasPrefix(title.Value, "generated at: "), "got %q", title.Value)
	assert.Contains(t, title.Value, "trace_test.go", "site should point at the construction call")
	assert.NotContains(t, title.Value, "arena/trace.go", "site must never name the tracing code itself")
}

func TestTracing_KeepsExistingTitle(t *testing.T) {
	EnableTracing(true)
	defer EnableTracing(false)

	a := New(meta.Builtin(), 0)
	ref, err := a.P([]Attr{{Name: "title", Value: "mine"}})
	require.NoError(t, err)

	n, err := a.Node(ref)
	require.NoError(t, err)
	require.Equal(t, 1, n.Attrs().Len(), "no second title should be added")
	title, ok := attrByName(t, a, n, "title")
	require.True(t, ok)
	assert.Equal(t, "mine", title.Value)
}

func TestTracing_OffByDefault(t *testing.T) {
	a := New(meta.Builtin(), 0)
	ref, err := a.P(nil)
	require.NoError(t, err)

	n, err := a.Node(ref)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Attrs().Len())
}
