package printer

import (
	"testing"

	"github.com/grovekit/grove/arena"
	"github.com/grovekit/grove/meta"
)

// buildBenchPage assembles a list-heavy page of n items.
func buildBenchPage(b *testing.B, a *arena.Arena, n int) arena.NodeRef {
	b.Helper()
	items := a.NewList()
	for i := 0; i < n; i++ {
		text, err := a.Textf("item %d", i)
		if err != nil {
			b.Fatal(err)
		}
		li, err := a.Li(nil, text)
		if err != nil {
			b.Fatal(err)
		}
		if err := items.Push(li); err != nil {
			b.Fatal(err)
		}
	}
	attrs, err := a.MakeAttrs()
	if err != nil {
		b.Fatal(err)
	}
	ul, err := a.ElementFrom(meta.Ul, attrs, items.Slice())
	if err != nil {
		b.Fatal(err)
	}
	body, err := a.Body(nil, ul)
	if err != nil {
		b.Fatal(err)
	}
	return body
}

// BenchmarkHTML measures full-tree serialization.
func BenchmarkHTML(b *testing.B) {
	a := arena.New(meta.Builtin(), 0)
	page := buildBenchPage(b, a, 200)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := HTML(a, page, true); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHTML_Preserialized measures serialization when the list body is
// a cached blob, the intended fast path for rarely-changing subtrees.
func BenchmarkHTML_Preserialized(b *testing.B) {
	src := arena.New(meta.Builtin(), 0)
	page := buildBenchPage(b, src, 200)

	blob, err := Preserialize(src, page)
	if err != nil {
		b.Fatal(err)
	}
	a := arena.New(meta.Builtin(), 0)
	node, err := a.Preserialized(blob)
	if err != nil {
		b.Fatal(err)
	}
	root, err := a.Html(nil, node)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := HTML(a, root, true); err != nil {
			b.Fatal(err)
		}
	}
}
