package arena

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/grovekit/grove/meta"
)

// tracing toggles construction-site tracing. When enabled, every element
// allocation records the first caller outside this package as a title
// attribute, so rendered pages can be traced back to the code that built
// them. Purely a development aid: validation and serialization semantics
// are unchanged, and elements that already carry a title keep it.
var tracing atomic.Bool

// EnableTracing turns construction-site tracing on or off. Safe to call at
// any time from any goroutine.
func EnableTracing(on bool) { tracing.Store(on) }

func traceEnabled() bool { return tracing.Load() }

// traceAttrs returns attrs extended with a construction-site title
// attribute. On any failure the original attrs are returned; tracing never
// fails an allocation.
func (a *Arena) traceAttrs(m *meta.Element, attrs AttrSlice) AttrSlice {
	for i := 0; i < attrs.Len(); i++ {
		ref, err := a.AttrAt(attrs, i)
		if err != nil {
			return attrs
		}
		at, err := a.Attr(ref)
		if err != nil {
			return attrs
		}
		if at.Name == "title" {
			return attrs
		}
	}

	site := callSite()
	if site == "" {
		return attrs
	}

	l := a.NewAttrList()
	for i := 0; i < attrs.Len(); i++ {
		ref, _ := a.AttrAt(attrs, i)
		if err := l.Push(ref); err != nil {
			return attrs
		}
	}
	ref, err := a.allocAttr(Attr{Name: "title", Value: "generated at: " + site})
	if err != nil {
		return attrs
	}
	if err := l.Push(ref); err != nil {
		return attrs
	}
	return l.Slice()
}

// pkgFuncPrefix matches this package's own functions by import path, which
// is stable regardless of where the module is checked out.
const pkgFuncPrefix = "github.com/grovekit/grove/arena."

// internalFrame reports whether frame belongs to this package's non-test
// code. Test files count as callers so their construction sites are
// recorded like anyone else's.
func internalFrame(frame runtime.Frame) bool {
	return strings.HasPrefix(frame.Function, pkgFuncPrefix) &&
		!strings.HasSuffix(frame.File, "_test.go")
}

// callSite returns the first caller frame outside this package.
func callSite() string {
	var pcs [12]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && !internalFrame(frame) {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			return ""
		}
	}
}
