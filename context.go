// Package flow implements a dataflow fixpoint engine: given a
// user-declared network of mutually dependent cells, possibly cyclic,
// it computes a converged solution by chaotic iteration. Equations of
// the form x = f(x, y, z), including self-reference, are expressed with
// Accumulator and solved by calling Get.
package flow

import (
	"github.com/petermattis/goid"
	"github.com/tyukiand/flow/internal"
)

// Context is an isolated solver instance, owning one DFS time counter
// and one worklist. Two contexts share no state: solving one never
// affects the other, even for "the same" equations built twice.
//
// A Context must only be used from the goroutine that created it; Get
// asserts this on every call.
type Context struct {
	engine *internal.Engine
	gid    int64
}

// NewContext creates a fresh, empty solver context.
func NewContext() *Context {
	return &Context{
		engine: internal.NewEngine(),
		gid:    goid.Get(),
	}
}

func (ctx *Context) checkOwnership() {
	got := goid.Get()
	internal.Assertf(got == ctx.gid, "E-CROSS-GOROUTINE",
		"Context created on goroutine %d used from goroutine %d", ctx.gid, got)
}

func sameContext(a, b *Context) bool {
	return a.engine == b.engine
}

func assertSameContext(a, b *Context) {
	internal.Assertf(sameContext(a, b), "E-CROSS-CONTEXT",
		"combinator applied to cells from different Contexts")
}
