package flow

import "github.com/tyukiand/flow/internal"

// Cell is a dataflow node producing a value of type A. Cells are
// created by the constructors in this package (Pure, Delay,
// Accumulator, Map, Zip, ...) and are immutable structurally once
// built: there is no API to add inputs to an existing cell.
type Cell[A any] struct {
	ctx  *Context
	cell internal.Cell
}

// Get forces this cell (and every accumulator it transitively depends
// on) to its fixpoint value and returns it. Calling Get twice returns
// equal values; the second call performs no additional work.
func (c Cell[A]) Get() A {
	c.ctx.checkOwnership()
	return as[A](c.ctx.engine.Get(c.cell))
}

// Named attaches a human-readable name to the cell for diagnostic
// output. It has no effect on solving and returns c unchanged for
// chaining at the construction site.
func (c Cell[A]) Named(name string) Cell[A] {
	internal.SetName(c.cell, name)
	return c
}

// Map applies f to c's value, producing a new stateless cell. It
// obeys the applicative/functor laws: Map(c, id) == c, and
// Map(Map(c, g), f) == Map(c, f∘g).
func Map[A, B any](c Cell[A], f func(A) B) Cell[B] {
	return Cell[B]{
		ctx: c.ctx,
		cell: internal.NewCombinator([]internal.Cell{c.cell}, func(values []any) any {
			return f(as[A](values[0]))
		}),
	}
}

// Pair is the value of a Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs the values of two cells in the same Context.
func Zip[A, B any](a Cell[A], b Cell[B]) Cell[Pair[A, B]] {
	assertSameContext(a.ctx, b.ctx)

	return Cell[Pair[A, B]]{
		ctx: a.ctx,
		cell: internal.NewCombinator([]internal.Cell{a.cell, b.cell}, func(values []any) any {
			return Pair[A, B]{First: as[A](values[0]), Second: as[B](values[1])}
		}),
	}
}

// Triple is the value of a Zip3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Zip3 combines the values of three cells in the same Context.
func Zip3[A, B, C any](a Cell[A], b Cell[B], c Cell[C]) Cell[Triple[A, B, C]] {
	assertSameContext(a.ctx, b.ctx)
	assertSameContext(a.ctx, c.ctx)

	return Cell[Triple[A, B, C]]{
		ctx: a.ctx,
		cell: internal.NewCombinator([]internal.Cell{a.cell, b.cell, c.cell}, func(values []any) any {
			return Triple[A, B, C]{First: as[A](values[0]), Second: as[B](values[1]), Third: as[C](values[2])}
		}),
	}
}

// as recovers a static type from an any, with a zero value in place of
// a nil interface (which any cell's initial state may legitimately be
// before its first update).
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
