package flow

import "github.com/tyukiand/flow/internal"

// Map2 combines the values of two cells with f, implemented entirely
// on top of Zip and Map.
func Map2[A, B, C any](a Cell[A], b Cell[B], f func(A, B) C) Cell[C] {
	return Map(Zip(a, b), func(p Pair[A, B]) C { return f(p.First, p.Second) })
}

// Map3 combines the values of three cells with f.
func Map3[A, B, C, D any](a Cell[A], b Cell[B], c Cell[C], f func(A, B, C) D) Cell[D] {
	return Map(Zip3(a, b, c), func(t Triple[A, B, C]) D { return f(t.First, t.Second, t.Third) })
}

// Ap applies a cell of functions to a cell of arguments.
func Ap[A, B any](f Cell[func(A) B], a Cell[A]) Cell[B] {
	return Map2(f, a, func(fn func(A) B, v A) B { return fn(v) })
}

// Ap2 applies a cell of two-argument functions to two cells of
// arguments.
func Ap2[A, B, C any](f Cell[func(A, B) C], a Cell[A], b Cell[B]) Cell[C] {
	return Map3(f, a, b, func(fn func(A, B) C, av A, bv B) C { return fn(av, bv) })
}

// Sequence turns a slice of cells into a cell of a slice, preserving
// order. It is defined directly against the n-ary combinator rather
// than by folding Zip pairwise, so that Sequence(cs).Get() and
// Traverse(cs, id).Get() agree exactly.
func Sequence[A any](ctx *Context, cells []Cell[A]) Cell[[]A] {
	erased := make([]internal.Cell, len(cells))
	for i, c := range cells {
		assertSameContext(ctx, c.ctx)
		erased[i] = c.cell
	}

	return Cell[[]A]{
		ctx: ctx,
		cell: internal.NewCombinator(erased, func(values []any) any {
			out := make([]A, len(values))
			for i, v := range values {
				out[i] = as[A](v)
			}
			return out
		}),
	}
}

// Traverse maps f over items and sequences the resulting cells.
// Traverse(ctx, items, f) == Sequence(ctx, map(items, f)).
func Traverse[T, A any](ctx *Context, items []T, f func(T) Cell[A]) Cell[[]A] {
	cells := make([]Cell[A], len(items))
	for i, item := range items {
		cells[i] = f(item)
	}
	return Sequence(ctx, cells)
}
