package flow

import (
	"slices"

	"github.com/tyukiand/flow/internal"
)

// Pure creates a constant cell holding value.
func Pure[A any](ctx *Context, value A) Cell[A] {
	return Cell[A]{ctx: ctx, cell: internal.NewConstant(value)}
}

// Unit creates a constant cell of the unit type, useful when only a
// cell's dependency structure matters, not its value.
func Unit(ctx *Context) Cell[struct{}] {
	return Pure(ctx, struct{}{})
}

// Delay creates a lazy wrapper whose inner cell is the result of
// calling thunk, evaluated at most once, on first use. This is how
// forward references (a cell that mentions itself before it has been
// declared) are expressed: see Accumulator.
func Delay[A any](ctx *Context, thunk func() Cell[A]) Cell[A] {
	return Cell[A]{
		ctx: ctx,
		cell: internal.NewDelay(func() internal.Cell {
			return thunk().cell
		}),
	}
}

// Accumulator creates a multi-input accumulator: a stateful cell
// holding B, seeded with init, whose value is recomputed by combine
// whenever one or more of inputs changes. combine receives the
// accumulator's current value and the current values of the inputs
// flagged as changed, never zero of them: on the first recomputation
// every input, afterwards every input that depends on an upstream
// accumulator whose value changed (whether or not that input's own
// value differs). The order of the changed slice is not defined.
//
// inputs may include a self-reference via Delay, which is how cyclic
// equations (x = f(x, ...)) are expressed; the solver breaks the cycle
// at the accumulator boundary and iterates to a fixpoint.
//
// inputs is a set, not a list: declaring the same cell twice is
// rejected with an E-DUPLICATE-INPUT panic.
func Accumulator[A, B any](ctx *Context, inputs []Cell[A], init B, combine func(acc B, changed []A) B) Cell[B] {
	erasedInputs := make([]internal.Cell, 0, len(inputs))
	for _, in := range inputs {
		assertSameContext(ctx, in.ctx)
		internal.Assertf(!slices.Contains(erasedInputs, in.cell), "E-DUPLICATE-INPUT",
			"accumulator declared the same input cell more than once")
		erasedInputs = append(erasedInputs, in.cell)
	}

	acc := internal.NewAccumulator(erasedInputs, init, func(accAny any, changedAny []any) any {
		changed := make([]A, len(changedAny))
		for i, v := range changedAny {
			changed[i] = as[A](v)
		}
		return combine(as[B](accAny), changed)
	})

	return Cell[B]{ctx: ctx, cell: acc}
}

// AccumulatorSingle is sugar for Accumulator with a single input: the
// solver still tracks the same accumulator machinery, but combine sees
// exactly one changed value at a time instead of a slice.
func AccumulatorSingle[A, B any](ctx *Context, input Cell[A], init B, combine func(acc B, changed A) B) Cell[B] {
	return Accumulator(ctx, []Cell[A]{input}, init, func(acc B, changed []A) B {
		internal.Assertf(len(changed) == 1, "E-SINGLE-INPUT",
			"single-input accumulator received %d changed inputs, expected exactly 1", len(changed))
		return combine(acc, changed[0])
	})
}
