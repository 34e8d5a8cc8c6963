package internal

import "reflect"

// ReactiveCell holds a mutable value and a list of update callbacks.
// On Update, it recomputes the value and, only if the result differs
// from the one currently held, replaces it and fires every registered
// callback exactly once, in registration order. Equality is structural
// (reflect.DeepEqual), not `==`: accumulator values are frequently sets
// or slices, which are not `comparable` in Go's generic sense.
//
// This suppression is load-bearing, not an optimization: without it, a
// fixpoint would ping-pong its callbacks forever.
type ReactiveCell struct {
	value     any
	callbacks []func()

	// recompute produces the next candidate value from the current
	// value and an update hint. Supplied by the owner (Accumulator).
	recompute func(current any, hint any) any
}

// NewReactiveCell constructs a cell holding initial, whose future values
// are produced by recompute.
func NewReactiveCell(initial any, recompute func(current any, hint any) any) *ReactiveCell {
	return &ReactiveCell{
		value:     initial,
		recompute: recompute,
	}
}

// CurrentValue is a read-only view of the stored value.
func (c *ReactiveCell) CurrentValue() any {
	return c.value
}

// RegisterOnUpdate appends cb to the callback list. Multiple
// registrations are allowed and run in registration order.
func (c *ReactiveCell) RegisterOnUpdate(cb func()) {
	c.callbacks = append(c.callbacks, cb)
}

// Update computes the next value from hint and, if it differs from the
// current one, replaces it and runs every callback exactly once.
// Otherwise it does nothing: no callback fires, no state changes.
func (c *ReactiveCell) Update(hint any) {
	next := c.recompute(c.value, hint)
	if structurallyEqual(next, c.value) {
		return
	}

	c.value = next
	for _, cb := range c.callbacks {
		cb()
	}
}

func structurallyEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
