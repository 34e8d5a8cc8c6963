package internal

import "fmt"

// combinatorCell is the shared implementation behind Mapper, Zip, and
// Zip3: all three are an n-ary formal combinator in disguise. It is
// stateless: its value is recomputed from its inputs' current values
// on every read, never cached.
type combinatorCell struct {
	inputs []Cell
	f      func(values []any) any
	label  string
}

// NewCombinator builds a stateless cell whose value is f applied to the
// current values of inputs, in order.
func NewCombinator(inputs []Cell, f func(values []any) any) Cell {
	return &combinatorCell{inputs: inputs, f: f}
}

func (c *combinatorCell) CurrentValue() any {
	values := make([]any, len(c.inputs))
	for i, in := range c.inputs {
		values[i] = in.CurrentValue()
	}
	return c.f(values)
}

func (c *combinatorCell) UpstreamAccumulators() map[*Accumulator]struct{} {
	sets := make([]map[*Accumulator]struct{}, len(c.inputs))
	for i, in := range c.inputs {
		sets[i] = in.UpstreamAccumulators()
	}
	return unionAccumulators(sets...)
}

func (c *combinatorCell) setName(name string) { c.label = name }
func (c *combinatorCell) name() string        { return c.label }

func (c *combinatorCell) String() string {
	if c.label == "" {
		return fmt.Sprintf("Combinator(<unnamed>, value=%v)", c.CurrentValue())
	}
	return fmt.Sprintf("Combinator(%s, value=%v)", c.label, c.CurrentValue())
}

func (c *combinatorCell) GoString() string {
	return fmt.Sprintf("&combinatorCell{label: %q, value: %#v}", c.label, c.CurrentValue())
}

// constantCell is a fixed value with no upstream accumulators: once
// discovered (trivially, since it has nothing to discover), it never
// changes.
type constantCell struct {
	value any
	label string
}

// NewConstant builds a Cell whose value never changes.
func NewConstant(value any) Cell {
	return &constantCell{value: value}
}

func (c *constantCell) CurrentValue() any { return c.value }

func (c *constantCell) UpstreamAccumulators() map[*Accumulator]struct{} {
	return nil
}

func (c *constantCell) setName(name string) { c.label = name }
func (c *constantCell) name() string        { return c.label }

func (c *constantCell) String() string {
	if c.label == "" {
		return fmt.Sprintf("Constant(<unnamed>, value=%v)", c.value)
	}
	return fmt.Sprintf("Constant(%s, value=%v)", c.label, c.value)
}

func (c *constantCell) GoString() string {
	return fmt.Sprintf("&constantCell{label: %q, value: %#v}", c.label, c.value)
}

// delayCell is a one-shot lazy wrapper: its thunk is evaluated at most
// once, on first access to CurrentValue or UpstreamAccumulators, which
// is exactly what breaks declaration-order (forward-reference) cycles
// in user code. The engine is single-threaded and synchronous, so a
// plain resolved flag suffices — no sync.Once is needed for the
// atomicity it buys under concurrent first access.
type delayCell struct {
	thunk    func() Cell
	resolved bool
	inner    Cell
	label    string
}

// NewDelay builds a Cell whose inner cell is produced by thunk, called
// at most once.
func NewDelay(thunk func() Cell) Cell {
	return &delayCell{thunk: thunk}
}

func (c *delayCell) resolve() Cell {
	if !c.resolved {
		c.inner = c.thunk()
		c.resolved = true
		c.thunk = nil
	}
	return c.inner
}

func (c *delayCell) CurrentValue() any { return c.resolve().CurrentValue() }

func (c *delayCell) UpstreamAccumulators() map[*Accumulator]struct{} {
	return c.resolve().UpstreamAccumulators()
}

func (c *delayCell) setName(name string) { c.label = name }
func (c *delayCell) name() string        { return c.label }

func (c *delayCell) String() string {
	if c.label == "" {
		return fmt.Sprintf("Delay(<unnamed>, resolved=%v)", c.resolved)
	}
	return fmt.Sprintf("Delay(%s, resolved=%v)", c.label, c.resolved)
}

func (c *delayCell) GoString() string {
	return fmt.Sprintf("&delayCell{label: %q, resolved: %v}", c.label, c.resolved)
}
