package internal

// Cell is the capability set every dataflow node exposes, whether
// stateful (Accumulator) or derived (the combinator/constant/delay
// kinds in cells.go).
type Cell interface {
	// CurrentValue is the cell's current value. For derived cells this
	// is computed fresh from upstream CurrentValues on every call; for
	// an Accumulator it is the authoritative, cached state.
	CurrentValue() any

	// UpstreamAccumulators is the set of accumulators whose current
	// value directly influences this cell's current value with no
	// intervening accumulator. An Accumulator reports only itself.
	UpstreamAccumulators() map[*Accumulator]struct{}
}

// namer is implemented by cell kinds that support attaching a
// human-readable name for diagnostic output. It has no semantic effect
// on solving.
type namer interface {
	setName(string)
	name() string
}

// SetName attaches a human-readable name to c, if c supports it.
func SetName(c Cell, name string) {
	if n, ok := c.(namer); ok {
		n.setName(name)
	}
}

// Name reads back the name attached via SetName, or "" if none was set
// or c does not support naming.
func Name(c Cell) string {
	if n, ok := c.(namer); ok {
		return n.name()
	}
	return ""
}

func unionAccumulators(sets ...map[*Accumulator]struct{}) map[*Accumulator]struct{} {
	out := make(map[*Accumulator]struct{})
	for _, s := range sets {
		for u := range s {
			out[u] = struct{}{}
		}
	}
	return out
}
