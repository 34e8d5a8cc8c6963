package internal

import "fmt"

// Accumulator is the only stateful cell kind. It holds mutable state of
// some type, parameterized by a set of accumulated inputs, an initial
// value, and a combiner supplied by the caller (flow.Accumulator's
// erased form). It participates in both Dfs (as a DfsNode) and the
// Worklist (as a locus).
type Accumulator struct {
	*ReactiveCell

	label string // tracing hook; no semantic effect.

	// accumulatedInputs is declared at construction and fixed for the
	// lifetime of the accumulator: there is no API path to add inputs
	// later.
	accumulatedInputs []Cell

	userCombine func(acc any, changed []any) any

	discovery int
	finish    int

	// childNodesToInputs maps each upstream accumulator reachable with
	// no intervening accumulator to the subset of this accumulator's
	// inputs that route through it. Built lazily, once, on first DFS
	// discovery (see childNodes below).
	childNodesToInputs map[*Accumulator]map[Cell]struct{}
	childNodesBuilt    bool
}

// NewAccumulator constructs an accumulator over inputs, all erased to
// Cell, with initial state and a combiner operating on the erased
// values. combine receives the accumulator's current value and the
// current values of whichever inputs were flagged as changed; it is the
// caller's responsibility (flow.Accumulator) to restore static types at
// the boundary.
func NewAccumulator(inputs []Cell, initial any, combine func(acc any, changed []any) any) *Accumulator {
	a := &Accumulator{
		accumulatedInputs:  inputs,
		userCombine:        combine,
		discovery:          unassignedTime,
		finish:             unassignedTime,
		childNodesToInputs: make(map[*Accumulator]map[Cell]struct{}),
	}
	a.ReactiveCell = NewReactiveCell(initial, a.recomputeFromChangedInputs)
	return a
}

func (a *Accumulator) recomputeFromChangedInputs(current any, hint any) any {
	changed := hint.(map[Cell]struct{})
	assertf(len(changed) > 0, "E-EMPTY-BATCH", "accumulator update invoked with an empty change batch")

	values := make([]any, 0, len(changed))
	for c := range changed {
		values = append(values, c.CurrentValue())
	}
	return a.userCombine(current, values)
}

// Update runs the accumulator's combiner over the cells flagged changed
// in changedInputs, possibly updating its value and firing callbacks.
func (a *Accumulator) Update(changedInputs map[Cell]struct{}) {
	a.ReactiveCell.Update(changedInputs)
}

// AccumulatedInputs returns the declared inputs, in registration order.
func (a *Accumulator) AccumulatedInputs() []Cell {
	return a.accumulatedInputs
}

// UpstreamAccumulators caps visibility to exactly {self}: an
// accumulator is how a cycle gets broken into a supernode. Downstream
// non-accumulators report their transitive accumulators; an accumulator
// never does.
func (a *Accumulator) UpstreamAccumulators() map[*Accumulator]struct{} {
	return map[*Accumulator]struct{}{a: {}}
}

func (a *Accumulator) setName(name string) { a.label = name }
func (a *Accumulator) name() string        { return a.label }

// String renders the accumulator's name, if any, and its current
// value, for diagnostic output. It has no effect on solving.
func (a *Accumulator) String() string {
	if a.label == "" {
		return fmt.Sprintf("Accumulator(<unnamed>, value=%v)", a.CurrentValue())
	}
	return fmt.Sprintf("Accumulator(%s, value=%v)", a.label, a.CurrentValue())
}

// GoString backs %#v output with the same name and value.
func (a *Accumulator) GoString() string {
	return fmt.Sprintf("&Accumulator{label: %q, value: %#v}", a.label, a.CurrentValue())
}

// --- DfsNode ---

func (a *Accumulator) discoveryTime() int       { return a.discovery }
func (a *Accumulator) finishTime() int          { return a.finish }
func (a *Accumulator) setDiscoveryTime(t int)   { a.discovery = t }
func (a *Accumulator) setFinishTime(t int)      { a.finish = t }
func (a *Accumulator) isDiscovered() bool       { return a.discovery != unassignedTime }
func (a *Accumulator) isFinished() bool         { return a.finish != unassignedTime }

// childNodes returns the key set of childNodesToInputs, building it
// lazily on first access by walking each input's UpstreamAccumulators.
// This is the one place childNodesToInputs is populated, and it
// happens at DFS discovery time: childNodes is exactly what Dfs calls
// right after stamping discovery and invoking onDiscovery.
func (a *Accumulator) childNodes() []DfsNode {
	if !a.childNodesBuilt {
		for _, input := range a.accumulatedInputs {
			for u := range input.UpstreamAccumulators() {
				if a.childNodesToInputs[u] == nil {
					a.childNodesToInputs[u] = make(map[Cell]struct{})
				}
				a.childNodesToInputs[u][input] = struct{}{}
			}
		}
		a.childNodesBuilt = true
	}

	nodes := make([]DfsNode, 0, len(a.childNodesToInputs))
	for u := range a.childNodesToInputs {
		nodes = append(nodes, u)
	}
	return nodes
}

// ChildNodesToInputs exposes the built map for the engine's
// onDiscovery callback registration. Forces the lazy build if it has
// not happened yet (harmless to call more than once; idempotent).
func (a *Accumulator) ChildNodesToInputs() map[*Accumulator]map[Cell]struct{} {
	a.childNodes()
	return a.childNodesToInputs
}
