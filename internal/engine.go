package internal

// Engine ties ReactiveCell, Dfs, and Worklist together: it holds one
// Dfs time counter and one Worklist, both scoped to a single solver
// context. Multiple Engines are fully isolated from one another.
type Engine struct {
	time     *DfsTime
	worklist *Worklist[*Accumulator, map[Cell]struct{}]
}

// NewEngine creates a fresh, empty solver context.
func NewEngine() *Engine {
	e := &Engine{time: NewDfsTime()}
	e.worklist = NewWorklist(e.doWork, map[Cell]struct{}{}, unionCells, accumulatorFinishTimeLess)
	return e
}

func accumulatorFinishTimeLess(a, b *Accumulator) bool {
	return a.finishTime() < b.finishTime()
}

func unionCells(incoming, pending map[Cell]struct{}) map[Cell]struct{} {
	if len(incoming) == 0 {
		return pending
	}
	if len(pending) == 0 {
		return incoming
	}

	out := make(map[Cell]struct{}, len(incoming)+len(pending))
	for c := range pending {
		out[c] = struct{}{}
	}
	for c := range incoming {
		out[c] = struct{}{}
	}
	return out
}

// Get forces c to its fixpoint value: if c is an Accumulator and has
// already been discovered, its current value is returned directly
// without any further DFS or worklist activity. Otherwise every
// upstream accumulator reachable from c is discovered and solved to
// quiescence before c's value is read.
func (e *Engine) Get(c Cell) any {
	if a, ok := c.(*Accumulator); ok {
		return e.getAccumulator(a)
	}
	return e.getDerived(c)
}

func (e *Engine) getAccumulator(a *Accumulator) any {
	if !a.isDiscovered() {
		e.discoverAndSolveFrom(a)
	}
	return a.CurrentValue()
}

func (e *Engine) getDerived(c Cell) any {
	for u := range c.UpstreamAccumulators() {
		e.getAccumulator(u)
	}
	return c.CurrentValue()
}

// discoverAndSolveFrom runs the two-phase solve: DFS-discover the
// reachable subgraph rooted at root, registering cross-node callbacks
// and seeding the worklist as it goes, then drive the worklist to
// quiescence.
func (e *Engine) discoverAndSolveFrom(root *Accumulator) {
	Dfs(root, e.onDiscovery, e.onFinish, e.time)
	e.worklist.WorkUntilEmpty()
}

func (e *Engine) doWork(acc *Accumulator, todos map[Cell]struct{}) {
	acc.Update(todos)
}

// onDiscovery registers, for every upstream accumulator u of n, a
// callback on u: "when u's value changes, enqueue n with exactly the
// inputs of n that route through u." The set passed to AddTodos is
// precisely n.childNodesToInputs[u], built lazily by childNodes.
func (e *Engine) onDiscovery(node DfsNode) {
	n := node.(*Accumulator)

	for u, inputs := range n.ChildNodesToInputs() {
		inputsForU := inputs
		u.RegisterOnUpdate(func() {
			e.worklist.AddTodos(n, inputsForU)
		})
	}
}

// onFinish seeds n with the need to process all of its inputs at least
// once — unless it has none, in which case it keeps its initial value
// permanently.
func (e *Engine) onFinish(node DfsNode) {
	n := node.(*Accumulator)

	inputs := n.AccumulatedInputs()
	if len(inputs) == 0 {
		return
	}

	all := make(map[Cell]struct{}, len(inputs))
	for _, in := range inputs {
		all[in] = struct{}{}
	}
	e.worklist.AddTodos(n, all)
}
