package internal

import "container/heap"

// Worklist is a mutable priority queue of loci with ordered, coalescing
// delivery of todos. Multiple enqueues of the same locus collapse into
// one pending entry whose todos have been merged by combine; the
// locus itself moves at most once through the underlying heap for any
// given pending batch.
type Worklist[L comparable, T any] struct {
	doWork     func(L, T)
	emptyTodos T
	combine    func(incoming, pending T) T

	queue   *locusQueue[L]
	pending map[L]T
	queued  map[L]bool
}

// NewWorklist constructs a worklist. less is the total order on loci
// (ascending: the locus for which less reports true first is served
// first).
func NewWorklist[L comparable, T any](
	doWork func(L, T),
	emptyTodos T,
	combine func(incoming, pending T) T,
	less func(a, b L) bool,
) *Worklist[L, T] {
	q := &locusQueue[L]{less: less}
	heap.Init(q)

	return &Worklist[L, T]{
		doWork:     doWork,
		emptyTodos: emptyTodos,
		combine:    combine,
		queue:      q,
		pending:    make(map[L]T),
		queued:     make(map[L]bool),
	}
}

// AddTodos ensures l is in the queue and merges t into its pending
// batch via combine.
func (w *Worklist[L, T]) AddTodos(l L, t T) {
	if prev, ok := w.pending[l]; ok {
		w.pending[l] = w.combine(t, prev)
	} else {
		w.pending[l] = w.combine(t, w.emptyTodos)
	}

	if !w.queued[l] {
		w.queued[l] = true
		heap.Push(w.queue, l)
	}
}

// WorkUntilEmpty drains the queue: pop the minimum locus, remove its
// pending batch *before* invoking doWork (so doWork may re-enqueue the
// same locus for a later iteration), then call doWork. There is no
// separate "seen" tracking — re-enqueuing during doWork is exactly what
// drives convergence on cyclic graphs.
func (w *Worklist[L, T]) WorkUntilEmpty() {
	for w.queue.Len() > 0 {
		l := heap.Pop(w.queue).(L)
		w.queued[l] = false

		tasks := w.pending[l]
		delete(w.pending, l)

		w.doWork(l, tasks)
	}
}

// locusQueue is an indexed priority queue: a heap.Interface over a
// caller-supplied total order on loci.
type locusQueue[L any] struct {
	items []L
	less  func(a, b L) bool
}

func (q *locusQueue[L]) Len() int           { return len(q.items) }
func (q *locusQueue[L]) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }
func (q *locusQueue[L]) Swap(i, j int)      { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *locusQueue[L]) Push(x any) {
	q.items = append(q.items, x.(L))
}

func (q *locusQueue[L]) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}
