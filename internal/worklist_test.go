package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorklistCoalescing(t *testing.T) {
	type call struct {
		locus string
		total int
	}
	var calls []call

	doWork := func(l string, t int) {
		calls = append(calls, call{l, t})
	}

	w := NewWorklist(doWork, 0, func(incoming, pending int) int { return incoming + pending }, func(a, b string) bool { return a < b })

	w.AddTodos("b", 42)
	w.AddTodos("a", 3)
	w.AddTodos("c", 400)
	w.AddTodos("a", 7)
	w.AddTodos("b", 58)
	w.AddTodos("c", 600)

	w.WorkUntilEmpty()

	assert.Equal(t, []call{
		{"a", 10},
		{"b", 100},
		{"c", 1000},
	}, calls)
}

func TestWorklistRequeueDuringWork(t *testing.T) {
	var calls []string
	var w *Worklist[string, int]

	doWork := func(l string, t int) {
		calls = append(calls, l)
		// re-enqueue once, simulating a locus whose work produces more
		// work for itself.
		if t < 3 {
			w.AddTodos(l, t+1)
		}
	}

	w = NewWorklist(doWork, 0, func(incoming, pending int) int { return incoming }, func(a, b string) bool { return a < b })
	w.AddTodos("only", 1)
	w.WorkUntilEmpty()

	assert.Equal(t, []string{"only", "only", "only"}, calls)
}
