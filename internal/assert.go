package internal

import "fmt"

// AssertionsEnabled gates internal-consistency checks that describe
// cannot-happen conditions: states that must not occur if both this
// package and its caller respect their contracts. Turn it off to drop
// the check overhead once a program has been shaken out; left on by
// default.
var AssertionsEnabled = true

// assertf panics with a stable, greppable id when cond is false and
// assertions are enabled. It never returns an error value: there is no
// recoverable path for a contract violation here, only a bug report.
func assertf(cond bool, id, format string, args ...any) {
	Assertf(cond, id, format, args...)
}

// Assertf is assertf, exported for use by the flow package, which needs
// the same cannot-happen-condition discipline for its own usage-
// violation guards (cross-goroutine, cross-context).
func Assertf(cond bool, id, format string, args ...any) {
	if !cond && AssertionsEnabled {
		panic(fmt.Sprintf("flow: invariant %s violated: "+format, prepend(id, args)...))
	}
}

func prepend(id string, args []any) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, id)
	out = append(out, args...)
	return out
}
