// util.go — small plumbing used by the subsystems built on this core.

package mobx

import (
	"log"
	"sync"
)

// Once wraps f so only the first invocation runs; later calls are no-ops.
func Once(f func()) func() {
	invoked := false
	return func() {
		if invoked {
			return
		}
		invoked = true
		f()
	}
}

// Unique returns xs with structural duplicates removed, keeping the first
// occurrence of each value in order. The input is not modified.
func Unique(xs []Value) []Value {
	out := make([]Value, 0, len(xs))
	for _, x := range xs {
		seen := false
		for _, y := range out {
			if Equal(x, y) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, x)
		}
	}
	return out
}

var (
	deprecatedMu   sync.Mutex
	deprecatedSeen = map[string]bool{}
)

// Deprecated logs a deprecation warning once per distinct message and
// reports whether it fired. Unlike registration-time setup this can run at
// comparison time, so the seen-set is guarded.
func Deprecated(msg string) bool {
	deprecatedMu.Lock()
	defer deprecatedMu.Unlock()
	if deprecatedSeen[msg] {
		return false
	}
	deprecatedSeen[msg] = true
	log.Printf("Deprecated: %s", msg)
	return true
}
