package flightsim

import (
	"testing"

	kitlog "github.com/go-kit/kit/log"
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// newTestEngine returns a quiet engine on the reference vehicle.
func newTestEngine() *Engine {
	e := NewEngine(Falcon9Class(), DefaultLimits())
	e.SetLogger(kitlog.NewNopLogger())
	return e
}

// advanceUntil ticks the engine until the predicate holds or the tick budget
// runs out, returning whether the predicate was reached.
func advanceUntil(e *Engine, maxTicks int, pred func() bool) bool {
	for i := 0; i < maxTicks; i++ {
		e.Advance()
		if pred() {
			return true
		}
	}
	return false
}
