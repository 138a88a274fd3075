package field

import "time"

// Clock abstracts timer creation so the autofill confirmation delay can be
// driven by a fake clock in tests.
type Clock interface {
	// AfterFunc schedules f to run once after d elapses.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable scheduled call.
type Timer interface {
	// Stop prevents the call from firing. It reports whether it stopped the
	// timer before the call ran.
	Stop() bool
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns a Clock backed by runtime timers.
func SystemClock() Clock {
	return systemClock{}
}
