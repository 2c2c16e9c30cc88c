package timer

import "time"

// Timer reports wall-clock seconds since creation or the last Reset,
// backed by the runtime monotonic clock.
type Timer struct {
	start time.Time
}

func New() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Reset() {
	t.start = time.Now()
}

func (t *Timer) ElapsedSeconds() float64 {
	return time.Since(t.start).Seconds()
}
