package when

// Clock yields the current instant.  It exists so that components measuring
// elapsed time can be driven deterministically in tests.
type Clock interface {
	Now() *When
}

type systemClock struct{}

func (systemClock) Now() *When { return UTCNow() }

// Timer measures the While elapsed between two readings of a Clock.
//
//	timer := when.NewTimer()
//	// ... work ...
//	elapsed := timer.Toc()
type Timer struct {
	clock   Clock
	started *When
	stopped *When
	elapsed While
}

// NewTimer starts a timer against the system clock.
func NewTimer() *Timer {
	return NewTimerWithClock(systemClock{})
}

// NewTimerWithClock starts a timer against the supplied clock.
func NewTimerWithClock(clock Clock) *Timer {
	t := &Timer{clock: clock}
	t.Tic()
	return t
}

// Tic restarts the timer at the clock's current reading.
func (t *Timer) Tic() {
	t.started = t.clock.Now()
	t.stopped = nil
	t.elapsed = While{}
}

// Toc captures the elapsed While since the last Tic and keeps it on the
// timer.
func (t *Timer) Toc() While {
	t.stopped = t.clock.Now()
	t.elapsed = t.stopped.Sub(t.started)
	return t.elapsed
}

// Started is the reading taken at the last Tic.
func (t *Timer) Started() *When { return t.started }

// Stopped is the reading taken at the last Toc, or nil before the first Toc.
func (t *Timer) Stopped() *When { return t.stopped }

// Elapsed is the While captured by the last Toc.
func (t *Timer) Elapsed() While { return t.elapsed }
