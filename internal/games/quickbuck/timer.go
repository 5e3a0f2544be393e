package quickbuck

import "time"

// Timer is a repeating countdown.
// A tick that carries elapsed time past the period fires once and keeps the
// remainder modulo the period, however many periods the tick spanned.
type Timer struct {
	period   time.Duration
	elapsed  time.Duration
	finished bool
}

// NewTimer creates a running repeating timer. period must be positive.
func NewTimer(period time.Duration) *Timer {
	if period <= 0 {
		panic("quickbuck: timer period must be positive")
	}
	return &Timer{period: period}
}

// Tick advances the timer by dt and reports whether it fired during this tick.
// Negative dt is treated as zero.
func (t *Timer) Tick(dt time.Duration) bool {
	t.finished = false
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed >= t.period {
		t.elapsed %= t.period
		t.finished = true
	}
	return t.finished
}

// JustFinished reports whether the most recent Tick fired.
func (t *Timer) JustFinished() bool {
	return t.finished
}

// Elapsed returns the time accumulated toward the next firing.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Period returns the timer period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Reset restarts the countdown from zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}
