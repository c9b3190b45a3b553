package pomodoro

import (
	"fmt"
	"time"
)

// Timer is a countdown focus timer. It holds whole seconds and is stepped
// once a second by the UI tick; it never reads the wall clock itself.
type Timer struct {
	length    time.Duration
	remaining time.Duration
	running   bool
	finished  bool
}

// New returns a stopped timer with the full length remaining.
// A non-positive length falls back to the classic 25 minutes.
func New(length time.Duration) *Timer {
	if length <= 0 {
		length = 25 * time.Minute
	}
	length = length.Truncate(time.Second)
	return &Timer{length: length, remaining: length}
}

// Toggle starts a paused timer and pauses a running one.
// A finished timer must be Reset first.
func (t *Timer) Toggle() {
	if t.finished {
		return
	}
	t.running = !t.running
}

// Reset stops the timer and restores the full length.
func (t *Timer) Reset() {
	t.remaining = t.length
	t.running = false
	t.finished = false
}

// Tick advances the countdown by one second and reports whether this tick
// finished the session. Ticks while paused or finished are ignored.
func (t *Timer) Tick() bool {
	if !t.running || t.finished {
		return false
	}

	t.remaining -= time.Second
	if t.remaining <= 0 {
		t.remaining = 0
		t.running = false
		t.finished = true
		return true
	}
	return false
}

func (t *Timer) Running() bool { return t.running }

func (t *Timer) Finished() bool { return t.finished }

func (t *Timer) Remaining() time.Duration { return t.remaining }

// Clock renders the remaining time as MM:SS.
func (t *Timer) Clock() string {
	if t.finished {
		return "Done!"
	}
	total := int(t.remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
