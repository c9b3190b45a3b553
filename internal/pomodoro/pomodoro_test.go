package pomodoro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToTwentyFiveMinutes(t *testing.T) {
	timer := New(0)
	assert.Equal(t, "25:00", timer.Clock())
	assert.False(t, timer.Running())
}

func TestTickOnlyWhileRunning(t *testing.T) {
	timer := New(time.Minute)

	assert.False(t, timer.Tick())
	assert.Equal(t, "01:00", timer.Clock())

	timer.Toggle()
	assert.True(t, timer.Running())
	assert.False(t, timer.Tick())
	assert.Equal(t, "00:59", timer.Clock())

	timer.Toggle()
	assert.False(t, timer.Tick())
	assert.Equal(t, "00:59", timer.Clock())
}

func TestCountdownFinishes(t *testing.T) {
	timer := New(3 * time.Second)
	timer.Toggle()

	assert.False(t, timer.Tick())
	assert.False(t, timer.Tick())
	assert.True(t, timer.Tick())

	assert.True(t, timer.Finished())
	assert.False(t, timer.Running())
	assert.Equal(t, "Done!", timer.Clock())

	// Finished timers ignore further ticks and toggles.
	assert.False(t, timer.Tick())
	timer.Toggle()
	assert.False(t, timer.Running())
}

func TestResetRestoresFullLength(t *testing.T) {
	timer := New(2 * time.Second)
	timer.Toggle()
	timer.Tick()
	timer.Tick()
	assert.True(t, timer.Finished())

	timer.Reset()
	assert.False(t, timer.Finished())
	assert.False(t, timer.Running())
	assert.Equal(t, "00:02", timer.Clock())
}
