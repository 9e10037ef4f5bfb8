package refresh

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastTimer() *Timer {
	t := NewTimer()
	t.tick = 5 * time.Millisecond
	return t
}

func TestTimerRaisesDueAfterInterval(t *testing.T) {
	t.Parallel()

	timer := fastTimer()
	defer timer.Stop()
	timer.SetInterval(3)

	require.Eventually(t, timer.Due, time.Second, time.Millisecond)
}

func TestTimerDueIsConsumedOnRead(t *testing.T) {
	t.Parallel()

	timer := fastTimer()
	defer timer.Stop()
	timer.SetInterval(2)

	require.Eventually(t, timer.Due, time.Second, time.Millisecond)
	assert.False(t, timer.Due(), "reading the flag clears it")

	// The counter keeps going and raises the flag again.
	require.Eventually(t, timer.Due, time.Second, time.Millisecond)
}

func TestTimerStop(t *testing.T) {
	t.Parallel()

	timer := fastTimer()
	timer.SetInterval(1)
	timer.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, timer.Due(), "a stopped timer never raises the flag")
}

func TestTimerZeroIntervalDisables(t *testing.T) {
	t.Parallel()

	timer := fastTimer()
	defer timer.Stop()
	timer.SetInterval(0)

	time.Sleep(50 * time.Millisecond)
	assert.False(t, timer.Due())
}

func TestTimerRestart(t *testing.T) {
	t.Parallel()

	timer := fastTimer()
	defer timer.Stop()

	timer.SetInterval(1000)
	timer.SetInterval(2)

	require.Eventually(t, timer.Due, time.Second, time.Millisecond,
		"restarting replaces the previous interval")
}
