package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTimers replaces the Center's timer factory with one that records the
// scheduled callbacks without ever firing them.
func stubTimers(c *Center) *[]func() {
	callbacks := &[]func(){}
	c.afterFunc = func(d time.Duration, f func()) *time.Timer {
		*callbacks = append(*callbacks, f)
		t := time.NewTimer(time.Hour)
		t.Stop()
		return t
	}
	return callbacks
}

func TestCenter_PushAndAutoDismiss(t *testing.T) {
	c := NewCenter(4 * time.Second)
	defer c.Close()
	callbacks := stubTimers(c)

	first := c.Push(LevelInfo, "uploading 2 files")
	second := c.Push(LevelSuccess, "2 files uploaded")

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)

	// Firing the first timer dismisses only the first toast.
	require.Len(t, *callbacks, 2)
	(*callbacks)[0]()

	active = c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}

func TestCenter_ManualDismissCancelsTimer(t *testing.T) {
	c := NewCenter(4 * time.Second)
	defer c.Close()
	callbacks := stubTimers(c)

	toast := c.Push(LevelError, "connection error")

	assert.True(t, c.Dismiss(toast.ID))
	assert.False(t, c.Dismiss(toast.ID), "second dismissal is a no-op")

	// The stale timer callback must not panic or resurrect anything.
	(*callbacks)[0]()
	assert.Empty(t, c.Active())
}

func TestCenter_WelcomeGuardIsOneShot(t *testing.T) {
	c := NewCenter(time.Second)
	defer c.Close()

	assert.True(t, c.MarkWelcomeShown())
	assert.False(t, c.MarkWelcomeShown())
	assert.False(t, c.MarkWelcomeShown())
}

func TestCenter_Close(t *testing.T) {
	c := NewCenter(time.Second)
	stubTimers(c)

	c.Push(LevelInfo, "one")
	c.Push(LevelInfo, "two")
	c.Close()

	assert.Empty(t, c.Active())

	// Closed centers accept no new toasts.
	c.Push(LevelInfo, "three")
	assert.Empty(t, c.Active())
}
