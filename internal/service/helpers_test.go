package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// manualClock is a settable time source.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// manualTimer is one callback registered with manualTimers.
type manualTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

// manualTimers records scheduled callbacks and runs them only when the test
// says so.
type manualTimers struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (m *manualTimers) AfterFunc(d time.Duration, f func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	timer := &manualTimer{d: d, f: f}
	m.timers = append(m.timers, timer)
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		wasActive := !timer.stopped
		timer.stopped = true
		return wasActive
	}
}

// Active returns the timers that were neither stopped nor fired.
func (m *manualTimers) Active() []*manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	var active []*manualTimer
	for _, timer := range m.timers {
		if !timer.stopped {
			active = append(active, timer)
		}
	}
	return active
}

// Count returns how many timers were ever scheduled.
func (m *manualTimers) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Fire runs the i-th scheduled callback, even if it was stopped, the way a
// real timer that already started racing with Stop would.
func (m *manualTimers) Fire(t *testing.T, i int) {
	t.Helper()

	m.mu.Lock()
	if i < 0 || i >= len(m.timers) {
		m.mu.Unlock()
		require.Failf(t, "no such timer", "timer #%d of %d", i, len(m.timers))
	}
	timer := m.timers[i]
	timer.stopped = true
	m.mu.Unlock()

	timer.f()
}

// FireLast runs the most recently scheduled callback.
func (m *manualTimers) FireLast(t *testing.T) {
	t.Helper()
	m.Fire(t, m.Count()-1)
}
