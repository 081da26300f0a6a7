package components

import (
	"sync"
	"time"

	"github.com/breezetui/breeze"
)

var (
	stopwatchIDMu   sync.Mutex
	lastStopwatchID int
)

func nextStopwatchID() int {
	stopwatchIDMu.Lock()
	defer stopwatchIDMu.Unlock()
	lastStopwatchID++
	return lastStopwatchID
}

// StopwatchTickMsg is sent on every stopwatch tick.
type StopwatchTickMsg struct{ ID int }

// StopwatchStartStopMsg starts or stops a Stopwatch.
type StopwatchStartStopMsg struct {
	ID      int
	running bool
}

// StopwatchResetMsg resets a Stopwatch to zero.
type StopwatchResetMsg struct{ ID int }

// Stopwatch accumulates elapsed time while running.
type Stopwatch struct {
	Interval time.Duration

	d       time.Duration
	id      int
	running bool
}

// NewStopwatch builds a Stopwatch ticking once a second.
func NewStopwatch() Stopwatch { return NewStopwatchWithInterval(time.Second) }

// NewStopwatchWithInterval builds a Stopwatch with a tick interval other
// than the 1-second default.
func NewStopwatchWithInterval(interval time.Duration) Stopwatch {
	return Stopwatch{Interval: interval, id: nextStopwatchID()}
}

// ID returns the Stopwatch's unique identifier.
func (m Stopwatch) ID() int { return m.id }

// Init starts the stopwatch running.
func (m Stopwatch) Init() breeze.Cmd { return m.Start() }

// Start resumes counting.
func (m Stopwatch) Start() breeze.Cmd {
	id := m.id
	return breeze.Batch(
		func() breeze.Msg { return breeze.NewMsg(StopwatchStartStopMsg{ID: id, running: true}) },
		stopwatchTick(id, m.Interval),
	)
}

// Stop pauses counting.
func (m Stopwatch) Stop() breeze.Cmd {
	id := m.id
	return func() breeze.Msg { return breeze.NewMsg(StopwatchStartStopMsg{ID: id, running: false}) }
}

// Toggle starts the stopwatch if stopped, or stops it if running.
func (m Stopwatch) Toggle() breeze.Cmd {
	if m.running {
		return m.Stop()
	}
	return m.Start()
}

// Reset zeroes the elapsed time without affecting whether it's running.
func (m Stopwatch) Reset() breeze.Cmd {
	id := m.id
	return func() breeze.Msg { return breeze.NewMsg(StopwatchResetMsg{ID: id}) }
}

// Running reports whether the stopwatch is counting.
func (m Stopwatch) Running() bool { return m.running }

// Elapsed returns the accumulated duration.
func (m Stopwatch) Elapsed() time.Duration { return m.d }

// Update implements the component's fold over its own messages.
func (m Stopwatch) Update(msg breeze.Msg) (Stopwatch, breeze.Cmd) {
	if ss, ok := breeze.As[StopwatchStartStopMsg](msg); ok {
		if ss.ID != m.id {
			return m, nil
		}
		m.running = ss.running
		return m, nil
	}
	if r, ok := breeze.As[StopwatchResetMsg](msg); ok {
		if r.ID != m.id {
			return m, nil
		}
		m.d = 0
		return m, nil
	}
	if t, ok := breeze.As[StopwatchTickMsg](msg); ok {
		if !m.running || t.ID != m.id {
			return m, nil
		}
		m.d += m.Interval
		return m, stopwatchTick(m.id, m.Interval)
	}
	return m, nil
}

// View renders the elapsed duration.
func (m Stopwatch) View() string { return m.d.String() }

func stopwatchTick(id int, d time.Duration) breeze.Cmd {
	return breeze.Tick(d, func(time.Time) breeze.Msg {
		return breeze.NewMsg(StopwatchTickMsg{ID: id})
	})
}
