package components

import (
	"sync"
	"time"

	"github.com/breezetui/breeze"
)

var (
	timerIDMu   sync.Mutex
	lastTimerID int
)

func nextTimerID() int {
	timerIDMu.Lock()
	defer timerIDMu.Unlock()
	lastTimerID++
	return lastTimerID
}

// TimerStartStopMsg starts or stops a Timer.
type TimerStartStopMsg struct {
	id      int
	running bool
}

// TimerTickMsg is sent on every timer tick.
type TimerTickMsg struct {
	ID      int
	Timeout bool
}

// TimerTimeoutMsg is sent once, when a Timer reaches zero.
type TimerTimeoutMsg struct{ ID int }

// Timer counts down from a fixed duration, ticking at Interval, until it
// reaches zero.
type Timer struct {
	Timeout  time.Duration
	Interval time.Duration

	id      int
	running bool
}

// NewTimer builds a Timer counting down from timeout, ticking once a
// second.
func NewTimer(timeout time.Duration) Timer {
	return NewTimerWithInterval(timeout, time.Second)
}

// NewTimerWithInterval builds a Timer with a tick interval other than the
// 1-second default.
func NewTimerWithInterval(timeout, interval time.Duration) Timer {
	return Timer{Timeout: timeout, Interval: interval, running: true, id: nextTimerID()}
}

// ID returns the Timer's unique identifier.
func (m Timer) ID() int { return m.id }

// Running reports whether the timer is counting down.
func (m Timer) Running() bool {
	return !m.Timedout() && m.running
}

// Timedout reports whether the timer has reached zero.
func (m Timer) Timedout() bool { return m.Timeout <= 0 }

// Init starts the countdown.
func (m Timer) Init() breeze.Cmd { return m.tick() }

// Update implements the component's fold over its own tick/start/stop
// messages.
func (m Timer) Update(msg breeze.Msg) (Timer, breeze.Cmd) {
	if ss, ok := breeze.As[TimerStartStopMsg](msg); ok {
		if ss.id != 0 && ss.id != m.id {
			return m, nil
		}
		m.running = ss.running
		return m, m.tick()
	}
	if tick, ok := breeze.As[TimerTickMsg](msg); ok {
		if !m.Running() || (tick.ID != 0 && tick.ID != m.id) {
			return m, nil
		}
		m.Timeout -= m.Interval
		return m, breeze.Batch(m.tick(), m.timeoutCmd())
	}
	return m, nil
}

// View renders the remaining duration.
func (m Timer) View() string { return m.Timeout.String() }

// Start resumes a stopped timer.
func (m *Timer) Start() breeze.Cmd { return m.startStop(true) }

// Stop pauses a running timer.
func (m *Timer) Stop() breeze.Cmd { return m.startStop(false) }

// Toggle starts the timer if stopped, or stops it if running.
func (m *Timer) Toggle() breeze.Cmd { return m.startStop(!m.Running()) }

func (m Timer) tick() breeze.Cmd {
	id, timedout := m.id, m.Timedout()
	return breeze.Tick(m.Interval, func(time.Time) breeze.Msg {
		return breeze.NewMsg(TimerTickMsg{ID: id, Timeout: timedout})
	})
}

func (m Timer) timeoutCmd() breeze.Cmd {
	if !m.Timedout() {
		return nil
	}
	id := m.id
	return func() breeze.Msg { return breeze.NewMsg(TimerTimeoutMsg{ID: id}) }
}

func (m *Timer) startStop(v bool) breeze.Cmd {
	id := m.id
	return func() breeze.Msg { return breeze.NewMsg(TimerStartStopMsg{id: id, running: v}) }
}
