// Package breezetest provides the headless simulator used to test models
// deterministically, without a real terminal: Simulator drives the same
// Elm-style triple a Program does, but accepts message injections instead
// of a real input source and records every rendered frame instead of
// writing to a real renderer.
package breezetest

import (
	"sync"

	"github.com/breezetui/breeze"
)

// Simulator is a headless event loop: inject a message, step it (and
// everything it fans out to) to completion, and inspect the frame it
// produced. Commands run synchronously on the calling goroutine, so a
// Simulator's frame sequence is a pure function of the messages injected
// into it.
type Simulator struct {
	mu     sync.Mutex
	model  breeze.Model
	queue  []breeze.Msg
	frames []string
}

// NewSimulator builds a Simulator around m, running Init() to completion
// (including any commands it returns) before returning, and records the
// resulting first frame.
func NewSimulator(m breeze.Model) *Simulator {
	s := &Simulator{model: m}
	s.runCmd(m.Init())
	s.drain()
	return s
}

// Inject enqueues msg as if an input source had produced it. It is not
// processed until the next Step.
func (s *Simulator) Inject(msg breeze.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, msg)
}

// Step processes at most one injected message, plus every command it
// (transitively) yields, until the resulting fan-out is idle, and returns
// the frame rendered afterward. If nothing is injected, Step returns the
// model's current view without recording a new frame.
func (s *Simulator) Step() string {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return s.model.View()
	}
	msg := s.queue[0]
	s.queue = s.queue[1:]
	s.mu.Unlock()

	s.dispatch(msg)
	s.drain()
	return s.frames[len(s.frames)-1]
}

// Idle reports whether there are no pending injected messages.
func (s *Simulator) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue) == 0
}

// Frames returns every frame rendered so far, in order.
func (s *Simulator) Frames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.frames))
	copy(out, s.frames)
	return out
}

// Model returns the simulator's current model.
func (s *Simulator) Model() breeze.Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// dispatch delivers a single message to Update, then recursively runs any
// command it returns. QuitMsg is recorded like any other message; a
// Simulator has no process to stop.
func (s *Simulator) dispatch(msg breeze.Msg) {
	s.mu.Lock()
	model := s.model
	s.mu.Unlock()

	next, cmd := model.Update(msg)

	s.mu.Lock()
	s.model = next
	s.mu.Unlock()

	s.runCmd(cmd)
}

// runCmd resolves cmd synchronously. BatchMsg and SequenceMsg are
// transparent to the simulator: a batch's commands all run before Step
// returns (there is no concurrency to model headlessly), and a
// sequence's commands run in order, matching the real loop's ordering
// guarantee.
func (s *Simulator) runCmd(cmd breeze.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg.Empty() {
		return
	}
	if batch, ok := breeze.As[breeze.BatchMsg](msg); ok {
		for _, c := range batch {
			s.runCmd(c)
		}
		return
	}
	if seq, ok := breeze.As[breeze.SequenceMsg](msg); ok {
		for _, c := range seq {
			s.runCmd(c)
		}
		return
	}
	s.dispatch(msg)
}

// drain renders the model's current view and appends it to frames. A
// Simulator renders once per Step/NewSimulator call rather than once per
// message, mirroring a throttled renderer that coalesces a burst of
// updates into one frame.
func (s *Simulator) drain() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, s.model.View())
}
