package components

import (
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/breezetui/breeze"
)

var (
	spinnerIDMu  sync.Mutex
	lastSpinnerID int
)

func nextSpinnerID() int {
	spinnerIDMu.Lock()
	defer spinnerIDMu.Unlock()
	lastSpinnerID++
	return lastSpinnerID
}

// Frames is an animated sequence a Spinner cycles through.
type Frames struct {
	Frames []string
	FPS    time.Duration
}

// Built-in frame sets, ported from the reference component library.
var (
	SpinnerLine = Frames{Frames: []string{"|", "/", "-", "\\"}, FPS: time.Second / 10}
	SpinnerDot  = Frames{Frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}, FPS: time.Second / 10}
	SpinnerMini = Frames{Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}, FPS: time.Second / 12}
	SpinnerPulse = Frames{Frames: []string{"█", "▓", "▒", "░"}, FPS: time.Second / 8}
	SpinnerEllipsis = Frames{Frames: []string{"", ".", "..", "..."}, FPS: time.Second / 3}
)

// Spinner renders an endlessly cycling animation driven by SpinnerTickMsg.
type Spinner struct {
	Frames Frames
	Style  lipgloss.Style

	id    int
	frame int
	tag   int
}

// SpinnerOption configures a new Spinner.
type SpinnerOption func(*Spinner)

// WithSpinnerFrames selects the frame set to animate through.
func WithSpinnerFrames(f Frames) SpinnerOption {
	return func(s *Spinner) { s.Frames = f }
}

// WithSpinnerStyle sets the lipgloss style the current frame renders with.
func WithSpinnerStyle(st lipgloss.Style) SpinnerOption {
	return func(s *Spinner) { s.Style = st }
}

// NewSpinner builds a Spinner; call Tick (or return it from Init) to
// start it animating.
func NewSpinner(opts ...SpinnerOption) Spinner {
	s := Spinner{Frames: SpinnerLine, id: nextSpinnerID()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// SpinnerTickMsg advances a Spinner by one frame.
type SpinnerTickMsg struct {
	id  int
	tag int
}

// Tick starts (or restarts) the spinner's animation loop.
func (s Spinner) Tick() breeze.Cmd {
	return s.tick(s.id, s.tag)
}

// Update implements the component's fold over SpinnerTickMsg; every other
// message is ignored.
func (s Spinner) Update(msg breeze.Msg) (Spinner, breeze.Cmd) {
	tick, ok := breeze.As[SpinnerTickMsg](msg)
	if !ok {
		return s, nil
	}
	if tick.id != s.id || tick.tag != s.tag {
		return s, nil
	}
	s.frame++
	if s.frame >= len(s.Frames.Frames) {
		s.frame = 0
	}
	s.tag++
	return s, s.tick(s.id, s.tag)
}

// View renders the spinner's current frame.
func (s Spinner) View() string {
	if s.frame >= len(s.Frames.Frames) {
		return ""
	}
	return s.Style.Render(s.Frames.Frames[s.frame])
}

func (s Spinner) tick(id, tag int) breeze.Cmd {
	return breeze.Tick(s.Frames.FPS, func(t time.Time) breeze.Msg {
		return breeze.NewMsg(SpinnerTickMsg{id: id, tag: tag})
	})
}
