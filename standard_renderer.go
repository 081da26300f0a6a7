package breeze

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultFPS = 60
	maxFPS     = 120
	minFPS     = 1
)

// standardRenderer is a frame-differencing renderer: on every flush it
// compares the most recently requested view, line by line, against the
// last frame it actually wrote, and only emits escapes for the lines that
// changed. A view that is byte-identical to the previous one produces
// zero terminal output — the single most load-bearing invariant of the
// whole runtime (spec §4.4.2/§8 property 2).
type standardRenderer struct {
	mu  sync.Mutex
	out io.Writer
	buf bytes.Buffer

	width, height int

	lastFrame []string // the previously rendered lines
	requested string    // the most recently requested, not-yet-flushed view
	dirty     bool

	framerate time.Duration
	ticker    *time.Ticker
	done      chan struct{}
	stopOnce  sync.Once

	cursorHidden    bool
	altScreenActive bool
	mouseMode       string // "", "cell", "all"
	bpActive        bool
	focusActive     bool

	queuedLines []string // lines queued by printLine, flushed before the next render
}

// newStandardRenderer constructs a renderer writing to out. fps<1 uses
// the default of 60; fps>120 is capped.
func newStandardRenderer(out io.Writer, fps int) *standardRenderer {
	if fps < minFPS {
		fps = defaultFPS
	} else if fps > maxFPS {
		fps = maxFPS
	}
	return &standardRenderer{
		out:       out,
		framerate: time.Second / time.Duration(fps),
		done:      make(chan struct{}),
	}
}

func (r *standardRenderer) start() {
	r.mu.Lock()
	select {
	case <-r.done:
		// A previous stop closed done; give the new loop a fresh one.
		r.done = make(chan struct{})
		r.stopOnce = sync.Once{}
	default:
	}
	r.ticker = time.NewTicker(r.framerate)
	ticker, done := r.ticker, r.done
	r.mu.Unlock()
	go func() {
		for {
			select {
			case <-ticker.C:
				r.flush()
			case <-done:
				return
			}
		}
	}()
}

func (r *standardRenderer) stop() {
	r.stopOnce.Do(func() {
		if r.ticker != nil {
			r.ticker.Stop()
		}
		close(r.done)
	})
	r.flush()
}

func (r *standardRenderer) close() error {
	r.flush()
	return nil
}

// render requests that view be drawn. If the renderer's flush loop hasn't
// caught up yet, this simply overwrites the pending request: intermediate
// views are allowed to be skipped, but the last-requested view is always
// eventually rendered (spec §4.4.3).
func (r *standardRenderer) render(view string) {
	r.mu.Lock()
	r.requested = view
	r.dirty = true
	r.mu.Unlock()
}

func (r *standardRenderer) resize(width, height int) {
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
}

// flush performs one render pass: it drains any queued printLine output,
// then diffs the requested view against the last frame and writes only
// what changed. cur tracks where the cursor sits, in rows below the
// render origin, as escapes accumulate in the buffer.
func (r *standardRenderer) flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	// The previous flush left the cursor just below its last line.
	cur := len(r.lastFrame)

	if len(r.queuedLines) > 0 {
		// Printed lines scroll in above the live view: go to the top of
		// the current frame, insert a line for each one, then let the
		// frame below redraw in place.
		r.moveTo(&cur, 0)
		for _, l := range r.queuedLines {
			r.buf.WriteString(l)
			r.buf.WriteString("\r\n")
		}
		r.lastFrame = nil // the old frame scrolled along with everything above it
		r.queuedLines = nil
	}

	if !r.dirty {
		r.flushBuf()
		return
	}
	r.dirty = false

	newLines := splitAndFit(r.requested, r.width)
	changed := false

	for i, line := range newLines {
		if i < len(r.lastFrame) && r.lastFrame[i] == line {
			continue
		}
		r.moveTo(&cur, i)
		r.buf.WriteString("\r\x1b[2K")
		r.buf.WriteString(line)
		cur = i
		changed = true
	}

	if len(r.lastFrame) > len(newLines) {
		for i := len(newLines); i < len(r.lastFrame); i++ {
			r.moveTo(&cur, i)
			r.buf.WriteString("\r\x1b[2K")
			cur = i
			changed = true
		}
	}

	// A view byte-identical to the last one must produce zero output: the
	// cursor is already resting below the last rendered line from the
	// previous flush, so there is nothing left to do.
	if changed && len(newLines) > 0 {
		r.moveTo(&cur, len(newLines)-1)
		r.buf.WriteString("\r\n")
	}

	r.lastFrame = newLines
	r.flushBuf()
}

// moveTo appends the escape that moves the cursor from row *cur to row i,
// both measured in lines below the render origin, then updates *cur.
func (r *standardRenderer) moveTo(cur *int, i int) {
	delta := i - *cur
	switch {
	case delta > 0:
		fmt.Fprintf(&r.buf, "\x1b[%dB", delta)
	case delta < 0:
		fmt.Fprintf(&r.buf, "\x1b[%dA", -delta)
	}
	*cur = i
}

func (r *standardRenderer) flushBuf() {
	if r.buf.Len() == 0 {
		return
	}
	_, _ = r.out.Write(r.buf.Bytes())
	r.buf.Reset()
}

func (r *standardRenderer) enterAltScreen() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.altScreenActive {
		return
	}
	r.altScreenActive = true
	r.lastFrame = nil
	r.buf.WriteString("\x1b[?1049h")
	r.flushBuf()
}

func (r *standardRenderer) exitAltScreen() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.altScreenActive {
		return
	}
	r.altScreenActive = false
	r.lastFrame = nil
	r.buf.WriteString("\x1b[?1049l")
	r.flushBuf()
}

func (r *standardRenderer) altScreen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.altScreenActive
}

func (r *standardRenderer) showCursor() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursorHidden = false
	r.buf.WriteString("\x1b[?25h")
	r.flushBuf()
}

func (r *standardRenderer) hideCursor() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursorHidden = true
	r.buf.WriteString("\x1b[?25l")
	r.flushBuf()
}

func (r *standardRenderer) enableMouseCellMotion() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mouseMode = "cell"
	r.buf.WriteString("\x1b[?1000h\x1b[?1002h\x1b[?1006h")
	r.flushBuf()
}

func (r *standardRenderer) enableMouseAllMotion() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mouseMode = "all"
	r.buf.WriteString("\x1b[?1000h\x1b[?1003h\x1b[?1006h")
	r.flushBuf()
}

func (r *standardRenderer) disableMouse() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mouseMode = ""
	r.buf.WriteString("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
	r.flushBuf()
}

func (r *standardRenderer) enableBracketedPaste() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bpActive = true
	r.buf.WriteString("\x1b[?2004h")
	r.flushBuf()
}

func (r *standardRenderer) disableBracketedPaste() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bpActive = false
	r.buf.WriteString("\x1b[?2004l")
	r.flushBuf()
}

func (r *standardRenderer) enableReportFocus() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.focusActive = true
	r.buf.WriteString("\x1b[?1004h")
	r.flushBuf()
}

func (r *standardRenderer) disableReportFocus() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.focusActive = false
	r.buf.WriteString("\x1b[?1004l")
	r.flushBuf()
}

func (r *standardRenderer) setWindowTitle(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(&r.buf, "\x1b]2;%s\x07", title)
	r.flushBuf()
}

func (r *standardRenderer) clearScreen() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFrame = nil
	r.buf.WriteString("\x1b[2J\x1b[H")
	r.flushBuf()
}

func (r *standardRenderer) printLine(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.altScreenActive {
		return
	}
	r.queuedLines = append(r.queuedLines, line)
}

// splitAndFit splits view into lines and pads/truncates each to width
// using ANSI-aware rune width, so that embedded SGR sequences never count
// toward the visible column count.
func splitAndFit(view string, width int) []string {
	if view == "" {
		return nil
	}
	lines := strings.Split(view, "\n")
	if width <= 0 {
		return lines
	}
	for i, l := range lines {
		w := ansi.PrintableRuneWidth(l)
		switch {
		case w > width:
			lines[i] = truncate.String(l, uint(width))
		case w < width:
			lines[i] = l + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
