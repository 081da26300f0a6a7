package breeze

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ttyFile is the subset of *os.File a terminal-mode acquisition needs.
type ttyFile interface {
	io.Reader
	io.Writer
	Fd() uintptr
}

// termState is a scoped acquisition of a terminal's mode: on construction
// it records the mode in effect, and restore puts it back. Acquiring twice
// without restoring is a programmer error the caller (Program) is
// responsible for avoiding.
type termState struct {
	file  ttyFile
	saved *term.State
}

// isTerminal reports whether f refers to an actual terminal device, as
// opposed to a pipe, file or buffer.
func isTerminal(f ttyFile) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// acquireRawMode puts f into raw mode and returns a handle whose restore
// method is guaranteed safe to call even if f was never successfully put
// into raw mode (e.g. because it isn't a terminal).
func acquireRawMode(f ttyFile) (*termState, error) {
	if !isTerminal(f) {
		return &termState{file: f}, nil
	}
	saved, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	return &termState{file: f, saved: saved}, nil
}

// restore puts the terminal back into the mode recorded at acquisition
// time. It is safe to call multiple times and safe to call on a handle
// for a non-terminal file.
func (t *termState) restore() error {
	if t == nil || t.saved == nil {
		return nil
	}
	err := term.Restore(int(t.file.Fd()), t.saved)
	t.saved = nil
	return err
}

// windowSize returns the current size of the terminal backing f. If f is
// not a terminal, or its size cannot be read, it returns 80x24; the
// COLUMNS/LINES environment variables are not consulted.
func windowSize(f ttyFile) (width, height int) {
	if isTerminal(f) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			return w, h
		}
	}
	return 80, 24
}

var _ ttyFile = (*os.File)(nil)
