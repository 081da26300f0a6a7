// Package sshui runs a breeze Program per incoming SSH session, the way
// a charm-style terminal app is usually exposed to more than one user at
// once: each connection gets its own Program, wired to that session's
// Reader/Writer and resized as the client's terminal resizes.
package sshui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/muesli/termenv"

	"github.com/breezetui/breeze"
)

// ProgramHandler builds the Program to run for a single session. Sessions
// without an active pty (e.g. `ssh host command`) are skipped before this
// is ever called, so handlers can assume an interactive terminal.
type ProgramHandler func(s ssh.Session, renderer *lipgloss.Renderer) *breeze.Program

// Host starts a wish SSH server on addr, running a fresh Program (built by
// handler) for every connecting session. Host blocks until the server
// stops; hostKeyPath is the host key file, which wish generates there if
// it does not exist.
func Host(addr, hostKeyPath string, handler ProgramHandler, extra ...wish.Middleware) error {
	middleware := append([]wish.Middleware{Middleware(handler)}, extra...)
	s, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(middleware...),
	)
	if err != nil {
		return err
	}
	return s.ListenAndServe()
}

// Middleware adapts handler into a wish.Middleware: every session with an
// active pty gets its own Program, run to completion (or to disconnect)
// before the next middleware in the chain sees the session.
func Middleware(handler ProgramHandler) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			pty, winCh, active := s.Pty()
			if !active {
				wish.Println(s, "breeze: no active pty, nothing to run")
				next(s)
				return
			}

			renderer := NewRenderer(s, pty.Term)
			p := handler(s, renderer)
			if p == nil {
				next(s)
				return
			}

			stop := watchResize(p, winCh)
			defer stop()

			if _, err := p.Run(); err != nil {
				wish.Println(s, "breeze: program exited with an error:", err.Error())
			}
			next(s)
		}
	}
}

// sessionEnviron adapts an ssh.Session's environment (plus TERM, which
// arrives out-of-band via the pty request) into termenv's Environ
// interface.
type sessionEnviron struct {
	environ []string
}

func (e *sessionEnviron) Getenv(key string) string {
	for _, kv := range e.environ {
		if len(kv) > len(key) && kv[:len(key)] == key && kv[len(key)] == '=' {
			return kv[len(key)+1:]
		}
	}
	return ""
}

func (e *sessionEnviron) Environ() []string { return e.environ }

// NewRenderer builds a lipgloss.Renderer whose color profile and
// background detection are derived from the session's own environment
// rather than the host's, so remote clients get output appropriate to
// their own terminal.
func NewRenderer(s ssh.Session, term string) *lipgloss.Renderer {
	env := &sessionEnviron{environ: append(s.Environ(), "TERM="+term)}
	return lipgloss.NewRenderer(s,
		termenv.WithUnsafe(),
		termenv.WithEnvironment(env),
		termenv.WithColorCache(true),
	)
}

// watchResize forwards pty window-size changes to the running program as
// WindowSizeMsg, and returns a function that stops forwarding.
func watchResize(p *breeze.Program, winCh <-chan ssh.Window) func() {
	done := make(chan struct{})
	go func() {
		for {
			select {
			case w, ok := <-winCh:
				if !ok {
					return
				}
				p.Send(breeze.NewMsg(breeze.WindowSizeMsg{Width: w.Width, Height: w.Height}))
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
