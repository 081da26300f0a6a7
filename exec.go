package breeze

import (
	"io"
	"os"
	"os/exec"
)

// ExecCommand is anything that can be run in a blocking fashion with the
// current terminal temporarily released to it — most commonly an
// *exec.Cmd, for launching an external editor or shell from within a
// running program.
type ExecCommand interface {
	Run() error
	SetStdin(io.Reader)
	SetStdout(io.Writer)
	SetStderr(io.Writer)
}

// ExecCallback receives the error (if any) from running an ExecCommand.
type ExecCallback func(error) Msg

type execMsg struct {
	cmd ExecCommand
	fn  ExecCallback
}

// Exec releases the terminal, runs c, then restores the terminal and
// resumes the program. Most callers want ExecProcess instead, which
// builds the ExecCommand from an *exec.Cmd for you.
func Exec(c ExecCommand, fn ExecCallback) Cmd {
	return func() Msg { return NewMsg(execMsg{cmd: c, fn: fn}) }
}

// ExecProcess runs c in a blocking fashion, pausing the program while it
// runs and resuming once it exits.
func ExecProcess(c *exec.Cmd, fn ExecCallback) Cmd {
	return Exec(&osExecCommand{Cmd: c}, fn)
}

type osExecCommand struct{ *exec.Cmd }

func (c *osExecCommand) SetStdin(r io.Reader) {
	if c.Stdin == nil {
		c.Stdin = r
	}
}

func (c *osExecCommand) SetStdout(w io.Writer) {
	if c.Stdout == nil {
		c.Stdout = w
	}
}

func (c *osExecCommand) SetStderr(w io.Writer) {
	if c.Stderr == nil {
		c.Stderr = w
	}
}

// runExec releases the terminal, runs c, restores the terminal, and
// reports the outcome to fn on the message queue.
func (p *Program) runExec(c ExecCommand, fn ExecCallback) {
	if err := p.ReleaseTerminal(); err != nil {
		if fn != nil {
			go p.Send(fn(err))
		}
		return
	}

	c.SetStdin(p.input)
	c.SetStdout(p.output)
	c.SetStderr(os.Stderr)

	runErr := c.Run()
	restoreErr := p.RestoreTerminal()

	if fn == nil {
		return
	}
	if runErr != nil {
		go p.Send(fn(runErr))
	} else {
		go p.Send(fn(restoreErr))
	}
}
