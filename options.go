package breeze

import (
	"context"
	"io"
	"time"
)

// ProgramOption configures a Program at construction time.
type ProgramOption func(*Program)

// WithAltScreen starts the program in the alternate screen buffer and
// restores the primary buffer on exit.
func WithAltScreen() ProgramOption {
	return func(p *Program) { p.startAltScreen = true }
}

// WithMouseCellMotion enables mouse click, release and wheel reporting,
// plus drag motion while a button is held.
func WithMouseCellMotion() ProgramOption {
	return func(p *Program) { p.startMouseMode = "cell" }
}

// WithMouseAllMotion enables mouse motion reporting even without a button
// held, in addition to click/release/wheel.
func WithMouseAllMotion() ProgramOption {
	return func(p *Program) { p.startMouseMode = "all" }
}

// WithBracketedPaste enables bracketed paste mode at startup.
func WithBracketedPaste() ProgramOption {
	return func(p *Program) { p.startBracketedPaste = true }
}

// WithReportFocus enables focus-in/focus-out event reporting at startup.
func WithReportFocus() ProgramOption {
	return func(p *Program) { p.startReportFocus = true }
}

// WithOutput overrides the output sink, which defaults to os.Stdout.
func WithOutput(output io.Writer) ProgramOption {
	return func(p *Program) { p.output = output }
}

// WithInput overrides the input source, which defaults to os.Stdin. Pass
// nil to disable input entirely.
func WithInput(input io.Reader) ProgramOption {
	return func(p *Program) {
		p.input = input
		p.disableInput = input == nil
	}
}

// WithContext runs the program under ctx; cancelling ctx from outside
// causes Run to return ErrProgramKilled.
func WithContext(ctx context.Context) ProgramOption {
	return func(p *Program) { p.externalCtx = ctx }
}

// WithoutSignalHandler disables breeze's built-in SIGINT/SIGTSTP
// handling, for programs that want to install their own.
func WithoutSignalHandler() ProgramOption {
	return func(p *Program) { p.disableSignalHandler = true }
}

// WithoutCatchPanics lets a panic in Init/Update/View propagate instead of
// being converted into ErrProgramPanic. The terminal is not guaranteed to
// be restored if this is set.
func WithoutCatchPanics() ProgramOption {
	return func(p *Program) { p.disableCatchPanics = true }
}

// WithoutRenderer disables rendering entirely; useful for running the
// Elm-architecture plumbing without taking over the terminal.
func WithoutRenderer() ProgramOption {
	return func(p *Program) { p.disableRenderer = true }
}

// WithFPS overrides the render-throttle ceiling. Values above 120 are
// capped at 120; values below 1 fall back to the default of 60.
func WithFPS(fps int) ProgramOption {
	return func(p *Program) { p.fps = fps }
}

// WithWindowSize sets the program's initial notion of the terminal size,
// useful when the caller already knows it (e.g. SSH sessions) or is
// testing without a real terminal.
func WithWindowSize(width, height int) ProgramOption {
	return func(p *Program) { p.width, p.height = width, height }
}

// WithWorkers sets how many commands may execute concurrently. The
// default is 8.
func WithWorkers(n int) ProgramOption {
	return func(p *Program) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithShutdownTimeout bounds how long Run waits for in-flight commands to
// return during shutdown before giving up and reporting ErrShutdownTimeout.
func WithShutdownTimeout(d time.Duration) ProgramOption {
	return func(p *Program) { p.shutdownTimeout = d }
}

// MsgFilter inspects a message before Update sees it and may replace or
// drop it (by returning an empty Msg).
type MsgFilter func(Model, Msg) Msg

// WithFilter installs a MsgFilter that runs on every message before
// Update. Returning an empty Msg from fn drops the message.
func WithFilter(fn MsgFilter) ProgramOption {
	return func(p *Program) { p.filter = fn }
}
