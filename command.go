package breeze

import "time"

// Cmd is a deferred, side-effecting producer of zero-or-one Msg. A Cmd is
// expected to be safe to run on a worker goroutine; it executes at most
// once, and its result (if any) is delivered to the model's Update.
//
// A nil Cmd is a no-op and is never scheduled.
type Cmd func() Msg

// QuitMsg signals that the program should quit. Quit produces it.
type QuitMsg struct{}

// Quit is a Cmd that tells the event loop to stop after delivering
// QuitMsg to Update once.
func Quit() Msg {
	return NewMsg(QuitMsg{})
}

// QuitCmd is Quit wrapped as a Cmd, for use from Init/Update without an
// intermediate closure.
func QuitCmd() Cmd {
	return func() Msg { return Quit() }
}

// InterruptMsg is delivered when the process receives an OS interrupt
// (SIGINT or equivalent). If Update does not return a Cmd in response, the
// event loop treats it like QuitMsg.
type InterruptMsg struct{}

// SuspendMsg is delivered to the model immediately before the process
// suspends (SIGTSTP or equivalent).
type SuspendMsg struct{}

// ResumeMsg is delivered to the model immediately after the process resumes
// from a suspend.
type ResumeMsg struct{}

// BatchMsg wraps a list of commands that the event loop schedules
// independently and concurrently. BatchMsg is never delivered to Update;
// the event loop intercepts it.
type BatchMsg []Cmd

// Batch runs the given commands concurrently with no ordering guarantee
// between them. Nil commands are skipped. If every command is nil, Batch
// returns nil.
func Batch(cmds ...Cmd) Cmd {
	var validCmds []Cmd
	for _, c := range cmds {
		if c != nil {
			validCmds = append(validCmds, c)
		}
	}
	switch len(validCmds) {
	case 0:
		return nil
	case 1:
		return validCmds[0]
	default:
		return func() Msg { return NewMsg(BatchMsg(validCmds)) }
	}
}

// SequenceMsg wraps a list of commands the event loop runs one at a time,
// in order, delivering the k-th command's message to Update before
// starting the (k+1)-th. SequenceMsg is never delivered to Update.
type SequenceMsg []Cmd

// Sequence runs the given commands one after another, waiting for each to
// produce its message (if any) before starting the next. Nil commands are
// skipped.
func Sequence(cmds ...Cmd) Cmd {
	var validCmds []Cmd
	for _, c := range cmds {
		if c != nil {
			validCmds = append(validCmds, c)
		}
	}
	if len(validCmds) == 0 {
		return nil
	}
	return func() Msg { return NewMsg(SequenceMsg(validCmds)) }
}

// Tick produces a Cmd that sleeps for d and then invokes fn with the time
// at which it fired, using the resulting Msg as its output. It is the
// building block for animations and timeouts.
func Tick(d time.Duration, fn func(time.Time) Msg) Cmd {
	return func() Msg {
		t := time.NewTimer(d)
		now := <-t.C
		return fn(now)
	}
}

// Every ticks in sync with the wall clock: a one-minute Every fires at the
// top of every minute rather than one minute after the Cmd started.
func Every(d time.Duration, fn func(time.Time) Msg) Cmd {
	return func() Msg {
		n := time.Now()
		next := n.Truncate(d).Add(d).Sub(n)
		t := time.NewTimer(next)
		now := <-t.C
		return fn(now)
	}
}

// Printf-style convenience message used by PrintLine.
type printLineMsg struct{ line string }

// PrintLine prints s above the running program: in inline mode it is
// scrolled into terminal history as "s\n"; in alt-screen mode it is
// dropped, since there is no scrollback to print above.
func PrintLine(s string) Cmd {
	return func() Msg { return NewMsg(printLineMsg{line: s}) }
}

// setWindowTitleMsg carries a requested terminal title change.
type setWindowTitleMsg struct{ title string }

// SetWindowTitle sets the terminal's window title.
func SetWindowTitle(title string) Cmd {
	return func() Msg { return NewMsg(setWindowTitleMsg{title: title}) }
}

// requestWindowSizeMsg asks the event loop to re-emit the current
// WindowSizeMsg.
type requestWindowSizeMsg struct{}

// RequestWindowSize re-emits the current WindowSizeMsg into the message
// queue, as if the terminal had just been resized.
func RequestWindowSize() Msg {
	return NewMsg(requestWindowSizeMsg{})
}

// Screen-control marker messages. Each wraps a private type the event loop
// intercepts and applies to the renderer directly, without forwarding it
// to Update.
type (
	enterAltScreenMsg       struct{}
	exitAltScreenMsg        struct{}
	showCursorMsg           struct{}
	hideCursorMsg           struct{}
	enableMouseCellMotion   struct{}
	enableMouseAllMotion    struct{}
	disableMouseMsg         struct{}
	enableBracketedPasteMsg struct{}
	disableBracketedPaste   struct{}
	enableReportFocusMsg    struct{}
	disableReportFocusMsg   struct{}
	clearScreenMsg          struct{}
)

// EnterAltScreen switches the renderer into the alternate screen buffer.
func EnterAltScreen() Msg { return NewMsg(enterAltScreenMsg{}) }

// ExitAltScreen switches the renderer back to the primary screen buffer.
func ExitAltScreen() Msg { return NewMsg(exitAltScreenMsg{}) }

// ShowCursor makes the terminal cursor visible.
func ShowCursor() Msg { return NewMsg(showCursorMsg{}) }

// HideCursor hides the terminal cursor.
func HideCursor() Msg { return NewMsg(hideCursorMsg{}) }

// EnableMouseCellMotion enables mouse click, release and wheel reporting,
// plus drag motion while a button is held.
func EnableMouseCellMotion() Msg { return NewMsg(enableMouseCellMotion{}) }

// EnableMouseAllMotion enables mouse motion reporting even when no button
// is held, in addition to everything EnableMouseCellMotion enables.
func EnableMouseAllMotion() Msg { return NewMsg(enableMouseAllMotion{}) }

// DisableMouse turns off all mouse reporting.
func DisableMouse() Msg { return NewMsg(disableMouseMsg{}) }

// EnableBracketedPaste enables bracketed paste reporting.
func EnableBracketedPaste() Msg { return NewMsg(enableBracketedPasteMsg{}) }

// DisableBracketedPaste disables bracketed paste reporting.
func DisableBracketedPaste() Msg { return NewMsg(disableBracketedPaste{}) }

// EnableReportFocus enables focus-in/focus-out reporting.
func EnableReportFocus() Msg { return NewMsg(enableReportFocusMsg{}) }

// DisableReportFocus disables focus-in/focus-out reporting.
func DisableReportFocus() Msg { return NewMsg(disableReportFocusMsg{}) }

// ClearScreen clears the terminal and repositions the cursor at the top
// left before the next render.
func ClearScreen() Msg { return NewMsg(clearScreenMsg{}) }

// asCmd wraps an already-computed Msg in a Cmd that returns it, letting
// callers fit a precomputed Msg into code paths that expect a Cmd.
func asCmd(m Msg) Cmd {
	return func() Msg { return m }
}
