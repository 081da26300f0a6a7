package breeze

import "errors"

// ErrProgramPanic is returned by Program.Run when the program recovers
// from a panic in Init, Update or View.
var ErrProgramPanic = errors.New("breeze: program experienced a panic")

// ErrProgramKilled is returned by Program.Run when the program's context
// is cancelled from outside.
var ErrProgramKilled = errors.New("breeze: program was killed")

// ErrInterrupted is returned by Program.Run when the program receives an
// interrupt signal (or an InterruptMsg) that the model did not handle.
var ErrInterrupted = errors.New("breeze: program was interrupted")

// ErrRendererRestoreFailed describes a terminal that could not be fully
// restored to its pre-run mode. Program.Run does not return it: a restore
// failure on exit is logged through the program's logger.
var ErrRendererRestoreFailed = errors.New("breeze: failed to restore terminal state")

// ErrShutdownTimeout is returned by Program.Run when worker commands did not
// return within the configured shutdown budget.
var ErrShutdownTimeout = errors.New("breeze: timed out waiting for workers to finish")
