//go:build !windows

package breeze

import (
	"os"
	"os/signal"
	"syscall"
)

// handleSignals translates SIGINT/SIGTERM into InterruptMsg,
// SIGTSTP/SIGCONT into a release-and-reacquire of the terminal around the
// process's own suspend (matching how a shell-job-controlled program is
// expected to behave), and SIGWINCH into a fresh WindowSizeMsg. It returns
// a stop function that detaches the handler; the goroutine also exits on
// its own once the program's context is cancelled.
func (p *Program) handleSignals() func() {
	sig := make(chan os.Signal, 4)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGCONT, syscall.SIGWINCH)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case s := <-sig:
				switch s {
				case os.Interrupt, syscall.SIGTERM:
					p.Send(NewMsg(InterruptMsg{}))
				case syscall.SIGTSTP:
					p.Send(NewMsg(SuspendMsg{}))
					if err := p.ReleaseTerminal(); err != nil {
						p.logger.Error("failed to release terminal before suspend", "err", err)
					}
					_ = syscall.Kill(syscall.Getpid(), syscall.SIGSTOP)
				case syscall.SIGCONT:
					if err := p.RestoreTerminal(); err != nil {
						p.logger.Error("failed to restore terminal after resume", "err", err)
					}
					p.Send(NewMsg(ResumeMsg{}))
				case syscall.SIGWINCH:
					w, h := windowSize(p.rawInput)
					p.Send(NewMsg(WindowSizeMsg{Width: w, Height: h}))
				}
			case <-done:
				signal.Stop(sig)
				return
			case <-p.ctx.Done():
				signal.Stop(sig)
				return
			}
		}
	}()

	return func() { close(done) }
}
