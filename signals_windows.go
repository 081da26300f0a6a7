//go:build windows

package breeze

import (
	"os"
	"os/signal"
)

// handleSignals translates Ctrl+C into InterruptMsg. Windows has no
// SIGTSTP/SIGCONT job-control equivalent, so suspend/resume handling is
// unix-only.
func (p *Program) handleSignals() func() {
	sig := make(chan os.Signal, 4)
	signal.Notify(sig, os.Interrupt)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-sig:
				p.Send(NewMsg(InterruptMsg{}))
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
