package breeze

import (
	"encoding/base64"
	"fmt"

	"github.com/atotto/clipboard"
)

// SetClipboard copies s to the system clipboard using the OS-level
// clipboard (X11/Wayland/macOS/Windows via atotto/clipboard).
func SetClipboard(s string) error {
	return clipboard.WriteAll(s)
}

// ReadClipboard reads the current system clipboard contents.
func ReadClipboard() (string, error) {
	return clipboard.ReadAll()
}

// setClipboardMsg carries a clipboard write request through OSC 52, the
// terminal-level clipboard protocol that works over SSH where the OS
// clipboard is unreachable.
type setClipboardMsg struct{ text string }

// SetClipboardOSC52 asks the terminal itself to set the clipboard via an
// OSC 52 escape sequence, which works for remote sessions (SSH) that have
// no access to the host's OS clipboard.
func SetClipboardOSC52(s string) Cmd {
	return func() Msg { return NewMsg(setClipboardMsg{text: s}) }
}

// applyClipboard writes the OSC 52 set-clipboard sequence directly to the
// program's output. The payload is the bare "c" (clipboard) selection,
// base64-encoded per the xterm OSC 52 spec.
func (p *Program) applyClipboard(text string) {
	payload := base64.StdEncoding.EncodeToString([]byte(text))
	_, _ = fmt.Fprintf(p.output, "\x1b]52;c;%s\x07", payload)
}
