package breeze

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Internal bracketed-paste boundary markers. These never reach Update;
// the input driver uses them to know when to start and stop buffering
// runes into a single KeyMsg with Paste set.
type pasteStartMsg struct{}
type pasteEndMsg struct{}

// isCSITerminator reports whether b is a valid final byte for a CSI
// sequence (the byte that ends the parameter/intermediate bytes).
func isCSITerminator(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}

// decodeSequence consumes the start of buf and returns how many bytes it
// consumed along with the Msg those bytes decoded to. It never consumes
// zero bytes for a non-empty buf, so callers can always make progress.
func decodeSequence(buf []byte) (int, Msg) {
	if len(buf) == 0 {
		return 0, Msg{}
	}

	b0 := buf[0]

	if b0 != 0x1b {
		return decodePlain(buf)
	}

	// Lone ESC at the end of the buffer.
	if len(buf) == 1 {
		return 1, NewMsg(KeyMsg{Type: KeyEsc})
	}

	switch buf[1] {
	case '[':
		return decodeCSI(buf)
	case 'O':
		if len(buf) >= 3 {
			if k, ok := sequences["\x1bO"+string(buf[2])]; ok {
				return 3, NewMsg(KeyMsg(k))
			}
		}
		return 1, NewMsg(KeyMsg{Type: KeyEsc})
	default:
		// Alt-modified key: ESC followed directly by the key's own
		// encoding (the common "meta sends escape" convention).
		n, inner := decodeSequence(buf[1:])
		if n == 0 {
			return 1, NewMsg(KeyMsg{Type: KeyEsc})
		}
		if k, ok := As[KeyMsg](inner); ok {
			k.Alt = true
			return 1 + n, NewMsg(k)
		}
		return 1 + n, inner
	}
}

func decodePlain(buf []byte) (int, Msg) {
	b0 := buf[0]

	if b0 < 0x20 || b0 == 0x7f {
		if kt, ok := ctrlKeyTypes[b0]; ok {
			return 1, NewMsg(KeyMsg{Type: kt})
		}
		return 1, NewMsg(KeyMsg{Type: KeyRunes, Runes: []rune{rune(b0)}})
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		return 1, NewMsg(KeyMsg{Type: KeyRunes, Runes: []rune{rune(b0)}})
	}
	if r == ' ' {
		return size, NewMsg(KeyMsg{Type: KeySpace})
	}
	return size, NewMsg(KeyMsg{Type: KeyRunes, Runes: []rune{r}})
}

// decodeCSI decodes a sequence starting "\x1b[". It handles the fixed
// lookup table (arrows, Home/End, F-keys, ...), bracketed-paste and focus
// markers, and SGR/X10 mouse reports.
func decodeCSI(buf []byte) (int, Msg) {
	// X10 mouse: ESC [ M Cb Cx Cy -- three raw (non-text) bytes follow,
	// so it cannot be found by scanning for a CSI terminator.
	if len(buf) >= 3 && buf[2] == 'M' {
		if len(buf) < 6 {
			return 1, NewMsg(KeyMsg{Type: KeyEsc})
		}
		return 6, NewMsg(MouseMsg(decodeX10Mouse(buf[3:6])))
	}

	i := 2
	for i < len(buf) && !isCSITerminator(buf[i]) {
		i++
	}
	if i >= len(buf) {
		// Incomplete sequence; caller should wait for more bytes. We
		// don't have that luxury as a pure function, so surface it as
		// a lone escape and let the remaining bytes reprocess on the
		// next read.
		return 1, NewMsg(KeyMsg{Type: KeyEsc})
	}

	seq := string(buf[:i+1])

	switch seq {
	case "\x1b[200~":
		return len(seq), NewMsg(pasteStartMsg{})
	case "\x1b[201~":
		return len(seq), NewMsg(pasteEndMsg{})
	case "\x1b[I":
		return len(seq), NewMsg(FocusMsg{})
	case "\x1b[O":
		return len(seq), NewMsg(BlurMsg{})
	}

	if strings.HasPrefix(seq, "\x1b[<") {
		if m, ok := decodeSGRMouse(seq[3 : len(seq)-1]); ok {
			if buf[i] == 'm' && !isWheel(m.Button) {
				m.Action = MouseActionRelease
			}
			return len(seq), NewMsg(MouseMsg(m))
		}
	}

	if k, ok := sequences[seq]; ok {
		return len(seq), NewMsg(KeyMsg(k))
	}

	return len(seq), NewMsg(KeyMsg{Type: KeyEsc})
}

// decodeX10Mouse decodes the three raw bytes following "ESC [ M" in the
// original X10 mouse protocol (released in 1986, still the fallback every
// terminal emulator supports).
func decodeX10Mouse(raw []byte) Mouse {
	e := raw[0] - 32
	var m Mouse

	switch {
	case e&64 != 0:
		m.Action = MouseActionPress
		if e&1 != 0 {
			m.Button = MouseButtonWheelDown
		} else {
			m.Button = MouseButtonWheelUp
		}
	default:
		switch e & 3 {
		case 0:
			m.Button, m.Action = MouseButtonLeft, MouseActionPress
		case 1:
			m.Button, m.Action = MouseButtonMiddle, MouseActionPress
		case 2:
			m.Button, m.Action = MouseButtonRight, MouseActionPress
		case 3:
			m.Button, m.Action = MouseButtonNone, MouseActionRelease
		}
		if e&32 != 0 {
			m.Action = MouseActionMotion
		}
	}

	if e&8 != 0 {
		m.Alt = true
	}
	if e&16 != 0 {
		m.Ctrl = true
	}

	m.X = int(raw[1]) - 32 - 1
	m.Y = int(raw[2]) - 32 - 1
	return m
}

// decodeSGRMouse decodes the "Cb;Cx;Cy" parameter body of an SGR mouse
// report (the modern mouse protocol, unbounded past 223 columns/rows
// unlike X10). The trailing 'M'/'m' terminator (press vs release) is
// applied by the caller.
func decodeSGRMouse(body string) (Mouse, bool) {
	parts := strings.Split(body, ";")
	if len(parts) != 3 {
		return Mouse{}, false
	}
	cb, err1 := strconv.Atoi(parts[0])
	cx, err2 := strconv.Atoi(parts[1])
	cy, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Mouse{}, false
	}

	var m Mouse
	m.X = cx - 1
	m.Y = cy - 1

	if cb&4 != 0 {
		m.Shift = true
	}
	if cb&8 != 0 {
		m.Alt = true
	}
	if cb&16 != 0 {
		m.Ctrl = true
	}

	switch {
	case cb&64 != 0:
		m.Action = MouseActionPress
		switch cb & 3 {
		case 0:
			m.Button = MouseButtonWheelUp
		case 1:
			m.Button = MouseButtonWheelDown
		case 2:
			m.Button = MouseButtonWheelLeft
		case 3:
			m.Button = MouseButtonWheelRight
		}
	case cb&128 != 0:
		// Extended buttons (back/forward, spares).
		switch cb & 3 {
		case 0:
			m.Button = MouseButtonBackward
		case 1:
			m.Button = MouseButtonForward
		case 2:
			m.Button = MouseButtonSpare1
		case 3:
			m.Button = MouseButtonSpare2
		}
		m.Action = MouseActionPress
	default:
		switch cb & 3 {
		case 0:
			m.Button = MouseButtonLeft
		case 1:
			m.Button = MouseButtonMiddle
		case 2:
			m.Button = MouseButtonRight
		case 3:
			m.Button = MouseButtonNone
		}
		if cb&32 != 0 {
			m.Action = MouseActionMotion
		} else {
			m.Action = MouseActionPress
		}
	}

	return m, true
}
