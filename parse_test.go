package breeze

import "testing"

func TestDecodePlainRune(t *testing.T) {
	n, msg := decodeSequence([]byte("a"))
	if n != 1 {
		t.Fatalf("consumed %d bytes, want 1", n)
	}
	k, ok := As[KeyMsg](msg)
	if !ok || k.Type != KeyRunes || string(k.Runes) != "a" {
		t.Fatalf("decodeSequence(%q) = %v", "a", msg)
	}
}

func TestDecodeCtrlC(t *testing.T) {
	n, msg := decodeSequence([]byte{3})
	if n != 1 {
		t.Fatalf("consumed %d bytes, want 1", n)
	}
	k, ok := As[KeyMsg](msg)
	if !ok || k.Type != KeyCtrlC {
		t.Fatalf("decodeSequence(ctrl+c) = %v", msg)
	}
}

func TestDecodeArrowKeys(t *testing.T) {
	cases := map[string]KeyType{
		"\x1b[A": KeyUp,
		"\x1b[B": KeyDown,
		"\x1b[C": KeyRight,
		"\x1b[D": KeyLeft,
	}
	for seq, want := range cases {
		n, msg := decodeSequence([]byte(seq))
		if n != len(seq) {
			t.Errorf("decodeSequence(%q) consumed %d bytes, want %d", seq, n, len(seq))
		}
		k, ok := As[KeyMsg](msg)
		if !ok || k.Type != want {
			t.Errorf("decodeSequence(%q) = %v, want key type %v", seq, msg, want)
		}
	}
}

func TestDecodeAltRune(t *testing.T) {
	n, msg := decodeSequence([]byte("\x1ba"))
	if n != 2 {
		t.Fatalf("consumed %d bytes, want 2", n)
	}
	k, ok := As[KeyMsg](msg)
	if !ok || !k.Alt || string(k.Runes) != "a" {
		t.Fatalf("decodeSequence(ESC a) = %v", msg)
	}
}

func TestDecodeLoneEscape(t *testing.T) {
	n, msg := decodeSequence([]byte{0x1b})
	if n != 1 {
		t.Fatalf("consumed %d bytes, want 1", n)
	}
	if !Is[KeyMsg](msg) {
		t.Fatalf("lone ESC should decode to a KeyMsg")
	}
}

func TestDecodeBracketedPasteMarkers(t *testing.T) {
	n, msg := decodeSequence([]byte("\x1b[200~"))
	if n != len("\x1b[200~") || !Is[pasteStartMsg](msg) {
		t.Fatalf("decodeSequence(paste start) = %d, %v", n, msg)
	}
	n, msg = decodeSequence([]byte("\x1b[201~"))
	if n != len("\x1b[201~") || !Is[pasteEndMsg](msg) {
		t.Fatalf("decodeSequence(paste end) = %d, %v", n, msg)
	}
}

func TestDecodeFocusEvents(t *testing.T) {
	n, msg := decodeSequence([]byte("\x1b[I"))
	if n != 3 || !Is[FocusMsg](msg) {
		t.Fatalf("decodeSequence(focus in) = %d, %v", n, msg)
	}
	n, msg = decodeSequence([]byte("\x1b[O"))
	if n != 3 || !Is[BlurMsg](msg) {
		t.Fatalf("decodeSequence(focus out) = %d, %v", n, msg)
	}
}

func TestDecodeX10Mouse(t *testing.T) {
	// ESC [ M Cb Cx Cy: left button press at column 5, row 10 (1-indexed
	// wire values, 32 added as the offset, further 1-indexed coordinates).
	seq := []byte{0x1b, '[', 'M', byte(32 + 0), byte(32 + 6), byte(32 + 11)}
	n, msg := decodeSequence(seq)
	if n != 6 {
		t.Fatalf("consumed %d bytes, want 6", n)
	}
	m, ok := As[MouseMsg](msg)
	if !ok {
		t.Fatalf("decodeSequence(X10 mouse) = %v, want MouseMsg", msg)
	}
	if m.Button != MouseButtonLeft || m.Action != MouseActionPress {
		t.Fatalf("decoded X10 mouse = %+v", m)
	}
	if m.X != 5 || m.Y != 10 {
		t.Fatalf("decoded X10 mouse coords = (%d,%d), want (5,10)", m.X, m.Y)
	}
}

func TestDecodeSGRMousePress(t *testing.T) {
	n, msg := decodeSequence([]byte("\x1b[<0;10;20M"))
	if n != len("\x1b[<0;10;20M") {
		t.Fatalf("consumed %d bytes", n)
	}
	m, ok := As[MouseMsg](msg)
	if !ok || m.Button != MouseButtonLeft || m.Action != MouseActionPress {
		t.Fatalf("decoded SGR mouse press = %+v, %v", m, ok)
	}
	if m.X != 9 || m.Y != 19 {
		t.Fatalf("decoded SGR mouse coords = (%d,%d), want (9,19)", m.X, m.Y)
	}
}

func TestDecodeSGRMouseRelease(t *testing.T) {
	n, msg := decodeSequence([]byte("\x1b[<0;10;20m"))
	if n != len("\x1b[<0;10;20m") {
		t.Fatalf("consumed %d bytes", n)
	}
	m, ok := As[MouseMsg](msg)
	if !ok || m.Action != MouseActionRelease {
		t.Fatalf("decoded SGR mouse release = %+v, %v", m, ok)
	}
}

func TestDecodeSGRMouseWheelStaysPress(t *testing.T) {
	// Wheel events are reported with cb bit 64 set; the trailing 'm'
	// terminator must not turn them into a release.
	n, msg := decodeSequence([]byte("\x1b[<64;10;20m"))
	if n != len("\x1b[<64;10;20m") {
		t.Fatalf("consumed %d bytes", n)
	}
	m, ok := As[MouseMsg](msg)
	if !ok || m.Action != MouseActionPress || m.Button != MouseButtonWheelUp {
		t.Fatalf("decoded SGR wheel = %+v, %v", m, ok)
	}
}

func TestDecodeSequenceEmptyBuf(t *testing.T) {
	n, msg := decodeSequence(nil)
	if n != 0 || !msg.Empty() {
		t.Fatalf("decodeSequence(nil) = %d, %v, want 0, empty", n, msg)
	}
}
