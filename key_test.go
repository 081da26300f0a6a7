package breeze

import "testing"

func TestKeyTypeString(t *testing.T) {
	cases := map[KeyType]string{
		KeyEnter: "enter",
		KeyCtrlC: "ctrl+c",
		KeyF1:    "f1",
	}
	for kt, want := range cases {
		if got := kt.String(); got != want {
			t.Errorf("KeyType(%d).String() = %q, want %q", kt, got, want)
		}
	}
	if got := KeyType(9999).String(); got != "runes" {
		t.Errorf("unknown KeyType.String() = %q, want %q", got, "runes")
	}
}

func TestKeyString(t *testing.T) {
	cases := []struct {
		name string
		key  Key
		want string
	}{
		{"plain rune", Key{Type: KeyRunes, Runes: []rune("a")}, "a"},
		{"alt rune", Key{Type: KeyRunes, Runes: []rune("a"), Alt: true}, "alt+a"},
		{"named key", Key{Type: KeyEnter}, "enter"},
		{"alt named key", Key{Type: KeyEsc, Alt: true}, "alt+esc"},
		{"pasted runes", Key{Type: KeyRunes, Runes: []rune("hi"), Paste: true}, "[hi]"},
	}
	for _, c := range cases {
		if got := c.key.String(); got != c.want {
			t.Errorf("%s: Key.String() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestKeyMsgString(t *testing.T) {
	km := KeyMsg{Type: KeyCtrlC}
	if got := km.String(); got != "ctrl+c" {
		t.Errorf("KeyMsg.String() = %q, want %q", got, "ctrl+c")
	}
}

func TestCtrlKeyTypes(t *testing.T) {
	if ctrlKeyTypes[3] != KeyCtrlC {
		t.Errorf("ctrlKeyTypes[3] should map to KeyCtrlC")
	}
	if ctrlKeyTypes[13] != KeyEnter {
		t.Errorf("ctrlKeyTypes[13] should map to KeyEnter")
	}
	if ctrlKeyTypes[127] != KeyBackspace {
		t.Errorf("ctrlKeyTypes[127] should map to KeyBackspace")
	}
}
