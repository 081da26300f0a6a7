package breeze

import "strings"

// KeyType identifies the kind of key a KeyMsg carries. Every named kind
// except KeyRunes carries an empty Runes slice; KeyRunes always carries at
// least one rune.
type KeyType int

// Named keys, matching the wire shape enumerated in the spec: Enter, Tab,
// ShiftTab, Space, Backspace, Delete, Home, End, PageUp, PageDown, arrows,
// Esc, Insert, F1-F12, and the Ctrl-letter family.
const (
	KeyRunes KeyType = iota
	KeyEnter
	KeyTab
	KeyShiftTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEsc
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl-letter family. KeyCtrlSpace, KeyCtrlBackslash,
	// KeyCtrlRightBracket and KeyCtrlUnderscore round out the control
	// range that doesn't map onto a letter.
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlRightBracket
	KeyCtrlUnderscore
)

var keyNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyShiftTab:  "shift+tab",
	KeySpace:     " ",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEsc:       "esc",
	KeyInsert:    "insert",
	KeyF1:        "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4",
	KeyF5: "f5", KeyF6: "f6", KeyF7: "f7", KeyF8: "f8",
	KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",

	KeyCtrlA: "ctrl+a", KeyCtrlB: "ctrl+b", KeyCtrlC: "ctrl+c", KeyCtrlD: "ctrl+d",
	KeyCtrlE: "ctrl+e", KeyCtrlF: "ctrl+f", KeyCtrlG: "ctrl+g", KeyCtrlH: "ctrl+h",
	KeyCtrlJ: "ctrl+j", KeyCtrlK: "ctrl+k", KeyCtrlL: "ctrl+l", KeyCtrlN: "ctrl+n",
	KeyCtrlO: "ctrl+o", KeyCtrlP: "ctrl+p", KeyCtrlQ: "ctrl+q", KeyCtrlR: "ctrl+r",
	KeyCtrlS: "ctrl+s", KeyCtrlT: "ctrl+t", KeyCtrlU: "ctrl+u", KeyCtrlV: "ctrl+v",
	KeyCtrlW: "ctrl+w", KeyCtrlX: "ctrl+x", KeyCtrlY: "ctrl+y", KeyCtrlZ: "ctrl+z",
	KeyCtrlSpace:        "ctrl+@",
	KeyCtrlBackslash:    "ctrl+\\",
	KeyCtrlRightBracket: "ctrl+]",
	KeyCtrlUnderscore:   "ctrl+_",
}

func (t KeyType) String() string {
	if s, ok := keyNames[t]; ok {
		return s
	}
	return "runes"
}

// Key carries the details of a single keypress: a tagged kind, the runes it
// carries (non-empty only for KeyRunes), and its modifiers.
type Key struct {
	Type  KeyType
	Runes []rune
	Alt   bool
	Paste bool
}

// String returns a canonical, comparison-friendly representation such as
// "ctrl+c", "alt+enter" or "a". Pasted rune runs are bracketed ("[hello]")
// so that keybinding matchers never confuse a paste with typed input.
func (k Key) String() string {
	var b strings.Builder
	if k.Alt {
		b.WriteString("alt+")
	}
	if k.Type == KeyRunes {
		if k.Paste {
			b.WriteByte('[')
		}
		b.WriteString(string(k.Runes))
		if k.Paste {
			b.WriteByte(']')
		}
		return b.String()
	}
	b.WriteString(k.Type.String())
	return b.String()
}

// KeyMsg is delivered for every decoded keypress, including characters
// produced by bracketed paste (with Paste set to true).
type KeyMsg Key

// String implements fmt.Stringer.
func (k KeyMsg) String() string { return Key(k).String() }

// ctrlKeyTypes maps a control byte (C0 range) directly onto the
// corresponding KeyType, covering the Ctrl-letter family used by the input
// decoder.
var ctrlKeyTypes = map[byte]KeyType{
	0:  KeyCtrlSpace,
	1:  KeyCtrlA,
	2:  KeyCtrlB,
	3:  KeyCtrlC,
	4:  KeyCtrlD,
	5:  KeyCtrlE,
	6:  KeyCtrlF,
	7:  KeyCtrlG,
	8:  KeyBackspace,
	9:  KeyTab,
	10: KeyCtrlJ,
	11: KeyCtrlK,
	12: KeyCtrlL,
	13: KeyEnter,
	14: KeyCtrlN,
	15: KeyCtrlO,
	16: KeyCtrlP,
	17: KeyCtrlQ,
	18: KeyCtrlR,
	19: KeyCtrlS,
	20: KeyCtrlT,
	21: KeyCtrlU,
	22: KeyCtrlV,
	23: KeyCtrlW,
	24: KeyCtrlX,
	25: KeyCtrlY,
	26: KeyCtrlZ,
	27: KeyEsc,
	28: KeyCtrlBackslash,
	29: KeyCtrlRightBracket,
	31: KeyCtrlUnderscore,
	32: KeySpace,
	127: KeyBackspace,
}
