package breeze

// sequences maps raw escape sequences (as produced by common xterm-family
// terminals) directly onto a decoded Key. This table is intentionally not
// exhaustive of every terminal/emulator variant the wider ecosystem has
// accumulated quirks for; it covers the named keys the spec enumerates
// (arrows, Home/End/PageUp/PageDown, Insert/Delete, F1-F12, Shift-Tab) plus
// their most common xterm and VT100 encodings.
var sequences = map[string]Key{
	"\x1b[A": {Type: KeyUp},
	"\x1b[B": {Type: KeyDown},
	"\x1b[C": {Type: KeyRight},
	"\x1b[D": {Type: KeyLeft},
	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},

	"\x1b[1;3A": {Type: KeyUp, Alt: true},
	"\x1b[1;3B": {Type: KeyDown, Alt: true},
	"\x1b[1;3C": {Type: KeyRight, Alt: true},
	"\x1b[1;3D": {Type: KeyLeft, Alt: true},

	"\x1b[Z": {Type: KeyShiftTab},

	"\x1b[2~":   {Type: KeyInsert},
	"\x1b[3~":   {Type: KeyDelete},
	"\x1b[3;3~": {Type: KeyDelete, Alt: true},

	"\x1b[5~": {Type: KeyPgUp},
	"\x1b[6~": {Type: KeyPgDown},

	"\x1b[1~": {Type: KeyHome},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[7~": {Type: KeyHome},

	"\x1b[4~": {Type: KeyEnd},
	"\x1b[F":  {Type: KeyEnd},
	"\x1b[8~": {Type: KeyEnd},

	// Function keys, X11/VT100
	"\x1bOP": {Type: KeyF1},
	"\x1bOQ": {Type: KeyF2},
	"\x1bOR": {Type: KeyF3},
	"\x1bOS": {Type: KeyF4},

	// Function keys, urxvt/xterm tilde family
	"\x1b[11~": {Type: KeyF1},
	"\x1b[12~": {Type: KeyF2},
	"\x1b[13~": {Type: KeyF3},
	"\x1b[14~": {Type: KeyF4},
	"\x1b[15~": {Type: KeyF5},
	"\x1b[17~": {Type: KeyF6},
	"\x1b[18~": {Type: KeyF7},
	"\x1b[19~": {Type: KeyF8},
	"\x1b[20~": {Type: KeyF9},
	"\x1b[21~": {Type: KeyF10},
	"\x1b[23~": {Type: KeyF11},
	"\x1b[24~": {Type: KeyF12},

	// Function keys, Linux console
	"\x1b[[A": {Type: KeyF1},
	"\x1b[[B": {Type: KeyF2},
	"\x1b[[C": {Type: KeyF3},
	"\x1b[[D": {Type: KeyF4},
	"\x1b[[E": {Type: KeyF5},
}
