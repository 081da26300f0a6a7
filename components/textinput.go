package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	rw "github.com/mattn/go-runewidth"

	"github.com/breezetui/breeze"
	"github.com/breezetui/breeze/style"
)

// EchoMode controls how a TextInput displays typed characters.
type EchoMode int

const (
	// EchoNormal displays typed characters as is.
	EchoNormal EchoMode = iota
	// EchoPassword masks every character with EchoCharacter.
	EchoPassword
	// EchoNone displays nothing as characters are typed.
	EchoNone
)

// ValidateFunc reports whether a candidate value is acceptable. A non-nil
// error is stored on TextInput.Err and the value is rejected.
type ValidateFunc func(string) error

type pasteMsg string
type pasteErrMsg struct{ error }

// TextInput is a single-line editable text field: cursor motion, word
// and line deletion, an optional character limit, and a horizontally
// scrolling viewport when Width is set and the value overflows it.
type TextInput struct {
	Err error

	Prompt        string
	Placeholder   string
	EchoMode      EchoMode
	EchoCharacter rune
	CharLimit     int
	Width         int
	Validate      ValidateFunc

	PromptStyle      lipgloss.Style
	TextStyle        lipgloss.Style
	PlaceholderStyle lipgloss.Style

	value []rune
	focus bool
	pos   int

	offset      int
	offsetRight int
}

// NewTextInput builds a TextInput with sane defaults: a "> " prompt, '*'
// password mask, and styling drawn from p.
func NewTextInput(p style.Palette) TextInput {
	return TextInput{
		Prompt:           "> ",
		EchoCharacter:    '*',
		PromptStyle:      p.Bold,
		PlaceholderStyle: p.Subtle,
	}
}

// SetValue replaces the value, clamping to CharLimit and validating it.
func (m *TextInput) SetValue(s string) {
	runes := sanitize([]rune(s))
	m.setValueInternal(runes)
}

func (m *TextInput) setValueInternal(runes []rune) {
	if m.Validate != nil {
		if err := m.Validate(string(runes)); err != nil {
			m.Err = err
			return
		}
	}
	empty := len(m.value) == 0
	m.Err = nil
	if m.CharLimit > 0 && len(runes) > m.CharLimit {
		m.value = runes[:m.CharLimit]
	} else {
		m.value = runes
	}
	if (m.pos == 0 && empty) || m.pos > len(m.value) {
		m.SetCursor(len(m.value))
	}
	m.handleOverflow()
}

// Value returns the current value.
func (m TextInput) Value() string { return string(m.value) }

// Position reports the cursor's rune offset into Value.
func (m TextInput) Position() int { return m.pos }

// SetCursor moves the cursor to pos, clamped into range.
func (m *TextInput) SetCursor(pos int) {
	m.pos = clampInt(pos, 0, len(m.value))
	m.handleOverflow()
}

// CursorStart moves the cursor to the beginning of the value.
func (m *TextInput) CursorStart() { m.SetCursor(0) }

// CursorEnd moves the cursor to the end of the value.
func (m *TextInput) CursorEnd() { m.SetCursor(len(m.value)) }

// Focused reports whether the field currently accepts input.
func (m TextInput) Focused() bool { return m.focus }

// Focus marks the field as accepting input.
func (m *TextInput) Focus() { m.focus = true }

// Blur marks the field as not accepting input.
func (m *TextInput) Blur() { m.focus = false }

// Reset clears the value and moves the cursor to the start.
func (m *TextInput) Reset() {
	m.value = nil
	m.SetCursor(0)
}

// Paste requests the system clipboard's contents be inserted at the
// cursor, using breeze's OS clipboard integration.
func (m TextInput) Paste() breeze.Cmd {
	return func() breeze.Msg {
		s, err := breeze.ReadClipboard()
		if err != nil {
			return breeze.NewMsg(pasteErrMsg{err})
		}
		return breeze.NewMsg(pasteMsg(s))
	}
}

// Update handles a key message when focused, advancing the cursor,
// inserting or deleting runes, or requesting a clipboard paste.
func (m TextInput) Update(msg breeze.Msg) (TextInput, breeze.Cmd) {
	if !m.focus {
		return m, nil
	}

	if s, ok := breeze.Into[pasteMsg](msg); ok {
		m.insertRunes([]rune(string(s)))
		return m, nil
	}
	if e, ok := breeze.Into[pasteErrMsg](msg); ok {
		m.Err = e.error
		return m, nil
	}

	k, ok := breeze.Into[breeze.KeyMsg](msg)
	if !ok {
		return m, nil
	}

	switch k.Type {
	case breeze.KeyRunes:
		m.insertRunes(k.Runes)
	case breeze.KeyLeft:
		m.SetCursor(m.pos - 1)
	case breeze.KeyRight:
		m.SetCursor(m.pos + 1)
	case breeze.KeyHome:
		m.CursorStart()
	case breeze.KeyEnd:
		m.CursorEnd()
	case breeze.KeyBackspace:
		m.deleteCharacterBackward()
	case breeze.KeyDelete:
		m.deleteCharacterForward()
	case breeze.KeyCtrlW:
		m.deleteWordBackward()
	case breeze.KeyCtrlU:
		m.deleteBeforeCursor()
	case breeze.KeyCtrlK:
		m.deleteAfterCursor()
	case breeze.KeyCtrlA:
		m.CursorStart()
	case breeze.KeyCtrlE:
		m.CursorEnd()
	case breeze.KeyCtrlV:
		return m, m.Paste()
	}
	return m, nil
}

func (m *TextInput) insertRunes(v []rune) {
	paste := sanitize(v)

	var avail int
	if m.CharLimit > 0 {
		avail = m.CharLimit - len(m.value)
		if avail <= 0 {
			return
		}
		if avail < len(paste) {
			paste = paste[:avail]
		}
	}

	head := append([]rune{}, m.value[:m.pos]...)
	tail := append([]rune{}, m.value[m.pos:]...)
	oldPos := m.pos
	for _, r := range paste {
		head = append(head, r)
		m.pos++
	}
	m.setValueInternal(append(head, tail...))
	if m.Err != nil {
		m.pos = oldPos
	}
}

func (m *TextInput) deleteCharacterBackward() {
	if m.pos == 0 {
		return
	}
	m.setValueInternal(append(m.value[:m.pos-1], m.value[m.pos:]...))
	m.SetCursor(m.pos - 1)
}

func (m *TextInput) deleteCharacterForward() {
	if m.pos >= len(m.value) {
		return
	}
	m.setValueInternal(append(m.value[:m.pos], m.value[m.pos+1:]...))
}

func (m *TextInput) deleteBeforeCursor() {
	m.value = m.value[m.pos:]
	m.offset = 0
	m.SetCursor(0)
}

func (m *TextInput) deleteAfterCursor() {
	m.value = m.value[:m.pos]
	m.SetCursor(len(m.value))
}

func (m *TextInput) deleteWordBackward() {
	if m.pos == 0 || len(m.value) == 0 {
		return
	}
	pos := m.pos
	pos--
	for pos > 0 && unicode.IsSpace(m.value[pos]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(m.value[pos-1]) {
		pos--
	}
	m.value = append(m.value[:pos], m.value[m.pos:]...)
	m.SetCursor(pos)
}

func (m *TextInput) handleOverflow() {
	if m.Width <= 0 || rw.StringWidth(string(m.value)) <= m.Width {
		m.offset = 0
		m.offsetRight = len(m.value)
		return
	}
	if m.offsetRight > len(m.value) {
		m.offsetRight = len(m.value)
	}
	if m.pos < m.offset {
		m.offset = m.pos
		w, i := 0, 0
		runes := m.value[m.offset:]
		for i < len(runes) && w <= m.Width {
			w += rw.RuneWidth(runes[i])
			if w <= m.Width+1 {
				i++
			}
		}
		m.offsetRight = m.offset + i
	} else if m.pos >= m.offsetRight {
		m.offsetRight = m.pos
		runes := m.value[:m.offsetRight]
		w, i := 0, len(runes)-1
		for i > 0 && w < m.Width {
			w += rw.RuneWidth(runes[i])
			if w <= m.Width {
				i--
			}
		}
		m.offset = m.offsetRight - (len(runes) - 1 - i)
	}
}

// View renders the prompt, the (possibly windowed, masked, or
// placeholder) value, and nothing else: callers composite their own
// cursor glyph using Position.
func (m TextInput) View() string {
	var b strings.Builder
	b.WriteString(m.PromptStyle.Render(m.Prompt))

	if len(m.value) == 0 && m.Placeholder != "" {
		b.WriteString(m.PlaceholderStyle.Render(m.Placeholder))
		return b.String()
	}

	value := m.value[m.offset:m.offsetRight]
	var shown string
	switch m.EchoMode {
	case EchoPassword:
		shown = strings.Repeat(string(m.EchoCharacter), rw.StringWidth(string(value)))
	case EchoNone:
		shown = ""
	default:
		shown = string(value)
	}
	b.WriteString(m.TextStyle.Render(shown))
	return b.String()
}

func sanitize(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch r {
		case '\t', '\n':
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
	}
	return out
}

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
