package breeze

import "fmt"

// MouseAction describes what kind of mouse event occurred.
type MouseAction int

// Wheel events are always reported with MouseActionPress.
const (
	MouseActionPress MouseAction = iota
	MouseActionRelease
	MouseActionMotion
)

func (a MouseAction) String() string {
	switch a {
	case MouseActionRelease:
		return "release"
	case MouseActionMotion:
		return "motion"
	default:
		return "press"
	}
}

// MouseButton identifies which button (if any) a mouse event involved.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonWheelUp
	MouseButtonWheelDown
	MouseButtonWheelLeft
	MouseButtonWheelRight
	MouseButtonBackward
	MouseButtonForward
	MouseButtonSpare1
	MouseButtonSpare2
)

var mouseButtonNames = map[MouseButton]string{
	MouseButtonNone:       "none",
	MouseButtonLeft:       "left",
	MouseButtonMiddle:     "middle",
	MouseButtonRight:      "right",
	MouseButtonWheelUp:    "wheel up",
	MouseButtonWheelDown:  "wheel down",
	MouseButtonWheelLeft:  "wheel left",
	MouseButtonWheelRight: "wheel right",
	MouseButtonBackward:   "backward",
	MouseButtonForward:    "forward",
	MouseButtonSpare1:     "spare1",
	MouseButtonSpare2:     "spare2",
}

func (b MouseButton) String() string {
	if s, ok := mouseButtonNames[b]; ok {
		return s
	}
	return "unknown"
}

// Mouse carries the decoded shape of a mouse event: 0-indexed column and
// row, modifier bits, the action that occurred and the button involved.
type Mouse struct {
	X, Y    int
	Alt     bool
	Ctrl    bool
	Shift   bool
	Action  MouseAction
	Button  MouseButton
}

// String returns a human-readable representation, e.g. "ctrl+left press".
func (m Mouse) String() string {
	s := ""
	if m.Ctrl {
		s += "ctrl+"
	}
	if m.Alt {
		s += "alt+"
	}
	if m.Shift {
		s += "shift+"
	}
	if m.Button != MouseButtonNone {
		s += m.Button.String() + " "
	}
	s += m.Action.String()
	return s
}

// MouseMsg is delivered for every decoded mouse event.
type MouseMsg Mouse

// String implements fmt.Stringer.
func (m MouseMsg) String() string { return Mouse(m).String() }

func (m Mouse) GoString() string {
	return fmt.Sprintf("Mouse{X:%d Y:%d Action:%s Button:%s}", m.X, m.Y, m.Action, m.Button)
}

// isWheel reports whether b is one of the four wheel buttons, which are
// always reported with MouseActionPress per the spec.
func isWheel(b MouseButton) bool {
	switch b {
	case MouseButtonWheelUp, MouseButtonWheelDown, MouseButtonWheelLeft, MouseButtonWheelRight:
		return true
	default:
		return false
	}
}
