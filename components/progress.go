package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/breezetui/breeze/anim"
	"github.com/breezetui/breeze/style"
)

// Progress is an animated horizontal progress bar: SetPercent starts the
// bar sliding toward a new target using a Spring, the way bubbles/progress
// animates its fill, rather than snapping straight to the new value.
type Progress struct {
	Width          int
	Full, Empty    rune
	ShowPercentage bool
	RampFrom, RampTo string

	spring *anim.Spring
}

// NewProgress builds a Progress of the given width with sane glyph and
// gradient defaults.
func NewProgress(width int) Progress {
	return Progress{
		Width:          width,
		Full:           '█',
		Empty:          '░',
		ShowPercentage: true,
		RampFrom:       "#5A56E0",
		RampTo:         "#EE6FF8",
		spring:         anim.NewSpring(18, 1, 60),
	}
}

// Percent reports the bar's current (animated) fill fraction.
func (p Progress) Percent() float64 { return p.spring.Value() }

// SetPercent points the bar at a new target fraction (clamped to [0,1])
// and returns the command that begins animating toward it.
func (p *Progress) SetPercent(v float64) func() anim.FrameMsg {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return p.spring.SetTarget(v)
}

// Step advances the animation by one frame if msg belongs to this bar's
// spring, returning the command for the next frame or nil once settled.
func (p *Progress) Step(msg anim.FrameMsg) func() anim.FrameMsg {
	return p.spring.Step(msg)
}

// Settled reports whether the bar has reached its target.
func (p Progress) Settled() bool { return p.spring.Settled() }

// View renders the bar at its current animated percentage.
func (p Progress) View() string {
	return p.ViewAs(p.spring.Value())
}

// ViewAs renders the bar at an arbitrary percentage, bypassing animation.
func (p Progress) ViewAs(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}

	var label string
	if p.ShowPercentage {
		label = fmt.Sprintf(" %3.0f%%", percent*100)
	}

	barWidth := p.Width - len([]rune(label))
	if barWidth < 0 {
		barWidth = 0
	}
	filled := int(float64(barWidth)*percent + 0.5)
	if filled > barWidth {
		filled = barWidth
	}

	var b strings.Builder
	colors := style.Ramp(p.RampFrom, p.RampTo, max(filled, 1))
	for i := 0; i < filled; i++ {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i%len(colors)]).Render(string(p.Full)))
	}
	b.WriteString(strings.Repeat(string(p.Empty), barWidth-filled))
	b.WriteString(label)
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
