// Package style centralizes the visual vocabulary a breeze program draws
// from: a small palette of lipgloss styles adaptive to the terminal's
// color profile, plus the wrapping/truncation helpers components need to
// fit text into a fixed-width cell grid.
package style

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/muesli/termenv"
)

// Palette is a themeable set of named styles, built against a specific
// lipgloss.Renderer so remote (SSH) sessions get colors appropriate to
// their own terminal rather than the host's.
type Palette struct {
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	Italic    lipgloss.Style
	Underline lipgloss.Style
	Crossout  lipgloss.Style

	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	Border lipgloss.Style
}

// DefaultPalette returns breeze's built-in palette rendered against the
// default (host) renderer.
func DefaultPalette() Palette {
	return NewPalette(lipgloss.DefaultRenderer())
}

// NewPalette builds a Palette bound to r, so every style it returns
// reflects r's color profile and background detection.
func NewPalette(r *lipgloss.Renderer) Palette {
	base := r.NewStyle()
	return Palette{
		Bold:      base.Copy().Bold(true),
		Faint:     base.Copy().Faint(true),
		Italic:    base.Copy().Italic(true),
		Underline: base.Copy().Underline(true),
		Crossout:  base.Copy().Strikethrough(true),

		Title:   base.Copy().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FAFAFA"}),
		Subtle:  base.Copy().Faint(true),
		Error:   base.Copy().Foreground(lipgloss.Color("#E88388")),
		Success: base.Copy().Foreground(lipgloss.Color("#A8CC8C")),
		Warning: base.Copy().Foreground(lipgloss.Color("#DBAB79")),

		Border: base.Copy().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Ramp returns n colors interpolated from a to b (hex strings) in the
// perceptually uniform Luv color space, for progress bars and gradients.
func Ramp(a, b string, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil || n == 1 {
		return []lipgloss.Color{lipgloss.Color(a)}
	}
	colors := make([]lipgloss.Color, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		colors[i] = lipgloss.Color(ca.BlendLuv(cb, t).Hex())
	}
	return colors
}

// Wrap word-wraps s to width, breaking on whitespace where possible.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// Truncate hard-wraps s to width, cutting mid-word if necessary.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wrap.String(s, width)
}

// ColorProfile reports the color capability of standard output, for components that
// need to make their own rendering decisions outside of lipgloss.
func ColorProfile() termenv.Profile {
	return termenv.ColorProfile()
}
