package style_test

import (
	"strings"
	"testing"

	"github.com/breezetui/breeze/style"
)

func TestDefaultPaletteRendersDistinctStyles(t *testing.T) {
	p := style.DefaultPalette()
	bold := p.Bold.Render("hi")
	plain := "hi"
	if bold == plain {
		t.Fatalf("expected Bold to apply an escape sequence, got %q", bold)
	}
}

func TestRampInterpolatesEndpoints(t *testing.T) {
	colors := style.Ramp("#000000", "#ffffff", 3)
	if len(colors) != 3 {
		t.Fatalf("expected 3 colors, got %d", len(colors))
	}
	if string(colors[0]) != "#000000" {
		t.Fatalf("expected first color to be the start hex, got %s", colors[0])
	}
}

func TestRampSingleColor(t *testing.T) {
	colors := style.Ramp("#ff0000", "#00ff00", 1)
	if len(colors) != 1 {
		t.Fatalf("expected 1 color, got %d", len(colors))
	}
}

func TestRampZeroOrNegativeIsEmpty(t *testing.T) {
	if colors := style.Ramp("#fff", "#000", 0); colors != nil {
		t.Fatalf("expected nil for n=0, got %v", colors)
	}
	if colors := style.Ramp("#fff", "#000", -1); colors != nil {
		t.Fatalf("expected nil for n<0, got %v", colors)
	}
}

func TestWrapBreaksOnWhitespace(t *testing.T) {
	out := style.Wrap("the quick brown fox", 10)
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 10 {
			t.Fatalf("line %q exceeds width 10", line)
		}
	}
}

func TestWrapZeroWidthIsNoop(t *testing.T) {
	s := "unchanged text"
	if style.Wrap(s, 0) != s {
		t.Fatalf("expected Wrap with width<=0 to be a no-op")
	}
}

func TestTruncateCutsMidWord(t *testing.T) {
	out := style.Truncate("abcdefghij", 5)
	if len([]rune(strings.Split(out, "\n")[0])) > 5 {
		t.Fatalf("expected first line truncated to 5 runes, got %q", out)
	}
}
