package breeze

import (
	"bytes"
	"strings"
	"testing"
)

func TestStandardRendererIdenticalViewProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	r := newStandardRenderer(&buf, 60)
	r.resize(80, 24)

	r.render("hello\nworld")
	r.flush()
	buf.Reset()

	r.render("hello\nworld")
	r.flush()

	if buf.Len() != 0 {
		t.Fatalf("re-rendering an identical view wrote %d bytes, want 0", buf.Len())
	}
}

func TestStandardRendererDiffsOnlyChangedLines(t *testing.T) {
	var buf bytes.Buffer
	r := newStandardRenderer(&buf, 60)
	r.resize(80, 24)

	r.render("aaa\nbbb\nccc")
	r.flush()
	buf.Reset()

	r.render("aaa\nBBB\nccc")
	r.flush()

	out := buf.String()
	if !strings.Contains(out, "BBB") {
		t.Fatalf("expected changed line to be rewritten, got %q", out)
	}
	if strings.Contains(out, "aaa") || strings.Contains(out, "ccc") {
		t.Fatalf("unchanged lines should not be rewritten, got %q", out)
	}
}

func TestStandardRendererClampsFPS(t *testing.T) {
	r := newStandardRenderer(&bytes.Buffer{}, 0)
	if r.framerate <= 0 {
		t.Fatalf("fps<minFPS should fall back to the default, got framerate %v", r.framerate)
	}

	r2 := newStandardRenderer(&bytes.Buffer{}, 10000)
	if r2.framerate <= 0 {
		t.Fatalf("fps>maxFPS should still clamp to a positive framerate, got %v", r2.framerate)
	}
}

func TestStandardRendererPrintLineQueuesAboveFrame(t *testing.T) {
	var buf bytes.Buffer
	r := newStandardRenderer(&buf, 60)
	r.resize(80, 24)

	r.printLine("log line")
	r.render("view")
	r.flush()

	out := buf.String()
	if !strings.Contains(out, "log line") {
		t.Fatalf("expected queued printLine output, got %q", out)
	}
	if !strings.Contains(out, "view") {
		t.Fatalf("expected the view to still render, got %q", out)
	}
}

func TestStandardRendererPrintLineDroppedInAltScreen(t *testing.T) {
	var buf bytes.Buffer
	r := newStandardRenderer(&buf, 60)
	r.enterAltScreen()
	buf.Reset()

	r.printLine("should be dropped")
	if len(r.queuedLines) != 0 {
		t.Fatalf("printLine should be a no-op while the alt screen is active")
	}
}

func TestSplitAndFitPadsAndTruncates(t *testing.T) {
	lines := splitAndFit("hi", 5)
	if len(lines) != 1 || lines[0] != "hi   " {
		t.Fatalf("splitAndFit short line = %q, want padded to width 5", lines)
	}

	lines = splitAndFit("hello world", 5)
	if len(lines) != 1 || len([]rune(lines[0])) > 5 {
		t.Fatalf("splitAndFit long line = %q, want truncated to width 5", lines)
	}
}

func TestSplitAndFitEmptyView(t *testing.T) {
	if lines := splitAndFit("", 10); lines != nil {
		t.Fatalf("splitAndFit(\"\") = %v, want nil", lines)
	}
}
