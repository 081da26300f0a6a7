package sshui

import "testing"

func TestSessionEnvironGetenvFindsKey(t *testing.T) {
	e := &sessionEnviron{environ: []string{"FOO=bar", "TERM=xterm-256color"}}
	if got := e.Getenv("TERM"); got != "xterm-256color" {
		t.Fatalf("expected xterm-256color, got %q", got)
	}
}

func TestSessionEnvironGetenvMissingKey(t *testing.T) {
	e := &sessionEnviron{environ: []string{"FOO=bar"}}
	if got := e.Getenv("MISSING"); got != "" {
		t.Fatalf("expected empty string for missing key, got %q", got)
	}
}

func TestSessionEnvironEnvironReturnsAll(t *testing.T) {
	want := []string{"FOO=bar", "BAZ=qux"}
	e := &sessionEnviron{environ: want}
	got := e.Environ()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
}

func TestSessionEnvironGetenvDoesNotPartialMatch(t *testing.T) {
	e := &sessionEnviron{environ: []string{"FOOBAR=baz"}}
	if got := e.Getenv("FOO"); got != "" {
		t.Fatalf("expected no match for prefix-only key, got %q", got)
	}
}
