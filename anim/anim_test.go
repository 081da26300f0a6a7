package anim

import (
	"testing"
	"time"
)

func TestSpringSettlesAtTarget(t *testing.T) {
	s := NewSpring(18, 1, 60)
	cmd := s.SetTarget(1)
	if cmd == nil {
		t.Fatal("SetTarget should return a non-nil tick command")
	}

	for i := 0; i < 1000 && !s.Settled(); i++ {
		cmd = s.Step(cmd())
		if cmd == nil {
			break
		}
	}
	if !s.Settled() {
		t.Fatalf("spring did not settle after 1000 steps, value=%v target=%v", s.Value(), s.Target())
	}
	if got := s.Value(); got < 0.9 || got > 1.1 {
		t.Fatalf("settled value = %v, want close to 1", got)
	}
}

func TestSpringStepIgnoresStaleFrame(t *testing.T) {
	s := NewSpring(18, 1, 60)
	stale := FrameMsg{id: s.id, gen: s.gen}
	s.SetTarget(1) // bumps gen
	if cmd := s.Step(stale); cmd != nil {
		t.Fatal("Step should ignore a frame from a previous generation")
	}
	if s.Value() != 0 {
		t.Fatalf("stale frame should not move the spring, value = %v", s.Value())
	}
}

func TestSpringStepIgnoresOtherSpringID(t *testing.T) {
	a := NewSpring(18, 1, 60)
	b := NewSpring(18, 1, 60)
	a.SetTarget(1)
	if cmd := a.Step(FrameMsg{id: b.id, gen: a.gen}); cmd != nil {
		t.Fatal("Step should ignore a frame belonging to a different spring")
	}
}

func TestTickEveryDefaultsOnInvalidFPS(t *testing.T) {
	if got, want := TickEvery(0), time.Second/defaultFPS; got != want {
		t.Fatalf("TickEvery(0) = %v, want %v", got, want)
	}
}

func TestTweenInterpolatesLinearly(t *testing.T) {
	start := time.Unix(0, 0)
	now := start
	clock := func() time.Time { return now }

	tw := NewTween(Linear, 0, 10, 10*time.Second, clock)
	now = start.Add(5 * time.Second)
	if got := tw.Value(); got < 4.9 || got > 5.1 {
		t.Fatalf("halfway value = %v, want ~5", got)
	}

	now = start.Add(20 * time.Second)
	if !tw.Done() {
		t.Fatal("tween should be done after its duration elapses")
	}
	if got := tw.Value(); got != 10 {
		t.Fatalf("value past duration = %v, want 10", got)
	}
}

func TestTweenZeroDurationCompletesImmediately(t *testing.T) {
	now := time.Unix(0, 0)
	tw := NewTween(Linear, 0, 1, 0, func() time.Time { return now })
	if got := tw.Value(); got != 1 {
		t.Fatalf("zero-duration tween value = %v, want 1", got)
	}
}
