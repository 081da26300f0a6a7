// Package anim provides spring-physics and eased-curve animation helpers
// for components that need to transition a value smoothly across frames,
// the way bubbles/progress animates its percentage.
package anim

import (
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/fogleman/ease"
)

const defaultFPS = 60

// settleVelocity and settleDistance bound when a Spring is considered to
// have reached equilibrium, matching the thresholds bubbles/progress uses
// to decide when to stop re-scheduling frames.
const (
	settleDistance = 0.001
	settleVelocity = 0.01
)

// FrameMsg requests the next animation step. id distinguishes frames
// belonging to one animated value from another running concurrently;
// gen distinguishes frames scheduled before the target last changed from
// ones scheduled after, so a stale in-flight Tick can't clobber a newer
// target.
type FrameMsg struct {
	id  int
	gen int
}

var nextID = func() func() int {
	var n int
	return func() int {
		n++
		return n
	}
}()

// Spring animates a single float value toward a target using damped
// harmonic motion: frequency controls speed, damping controls bounciness.
type Spring struct {
	id     int
	gen    int
	spring harmonica.Spring
	fps    int

	current  float64
	velocity float64
	target   float64
}

// NewSpring builds a Spring oscillating at frequency with the given
// damping ratio, sampled at fps frames per second.
func NewSpring(frequency, damping float64, fps int) *Spring {
	if fps <= 0 {
		fps = defaultFPS
	}
	return &Spring{
		id:     nextID(),
		fps:    fps,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Value reports the spring's current position.
func (s *Spring) Value() float64 { return s.current }

// Target reports the spring's current destination.
func (s *Spring) Target() float64 { return s.target }

// SetTarget points the spring at a new destination and returns the
// command that begins stepping toward it.
func (s *Spring) SetTarget(v float64) func() FrameMsg {
	s.target = v
	s.gen++
	return s.tick()
}

// Step applies one frame of motion if msg belongs to this spring,
// returning the command for the next frame, or nil once settled.
func (s *Spring) Step(msg FrameMsg) func() FrameMsg {
	if msg.id != s.id || msg.gen != s.gen {
		return nil
	}
	if s.Settled() {
		return nil
	}
	s.current, s.velocity = s.spring.Update(s.current, s.velocity, s.target)
	return s.tick()
}

// Settled reports whether the spring has effectively reached its target.
func (s *Spring) Settled() bool {
	dist := s.current - s.target
	if dist < 0 {
		dist = -dist
	}
	v := s.velocity
	if v < 0 {
		v = -v
	}
	return dist < settleDistance && v < settleVelocity
}

func (s *Spring) tick() func() FrameMsg {
	id, gen := s.id, s.gen
	return func() FrameMsg { return FrameMsg{id: id, gen: gen} }
}

// TickEvery returns the interval a Spring (or Tween) built at fps should
// be re-scheduled on, for callers driving the frame loop with their own
// Tick command.
func TickEvery(fps int) time.Duration {
	if fps <= 0 {
		fps = defaultFPS
	}
	return time.Second / time.Duration(fps)
}

// EasingFunc maps a normalized time t in [0,1] to a normalized progress
// value, usually also in [0,1] (overshooting functions like OutBack or
// OutBounce may briefly leave that range).
type EasingFunc func(t float64) float64

// Named easing curves, all backed by fogleman/ease.
var (
	Linear     EasingFunc = ease.Linear
	InQuad     EasingFunc = ease.InQuad
	OutQuad    EasingFunc = ease.OutQuad
	InOutQuad  EasingFunc = ease.InOutQuad
	InCubic    EasingFunc = ease.InCubic
	OutCubic   EasingFunc = ease.OutCubic
	InOutCubic EasingFunc = ease.InOutCubic
	InBounce   EasingFunc = ease.InBounce
	OutBounce  EasingFunc = ease.OutBounce
	InBack     EasingFunc = ease.InBack
	OutBack    EasingFunc = ease.OutBack
	InElastic  EasingFunc = ease.InElastic
	OutElastic EasingFunc = ease.OutElastic
)

// Tween animates a value over a fixed duration using an easing curve,
// rather than a Spring's physical simulation — useful for a progress
// indicator with a known end time instead of a springy, open-ended one.
type Tween struct {
	ease     EasingFunc
	from, to float64
	start    time.Time
	dur      time.Duration
	now      func() time.Time
}

// NewTween builds a Tween that will animate from `from` to `to` over dur,
// using fn as its easing curve. now is called to determine elapsed time;
// callers normally pass time.Now, but may supply a deterministic clock
// in tests.
func NewTween(fn EasingFunc, from, to float64, dur time.Duration, now func() time.Time) *Tween {
	return &Tween{ease: fn, from: from, to: to, dur: dur, start: now(), now: now}
}

// Value reports the Tween's interpolated position at the current time.
func (t *Tween) Value() float64 {
	if t.dur <= 0 {
		return t.to
	}
	elapsed := t.now().Sub(t.start)
	frac := float64(elapsed) / float64(t.dur)
	if frac >= 1 {
		return t.to
	}
	if frac < 0 {
		frac = 0
	}
	return t.from + (t.to-t.from)*t.ease(frac)
}

// Done reports whether the Tween has reached its end time.
func (t *Tween) Done() bool {
	return t.now().Sub(t.start) >= t.dur
}
