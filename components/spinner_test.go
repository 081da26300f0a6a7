package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breezetui/breeze"
	"github.com/breezetui/breeze/components"
)

func TestSpinnerNew(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		s := components.NewSpinner()
		assert.Equal(t, components.SpinnerLine.Frames, s.Frames.Frames)
	})

	t.Run("WithSpinnerFrames", func(t *testing.T) {
		custom := components.Frames{Frames: []string{"a", "b", "c"}, FPS: 16}
		s := components.NewSpinner(components.WithSpinnerFrames(custom))
		assert.Equal(t, custom, s.Frames)
	})
}

func TestSpinnerAdvancesOnOwnTick(t *testing.T) {
	s := components.NewSpinner(components.WithSpinnerFrames(components.Frames{Frames: []string{"a", "b", "c"}}))
	assert.Equal(t, "a", s.View())

	cmd := s.Tick()
	msg := cmd()

	next, cmd2 := s.Update(msg)
	assert.Equal(t, "b", next.View())
	assert.NotNil(t, cmd2)
}

func TestSpinnerIgnoresForeignTick(t *testing.T) {
	a := components.NewSpinner(components.WithSpinnerFrames(components.Frames{Frames: []string{"a", "b"}}))
	b := components.NewSpinner(components.WithSpinnerFrames(components.Frames{Frames: []string{"a", "b"}}))

	bCmd := b.Tick()
	next, cmd := a.Update(bCmd())

	assert.Equal(t, a.View(), next.View())
	assert.Nil(t, cmd)
}

func TestSpinnerIgnoresUnrelatedMessage(t *testing.T) {
	s := components.NewSpinner()
	next, cmd := s.Update(breeze.NewMsg(struct{}{}))
	assert.Equal(t, s, next)
	assert.Nil(t, cmd)
}
