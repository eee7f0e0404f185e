package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDefs = map[string]AnimationDef{
	"walk": {Frames: 4, FrameDuration: 0.1, Loop: true},
	"hit":  {Frames: 3, FrameDuration: 0.1},
}

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(testDefs, "walk")

	a.Update(0.25)
	assert.Equal(t, 2, a.Frame)
	a.Update(0.2)
	assert.Equal(t, 0, a.Frame)
	assert.False(t, a.Finished)
}

func TestAnimationOneShotFinishes(t *testing.T) {
	a := NewAnimation(testDefs, "hit")

	a.Update(0.15)
	assert.False(t, a.Finished)
	a.Update(0.2)
	assert.True(t, a.Finished)
	assert.Equal(t, 2, a.Frame)
	assert.InDelta(t, 0.3, a.Duration(), 1e-9)
}

func TestSetActionKeepsProgressForSameAction(t *testing.T) {
	a := NewAnimation(testDefs, "walk")
	a.Update(0.15)

	a.SetAction("walk", true)
	assert.Equal(t, 1, a.Frame)
	assert.True(t, a.Reversed)

	a.SetAction("hit", false)
	assert.Equal(t, 0, a.Frame)
	assert.Equal(t, "hit", a.Action)
}

func TestRestartClearsFinished(t *testing.T) {
	a := NewAnimation(testDefs, "hit")
	a.Update(1)
	assert.True(t, a.Finished)

	a.Restart("hit", false)
	assert.False(t, a.Finished)
	assert.Equal(t, 0, a.Frame)
}

func TestUnknownActionUsesFallback(t *testing.T) {
	a := NewAnimation(testDefs, "dance")
	a.Update(5)

	assert.False(t, a.Finished)
	assert.Equal(t, 0, a.Frame)
}

func TestMovementDelta(t *testing.T) {
	assert.Equal(t, -1.0, Left.Delta())
	assert.Equal(t, -1.0, Up.Delta())
	assert.Equal(t, 1.0, Right.Delta())
	assert.Equal(t, 1.0, Down.Delta())
	assert.Equal(t, 0.0, None.Delta())
	assert.Equal(t, "down", Down.String())
}
