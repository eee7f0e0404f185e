// internal/state/pause_state.go
package state

import (
	"image/color"

	"capture-the-fly/internal/config"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

const (
	pauseText      = "PAUSED"
	pauseTextScale = 4.0
)

var pauseShade = color.RGBA{0, 0, 0, 128}

// PauseState замораживает предыдущее состояние и рисует его под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	resume        func() bool
}

func NewPauseState(sm *StateMachine, prevState State, resume func() bool) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		resume:        resume,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if s.resume != nil && s.resume() {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(c canvas.Canvas) {
	if s.previousState != nil {
		s.previousState.Draw(c)
	}

	w, h := c.Size()
	c.FillRect(geom.NewRect(0, 0, w, h), pauseShade)
	tw, th := canvas.TextSize(pauseText, pauseTextScale)
	c.DrawText(pauseText, (w-tw)/2, (h-th)/2, pauseTextScale, config.TextLightColor)
}

func (s *PauseState) Exit() {}
