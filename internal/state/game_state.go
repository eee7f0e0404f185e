// internal/state/game_state.go
package state

import (
	"capture-the-fly/internal/input"
	"capture-the-fly/internal/level"
	"capture-the-fly/pkg/canvas"
)

// GameState — идёт игра: каждый тик берёт снимок ввода и прогоняет
// кадр активного уровня.
type GameState struct {
	sm       *StateMachine
	director *level.Director
	input    *input.Buffer

	// PauseRequested опрашивается в начале тика. Может быть nil.
	PauseRequested func() bool
	// ResumeRequested передаётся в PauseState.
	ResumeRequested func() bool
}

func NewGameState(sm *StateMachine, director *level.Director, buf *input.Buffer) *GameState {
	return &GameState{sm: sm, director: director, input: buf}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if g.PauseRequested != nil && g.PauseRequested() {
		g.sm.SetState(NewPauseState(g.sm, g, g.ResumeRequested))
		return
	}

	in := g.input.Snapshot()
	g.director.HandleInput(in)
	g.director.Update(deltaTime)
	g.director.PostUpdate(deltaTime)
}

func (g *GameState) Draw(c canvas.Canvas) {
	g.director.Draw(c)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

func (g *GameState) Director() *level.Director { return g.director }
