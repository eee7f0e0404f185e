// cmd/game/input.go
package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"capture-the-fly/internal/component"
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/input"
	"capture-the-fly/internal/prefs"
	"capture-the-fly/pkg/geom"
)

// poller переводит клавиатуру, мышь и касания ebiten в снимок ввода.
// Мышь изображает касание с индексом 0. Клавиша L держит темноту,
// пробел — встряску.
type poller struct {
	prefs    *prefs.Preferences
	touchIDs []ebiten.TouchID
	released []ebiten.TouchID
}

func (p *poller) poll(buf *input.Buffer) {
	buf.Update(func(s *input.State) {
		s.KeyHorizontal = axis(ebiten.KeyArrowLeft, ebiten.KeyA, component.Left, ebiten.KeyArrowRight, ebiten.KeyD, component.Right)
		s.KeyVertical = axis(ebiten.KeyArrowUp, ebiten.KeyW, component.Up, ebiten.KeyArrowDown, ebiten.KeyS, component.Down)
		s.KeyA = ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsKeyPressed(ebiten.KeyEnter)
		s.KeyB = ebiten.IsKeyPressed(ebiten.KeyK)

		s.Luminosity = config.DefaultLuminosity
		if ebiten.IsKeyPressed(ebiten.KeyL) {
			s.Luminosity = 0
		}
		s.Acceleration = geom.Vector3f{Z: config.StandardGravity}
		if ebiten.IsKeyPressed(ebiten.KeySpace) {
			s.Acceleration = p.prefs.AccelerationReference()
		}

		s.Touch = p.touch()
	})
}

func axis(negA, negB ebiten.Key, neg component.Movement, posA, posB ebiten.Key, pos component.Movement) component.Movement {
	switch {
	case ebiten.IsKeyPressed(negA) || ebiten.IsKeyPressed(negB):
		return neg
	case ebiten.IsKeyPressed(posA) || ebiten.IsKeyPressed(posB):
		return pos
	}
	return component.None
}

// touch возвращает первое активное касание или его отпускание в этом тике.
func (p *poller) touch() *input.TouchEvent {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		id := p.touchIDs[0]
		x, y := ebiten.TouchPosition(id)
		action := input.TouchMove
		if inpututil.IsTouchJustReleased(id) {
			action = input.TouchUp
		} else if inpututil.TouchPressDuration(id) <= 1 {
			action = input.TouchDown
		}
		return &input.TouchEvent{X: float64(x), Y: float64(y), Action: action, PointerIndex: int(id)}
	}

	p.released = inpututil.AppendJustReleasedTouchIDs(p.released[:0])
	if len(p.released) > 0 {
		id := p.released[0]
		x, y := inpututil.TouchPositionInPreviousTick(id)
		return &input.TouchEvent{X: float64(x), Y: float64(y), Action: input.TouchUp, PointerIndex: int(id)}
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		return &input.TouchEvent{X: float64(x), Y: float64(y), Action: input.TouchDown}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return &input.TouchEvent{X: float64(x), Y: float64(y), Action: input.TouchMove}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		return &input.TouchEvent{X: float64(x), Y: float64(y), Action: input.TouchUp}
	}
	return nil
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9)
}
