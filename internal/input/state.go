package input

import (
	"capture-the-fly/internal/component"
	"capture-the-fly/internal/config"
	"capture-the-fly/pkg/geom"
)

// TouchAction — фаза касания
type TouchAction int

const (
	TouchDown TouchAction = iota
	TouchPointerDown
	TouchMove
	TouchUp
	TouchPointerUp
	TouchCancel
)

// TouchEvent — последнее касание экрана в экранных координатах.
type TouchEvent struct {
	X, Y         float64
	Action       TouchAction
	PointerIndex int
}

// IsPressed — палец на экране (down или move).
func (e *TouchEvent) IsPressed() bool {
	switch e.Action {
	case TouchDown, TouchPointerDown, TouchMove:
		return true
	}
	return false
}

// State — снимок всех источников ввода на момент кадра.
// Снимок не меняется после публикации в Buffer.
type State struct {
	Touch        *TouchEvent // nil — касаний нет
	Luminosity   float64
	Acceleration geom.Vector3f
	Orientation  geom.Vector3f
	Rotation     geom.Vector3f
	Angle        int

	// Клавиатура на десктопе
	KeyHorizontal component.Movement
	KeyVertical   component.Movement
	KeyA          bool
	KeyB          bool
}

// DefaultState — ввод без касаний, при дневном свете и в покое.
func DefaultState() State {
	return State{
		Luminosity:   config.DefaultLuminosity,
		Acceleration: geom.Vector3f{Z: config.StandardGravity},
	}
}

// IsShaking сравнивает текущее ускорение с эталоном из настроек.
func (s *State) IsShaking(reference geom.Vector3f) bool {
	return s.Acceleration.Length() >= reference.Length()*config.ShakeRatio
}

func (s State) clone() State {
	if s.Touch != nil {
		t := *s.Touch
		s.Touch = &t
	}
	return s
}
