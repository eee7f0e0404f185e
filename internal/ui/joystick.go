// internal/ui/joystick.go
package ui

import (
	"capture-the-fly/internal/component"
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/input"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
)

// Joystick — крестовина в левом нижнем углу. Квадрат делится на трети:
// левая и правая трети дают горизонталь, верхняя и нижняя — вертикаль.
// Палец, который начал управлять крестовиной, захватывает её до отпускания.
type Joystick struct {
	rect      geom.Rect
	leftZone  geom.Rect
	rightZone geom.Rect
	upZone    geom.Rect
	downZone  geom.Rect

	horizontal    component.Movement
	vertical      component.Movement
	targetPointer int
}

func NewJoystick(screen geom.Rect) *Joystick {
	size := screen.Height() / 3
	rect := geom.NewRect(
		screen.Left+config.JoystickMargin,
		screen.Bottom-size-config.JoystickMargin,
		screen.Left+config.JoystickMargin+size,
		screen.Bottom-config.JoystickMargin,
	)
	third := size / 3
	return &Joystick{
		rect:          rect,
		leftZone:      geom.NewRect(rect.Left, rect.Top, rect.Left+third, rect.Bottom),
		rightZone:     geom.NewRect(rect.Right-third, rect.Top, rect.Right, rect.Bottom),
		upZone:        geom.NewRect(rect.Left, rect.Top, rect.Right, rect.Top+third),
		downZone:      geom.NewRect(rect.Left, rect.Bottom-third, rect.Right, rect.Bottom),
		targetPointer: -1,
	}
}

func (j *Joystick) Rect() geom.Rect { return j.rect }

func (j *Joystick) Horizontal() component.Movement { return j.horizontal }

func (j *Joystick) Vertical() component.Movement { return j.vertical }

func (j *Joystick) HandleInput(in *input.State) {
	j.handleTouch(in.Touch)

	// Клавиатура перекрывает касание по своей оси.
	if in.KeyHorizontal != component.None {
		j.horizontal = in.KeyHorizontal
	}
	if in.KeyVertical != component.None {
		j.vertical = in.KeyVertical
	}
}

func (j *Joystick) handleTouch(touch *input.TouchEvent) {
	if touch == nil {
		j.targetPointer = -1
		j.horizontal, j.vertical = component.None, component.None
		return
	}
	if j.targetPointer != -1 && j.targetPointer != touch.PointerIndex {
		return
	}

	switch touch.Action {
	case input.TouchDown, input.TouchPointerDown, input.TouchMove:
		j.horizontal, j.vertical = j.directionsAt(touch.X, touch.Y)
	case input.TouchUp, input.TouchPointerUp:
		j.targetPointer = -1
		j.horizontal, j.vertical = component.None, component.None
	default:
		j.horizontal, j.vertical = component.None, component.None
	}

	if j.horizontal != component.None || j.vertical != component.None {
		j.targetPointer = touch.PointerIndex
	}
}

func within(v, lo, hi float64) bool { return v >= lo && v <= hi }

func (j *Joystick) directionsAt(x, y float64) (h, v component.Movement) {
	h, v = component.None, component.None
	if within(y, j.rect.Top, j.rect.Bottom) {
		switch {
		case within(x, j.leftZone.Left, j.leftZone.Right):
			h = component.Left
		case within(x, j.rightZone.Left, j.rightZone.Right):
			h = component.Right
		}
	}
	if within(x, j.rect.Left, j.rect.Right) {
		switch {
		case within(y, j.upZone.Top, j.upZone.Bottom):
			v = component.Up
		case within(y, j.downZone.Top, j.downZone.Bottom):
			v = component.Down
		}
	}
	return h, v
}

func (j *Joystick) Draw(c canvas.Canvas) {
	c.FillRect(j.rect, config.HUDBorderColor)
	zones := []struct {
		r      geom.Rect
		active bool
	}{
		{j.leftZone.Inset(0, j.rect.Height()/3), j.horizontal == component.Left},
		{j.rightZone.Inset(0, j.rect.Height()/3), j.horizontal == component.Right},
		{j.upZone.Inset(j.rect.Width()/3, 0), j.vertical == component.Up},
		{j.downZone.Inset(j.rect.Width()/3, 0), j.vertical == component.Down},
	}
	for _, z := range zones {
		col := config.ButtonColor
		if z.active {
			col = config.PressedColor
		}
		c.FillRect(z.r, col)
	}
}
