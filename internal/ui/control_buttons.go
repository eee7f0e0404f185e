// internal/ui/control_buttons.go
package ui

import (
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/input"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
)

// ControlButtons — кнопки A (удар) и B (действие) в правом нижнем углу.
// B видна только когда уровню есть что предложить.
type ControlButtons struct {
	rect  geom.Rect
	aRect geom.Rect
	bRect geom.Rect

	aPressed bool
	bPressed bool
	BVisible bool
}

func NewControlButtons(screen geom.Rect) *ControlButtons {
	size := screen.Height() / 6
	a := geom.NewRect(
		screen.Right-config.JoystickMargin-size,
		screen.Bottom-config.JoystickMargin-size,
		screen.Right-config.JoystickMargin,
		screen.Bottom-config.JoystickMargin,
	)
	b := a.Offset(-size-config.ControlButtonGap, -size/2)
	return &ControlButtons{
		rect:  geom.NewRect(b.Left, b.Top, a.Right, a.Bottom),
		aRect: a,
		bRect: b,
	}
}

func (b *ControlButtons) Rect() geom.Rect { return b.rect }

func (b *ControlButtons) APressed() bool { return b.aPressed }

// BPressed всегда false, пока кнопка скрыта.
func (b *ControlButtons) BPressed() bool { return b.BVisible && b.bPressed }

func (b *ControlButtons) HandleInput(in *input.State) {
	b.aPressed = in.KeyA
	b.bPressed = in.KeyB
	if t := in.Touch; t != nil && t.IsPressed() {
		p := geom.Vector2f{X: t.X, Y: t.Y}
		b.aPressed = b.aPressed || b.aRect.Contains(p)
		b.bPressed = b.bPressed || b.bRect.Contains(p)
	}
}

func (b *ControlButtons) Draw(c canvas.Canvas) {
	drawButton(c, b.aRect, "A", b.aPressed)
	if b.BVisible {
		drawButton(c, b.bRect, "B", b.bPressed)
	}
}

func drawButton(c canvas.Canvas, r geom.Rect, label string, pressed bool) {
	col := config.ButtonColor
	if pressed {
		col = config.PressedColor
	}
	c.FillRect(r, col)
	c.StrokeRect(r, 2, config.HUDBorderColor)
	const scale = 3
	w, h := canvas.TextSize(label, scale)
	c.DrawText(label, r.CenterX()-w/2, r.CenterY()-h/2, scale, config.HUDBorderColor)
}
