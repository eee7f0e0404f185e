// internal/ui/bars.go
package ui

import (
	"image/color"

	"capture-the-fly/internal/config"
	"capture-the-fly/internal/utils"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
)

// bar — полоска с рамкой, заполненная долей значения в [0, 1].
type bar struct {
	rect   geom.Rect
	fill   geom.Rect
	gauge  Gauge
	color  color.Color
	Filled float64
}

func newBar(rect geom.Rect, gauge Gauge, fillColor color.Color) bar {
	b := bar{rect: rect, gauge: gauge, color: fillColor}
	b.set(0)
	return b
}

func (b *bar) Rect() geom.Rect { return b.rect }

func (b *bar) set(v float64) {
	b.Filled = utils.Clamp(v, 0, 1)
	inner := b.rect.Inset(config.HUDBorder, config.HUDBorder)
	b.fill = geom.NewRect(inner.Left, inner.Top, inner.Left+inner.Width()*b.Filled, inner.Bottom)
}

func (b *bar) Update(float64) {
	if v := b.gauge.Value(); v != b.Filled {
		b.set(v)
	}
}

func (b *bar) Draw(c canvas.Canvas) {
	c.FillRect(b.rect, config.HUDBorderColor)
	if b.Filled > 0 {
		c.FillRect(b.fill, b.color)
	}
}

// barSlot — место полоски в правом верхнем углу; row 0 — верхняя.
func barSlot(screen geom.Rect, row int) geom.Rect {
	w := screen.Width() / 5
	h := screen.Height() / 10
	top := screen.Top + float64(row)*(h-config.HUDPadding)
	return geom.NewRect(
		screen.Right-w+config.HUDPadding,
		top+config.HUDPadding,
		screen.Right-config.HUDPadding,
		top+h-config.HUDPadding,
	)
}

// ChargeBar показывает накопленную силу игрока.
type ChargeBar struct{ bar }

func NewChargeBar(screen geom.Rect, power Gauge) *ChargeBar {
	return &ChargeBar{newBar(barSlot(screen, 0), power, config.ChargeFillColor)}
}

// HealthBar показывает здоровье игрока.
type HealthBar struct{ bar }

func NewHealthBar(screen geom.Rect, health Gauge) *HealthBar {
	return &HealthBar{newBar(barSlot(screen, 1), health, config.HealthFillColor)}
}
