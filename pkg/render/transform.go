// pkg/render/transform.go
package render

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"capture-the-fly/pkg/geom"
)

// transform — текущая матрица и клип в экранных координатах.
// Операции применяются в локальном пространстве: последняя добавленная
// срабатывает первой, как в Android Canvas.
type transform struct {
	geo  ebiten.GeoM
	clip image.Rectangle
}

func (t *transform) pre(op ebiten.GeoM) {
	op.Concat(t.geo)
	t.geo = op
}

func (t *transform) translate(dx, dy float64) {
	var op ebiten.GeoM
	op.Translate(dx, dy)
	t.pre(op)
}

func (t *transform) scale(sx, sy, px, py float64) {
	var op ebiten.GeoM
	op.Translate(-px, -py)
	op.Scale(sx, sy)
	op.Translate(px, py)
	t.pre(op)
}

// rect переводит прямоугольник в экранные координаты. Поворотов нет,
// поэтому достаточно двух углов.
func (t *transform) rect(r geom.Rect) geom.Rect {
	x0, y0 := t.geo.Apply(r.Left, r.Top)
	x1, y1 := t.geo.Apply(r.Right, r.Bottom)
	return geom.NewRect(x0, y0, x1, y1)
}

func (t *transform) point(p geom.Vector2f) (float64, float64) {
	return t.geo.Apply(p.X, p.Y)
}

// scaleX — масштаб по X, для толщины линий и радиусов.
func (t *transform) scaleX() float64 {
	return math.Abs(t.geo.Element(0, 0))
}

func (t *transform) clipTo(r geom.Rect) {
	s := t.rect(r)
	t.clip = t.clip.Intersect(image.Rect(
		int(math.Floor(s.Left)), int(math.Floor(s.Top)),
		int(math.Ceil(s.Right)), int(math.Ceil(s.Bottom)),
	))
}
