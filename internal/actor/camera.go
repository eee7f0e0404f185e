// internal/actor/camera.go
package actor

import (
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
)

// Camera держит отслеживаемую сущность в центре экрана.
// GameRect — видимая часть мира в мировых координатах.
type Camera struct {
	screen   geom.Rect
	scale    float64
	track    PositionSource
	gameRect geom.Rect
}

// NewTrackingCamera показывает tilesAcross тайлов по ширине экрана.
func NewTrackingCamera(screen geom.Rect, tileSize, tilesAcross float64, track PositionSource) *Camera {
	scale := 1.0
	if tileSize > 0 && tilesAcross > 0 {
		scale = screen.Width() / (tileSize * tilesAcross)
	}
	c := &Camera{screen: screen, scale: scale, track: track}
	c.follow()
	return c
}

func (c *Camera) follow() {
	center := c.track.Center()
	w := c.screen.Width() / c.scale
	h := c.screen.Height() / c.scale
	c.gameRect = geom.RectFromSize(center.X-w/2, center.Y-h/2, w, h)
}

func (c *Camera) Rect() geom.Rect { return c.screen }

func (c *Camera) GameRect() geom.Rect { return c.gameRect }

func (c *Camera) Scale() float64 { return c.scale }

// Update переносит кадр на новое положение цели. Камеру регистрируют
// после игрока, чтобы она видела его положение в этом же кадре.
func (c *Camera) Update(float64) {
	c.follow()
}

// Apply переводит холст в мировые координаты. Вызывающий
// обрамляет вызов Save/Restore.
func (c *Camera) Apply(cv canvas.Canvas) {
	cv.Translate(c.screen.Left, c.screen.Top)
	cv.Scale(c.scale, c.scale, 0, 0)
	cv.Translate(-c.gameRect.Left, -c.gameRect.Top)
}

// ToScreen переводит мировую точку в экранную.
func (c *Camera) ToScreen(p geom.Vector2f) geom.Vector2f {
	return geom.Vector2f{
		X: c.screen.Left + (p.X-c.gameRect.Left)*c.scale,
		Y: c.screen.Top + (p.Y-c.gameRect.Top)*c.scale,
	}
}
