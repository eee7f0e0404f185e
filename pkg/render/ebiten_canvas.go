// pkg/render/ebiten_canvas.go
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
	"capture-the-fly/pkg/tiledmap"
)

var _ canvas.Canvas = (*EbitenCanvas)(nil)

// EbitenCanvas рисует на экранном изображении ebiten. Создаётся заново
// в каждом Draw; тайлсет и буферы вершин переиспользуются через Reset.
type EbitenCanvas struct {
	screen  *ebiten.Image
	current transform
	stack   []transform

	face    font.Face
	tileset *Tileset
	vs      []ebiten.Vertex
	is      []uint16
}

func NewEbitenCanvas(tileset *Tileset) *EbitenCanvas {
	return &EbitenCanvas{
		face:    basicfont.Face7x13,
		tileset: tileset,
		vs:      make([]ebiten.Vertex, 0, 4*64),
		is:      make([]uint16, 0, 6*64),
	}
}

// Reset направляет холст на новый кадр и сбрасывает трансформацию.
func (c *EbitenCanvas) Reset(screen *ebiten.Image) {
	c.screen = screen
	c.current = transform{clip: screen.Bounds()}
	c.stack = c.stack[:0]
}

func (c *EbitenCanvas) target() *ebiten.Image {
	return c.screen.SubImage(c.current.clip).(*ebiten.Image)
}

func (c *EbitenCanvas) Size() (float64, float64) {
	b := c.screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *EbitenCanvas) FillRect(r geom.Rect, clr color.Color) {
	s := c.current.rect(r)
	vector.DrawFilledRect(c.target(), float32(s.Left), float32(s.Top), float32(s.Width()), float32(s.Height()), clr, false)
}

func (c *EbitenCanvas) StrokeRect(r geom.Rect, width float32, clr color.Color) {
	s := c.current.rect(r)
	w := width * float32(c.current.scaleX())
	vector.StrokeRect(c.target(), float32(s.Left), float32(s.Top), float32(s.Width()), float32(s.Height()), w, clr, false)
}

func (c *EbitenCanvas) FillCircle(center geom.Vector2f, radius float64, clr color.Color) {
	x, y := c.current.point(center)
	vector.DrawFilledCircle(c.target(), float32(x), float32(y), float32(radius*c.current.scaleX()), clr, true)
}

func (c *EbitenCanvas) DrawText(s string, x, y, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	// text рисует от базовой линии
	op.GeoM.Translate(x, y+float64(c.face.Metrics().Ascent.Ceil())*scale)
	op.GeoM.Concat(c.current.geo)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(c.target(), s, c.face, op)
}

// DrawTileChunk рисует все тайлы чанка одним DrawTriangles.
func (c *EbitenCanvas) DrawTileChunk(chunk tiledmap.Chunk) {
	if c.tileset == nil {
		return
	}
	c.vs, c.is = c.vs[:0], c.is[:0]
	for _, tile := range chunk.Tiles {
		src, ok := c.tileset.Region(tile.Code)
		if !ok {
			continue
		}
		dst := c.current.rect(tile.Bounds)
		base := uint16(len(c.vs))
		c.vs = append(c.vs,
			vertex(dst.Left, dst.Top, src.Min.X, src.Min.Y),
			vertex(dst.Right, dst.Top, src.Max.X, src.Min.Y),
			vertex(dst.Left, dst.Bottom, src.Min.X, src.Max.Y),
			vertex(dst.Right, dst.Bottom, src.Max.X, src.Max.Y),
		)
		c.is = append(c.is, base, base+1, base+2, base+1, base+3, base+2)
	}
	if len(c.is) == 0 {
		return
	}
	c.target().DrawTriangles(c.vs, c.is, c.tileset.Image, &ebiten.DrawTrianglesOptions{})
}

func vertex(x, y float64, sx, sy int) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(x), DstY: float32(y),
		SrcX: float32(sx), SrcY: float32(sy),
		ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
	}
}

func (c *EbitenCanvas) Save() {
	c.stack = append(c.stack, c.current)
}

func (c *EbitenCanvas) Restore() {
	if len(c.stack) == 0 {
		panic("render: Restore without Save")
	}
	c.current = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *EbitenCanvas) Translate(dx, dy float64) { c.current.translate(dx, dy) }

func (c *EbitenCanvas) Scale(sx, sy, pivotX, pivotY float64) {
	c.current.scale(sx, sy, pivotX, pivotY)
}

func (c *EbitenCanvas) Clip(r geom.Rect) { c.current.clipTo(r) }

// Bounds — текущий клип, для отладки.
func (c *EbitenCanvas) Bounds() image.Rectangle { return c.current.clip }
