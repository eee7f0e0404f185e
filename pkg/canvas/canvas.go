// pkg/canvas/canvas.go
package canvas

import (
	"image/color"

	"capture-the-fly/pkg/geom"
	"capture-the-fly/pkg/tiledmap"
)

// Canvas — приёмник отрисовки. Ядро игры знает только этот интерфейс,
// реализация на ebiten живёт в pkg/render.
type Canvas interface {
	Size() (width, height float64)

	FillRect(r geom.Rect, c color.Color)
	StrokeRect(r geom.Rect, width float32, c color.Color)
	FillCircle(center geom.Vector2f, radius float64, c color.Color)
	// DrawText рисует текст с левым верхним углом в (x, y).
	DrawText(s string, x, y, scale float64, c color.Color)
	// DrawTileChunk рисует чанк карты как список текстурированных квадов.
	DrawTileChunk(chunk tiledmap.Chunk)

	// Save и Restore сохраняют и восстанавливают трансформацию и клип.
	Save()
	Restore()
	Translate(dx, dy float64)
	Scale(sx, sy, pivotX, pivotY float64)
	Clip(r geom.Rect)
}

// Метрики моноширинного шрифта, которым рисует DrawText (7x13 при scale 1).
const (
	GlyphWidth  = 7.0
	GlyphHeight = 13.0
)

// TextSize — размер строки при заданном масштабе.
func TextSize(s string, scale float64) (width, height float64) {
	return float64(len([]rune(s))) * GlyphWidth * scale, GlyphHeight * scale
}
