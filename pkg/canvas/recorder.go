package canvas

import (
	"fmt"
	"image/color"

	"capture-the-fly/pkg/geom"
	"capture-the-fly/pkg/tiledmap"
)

// Recorder — Canvas без вывода, который запоминает вызовы.
// Существует для тестов и безголовых проверок отрисовки: игра его
// не использует, окно рисует render.EbitenCanvas.
type Recorder struct {
	Width, Height float64
	Ops           []string
	Texts         []string
	Rects         []geom.Rect
	depth         int
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) FillRect(rect geom.Rect, _ color.Color) {
	r.Rects = append(r.Rects, rect)
	r.Ops = append(r.Ops, "fill")
}

func (r *Recorder) StrokeRect(rect geom.Rect, _ float32, _ color.Color) {
	r.Rects = append(r.Rects, rect)
	r.Ops = append(r.Ops, "stroke")
}

func (r *Recorder) FillCircle(_ geom.Vector2f, _ float64, _ color.Color) {
	r.Ops = append(r.Ops, "circle")
}

func (r *Recorder) DrawText(s string, _, _, _ float64, _ color.Color) {
	r.Texts = append(r.Texts, s)
	r.Ops = append(r.Ops, "text")
}

func (r *Recorder) DrawTileChunk(chunk tiledmap.Chunk) {
	r.Ops = append(r.Ops, fmt.Sprintf("chunk:%d", len(chunk.Tiles)))
}

func (r *Recorder) Save() {
	r.depth++
	r.Ops = append(r.Ops, "save")
}

func (r *Recorder) Restore() {
	if r.depth == 0 {
		panic("canvas: Restore without Save")
	}
	r.depth--
	r.Ops = append(r.Ops, "restore")
}

func (r *Recorder) Translate(_, _ float64)   { r.Ops = append(r.Ops, "translate") }
func (r *Recorder) Scale(_, _, _, _ float64) { r.Ops = append(r.Ops, "scale") }
func (r *Recorder) Clip(_ geom.Rect)         { r.Ops = append(r.Ops, "clip") }

// Balanced — каждому Save соответствует Restore.
func (r *Recorder) Balanced() bool { return r.depth == 0 }

var _ Canvas = (*Recorder)(nil)
