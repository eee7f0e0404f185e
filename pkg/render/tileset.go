// pkg/render/tileset.go
package render

import (
	"image"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Tileset — сгенерированная полоска тайлов: по одному квадрату на код,
// залитому цветом с тёмной рамкой.
type Tileset struct {
	Image   *ebiten.Image
	size    int
	regions map[int]image.Rectangle
}

// tilesetLayout раскладывает коды слева направо по возрастанию.
func tilesetLayout(size int, codes []int) map[int]image.Rectangle {
	sorted := slices.Clone(codes)
	slices.Sort(sorted)
	regions := make(map[int]image.Rectangle, len(sorted))
	for i, code := range sorted {
		regions[code] = image.Rect(i*size, 0, (i+1)*size, size)
	}
	return regions
}

func NewTileset(size int, colors map[int]color.RGBA) *Tileset {
	codes := make([]int, 0, len(colors))
	for code := range colors {
		codes = append(codes, code)
	}
	regions := tilesetLayout(size, codes)

	img := ebiten.NewImage(max(1, len(codes))*size, size)
	for code, r := range regions {
		c := colors[code]
		x, y := float32(r.Min.X), float32(r.Min.Y)
		vector.DrawFilledRect(img, x, y, float32(size), float32(size), DarkenColor(c), false)
		vector.DrawFilledRect(img, x+1, y+1, float32(size-2), float32(size-2), c, false)
	}
	return &Tileset{Image: img, size: size, regions: regions}
}

// Region — место тайла в изображении. false — код без текстуры.
func (t *Tileset) Region(code int) (image.Rectangle, bool) {
	r, ok := t.regions[code]
	return r, ok
}
