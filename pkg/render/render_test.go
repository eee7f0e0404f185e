package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"capture-the-fly/pkg/geom"
)

func TestTransformOrder(t *testing.T) {
	// как у камеры: экран, масштаб, затем сдвиг мира
	tr := transform{clip: image.Rect(0, 0, 1280, 720)}
	tr.translate(10, 20)
	tr.scale(2, 2, 0, 0)
	tr.translate(-100, -50)

	got := tr.rect(geom.NewRect(100, 50, 116, 66))
	assert.InDelta(t, 10, got.Left, 1e-9)
	assert.InDelta(t, 20, got.Top, 1e-9)
	assert.InDelta(t, 42, got.Right, 1e-9)
	assert.InDelta(t, 52, got.Bottom, 1e-9)
	assert.InDelta(t, 2, tr.scaleX(), 1e-9)
}

func TestTransformScalePivot(t *testing.T) {
	tr := transform{}
	tr.scale(2, 2, 10, 10)

	x, y := tr.point(geom.Vector2f{X: 10, Y: 10})
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 10, y, 1e-9)

	x, y = tr.point(geom.Vector2f{X: 11, Y: 12})
	assert.InDelta(t, 12, x, 1e-9)
	assert.InDelta(t, 14, y, 1e-9)
}

func TestTransformClipIntersects(t *testing.T) {
	tr := transform{clip: image.Rect(0, 0, 100, 100)}
	tr.translate(50, 50)
	tr.clipTo(geom.NewRect(0, 0, 100, 10.5))

	assert.Equal(t, image.Rect(50, 50, 100, 61), tr.clip)
}

func TestTilesetLayout(t *testing.T) {
	regions := tilesetLayout(16, []int{4, 1, 2})

	assert.Equal(t, image.Rect(0, 0, 16, 16), regions[1])
	assert.Equal(t, image.Rect(16, 0, 32, 16), regions[2])
	assert.Equal(t, image.Rect(32, 0, 48, 16), regions[4])
	assert.NotContains(t, regions, 3)
}

func TestColors(t *testing.T) {
	c := color.RGBA{200, 100, 20, 255}
	assert.Equal(t, color.RGBA{100, 50, 10, 255}, DarkenColor(c))
	assert.Equal(t, color.RGBA{255, 140, 60, 255}, LightenColor(c, 40))
}
