package ui

import (
	"fmt"

	"capture-the-fly/internal/config"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
)

// FPSCounter показывает частоту кадров по последнему dt.
type FPSCounter struct {
	FPS float64
}

func (f *FPSCounter) Rect() geom.Rect {
	return geom.RectFromSize(config.FPSTextX, config.FPSTextY, 0, 0)
}

func (f *FPSCounter) Update(dt float64) {
	if dt > 0 {
		f.FPS = 1 / dt
	}
}

func (f *FPSCounter) Draw(c canvas.Canvas) {
	c.DrawText(fmt.Sprintf("%d fps", int(f.FPS)), config.FPSTextX, config.FPSTextY, 2, config.TextLightColor)
}
