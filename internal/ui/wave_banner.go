// internal/ui/wave_banner.go
package ui

import (
	"fmt"
	"image/color"

	"capture-the-fly/internal/config"
	"capture-the-fly/internal/event"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
)

// WaveBanner — крупная надпись «Wave N», которая гаснет за три секунды.
type WaveBanner struct {
	screen  geom.Rect
	Text    string
	Opacity float64
}

func NewWaveBanner(screen geom.Rect) *WaveBanner {
	return &WaveBanner{screen: screen}
}

func (b *WaveBanner) Rect() geom.Rect { return b.screen }

// Show выводит текст с полной непрозрачностью.
func (b *WaveBanner) Show(text string) {
	b.Text = text
	b.Opacity = config.BannerMaxOpacity
}

// OnEvent показывает номер каждой новой волны.
func (b *WaveBanner) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if p, ok := e.Data.(event.WavePayload); ok {
			b.Show(fmt.Sprintf("Wave %d", p.Number))
		}
	case event.LevelWon:
		b.Show("Victory")
	}
}

func (b *WaveBanner) Update(dt float64) {
	b.Opacity = max(0, b.Opacity-config.BannerMaxOpacity/config.BannerFadeDuration*dt)
}

func (b *WaveBanner) Draw(c canvas.Canvas) {
	if b.Opacity <= 0 || b.Text == "" {
		return
	}
	w, h := canvas.TextSize(b.Text, config.BannerTextScale)
	x := b.screen.CenterX() - w/2
	y := b.screen.Top + b.screen.Height()/4 - h/2
	c.DrawText(b.Text, x, y, config.BannerTextScale, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(b.Opacity)})
}
