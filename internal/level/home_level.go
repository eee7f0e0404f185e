// internal/level/home_level.go
package level

import (
	"capture-the-fly/internal/actor"
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/input"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/tiledmap"
)

const portalPrompt = "Play level"

// HomeLevel — стартовая карта. Встав на портал, игрок видит кнопку B,
// которая отправляет его на основной уровень.
type HomeLevel struct {
	*base
	onPortal bool
	launched bool
}

func full(*actor.Player) float64 { return 1 }

func NewHomeLevel(deps Deps) (*HomeLevel, error) {
	b, err := newBase(config.HomeLevelName, deps, config.HomeTilesAcrossScreen, full, full)
	if err != nil {
		return nil, err
	}
	return &HomeLevel{base: b}, nil
}

func (l *HomeLevel) HandleInput(in *input.State) {
	l.base.HandleInput(in)
	if !l.launched && l.onPortal && l.hud.ControlButtons.BPressed() {
		l.launched = true
		l.transition(config.MainLevelName)
	}
}

func (l *HomeLevel) Update(dt float64) {
	l.Manager.Update(dt)
	l.onPortal = l.tilemap.AnyTile(l.player.CollisionRect(), tiledmap.PortalBlock)
	l.hud.ControlButtons.BVisible = l.onPortal
}

func (l *HomeLevel) Draw(c canvas.Canvas) {
	l.drawFrame(c, func(c canvas.Canvas) {
		l.player.Draw(c)
		if l.onPortal {
			r := l.player.Rect()
			w, h := canvas.TextSize(portalPrompt, 1)
			c.DrawText(portalPrompt, r.CenterX()-w/2, r.Top-h-2, 1, config.TextLightColor)
		}
	})
}

func (l *HomeLevel) Player() *actor.Player { return l.player }
