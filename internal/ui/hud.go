// internal/ui/hud.go
package ui

import (
	"capture-the-fly/internal/entity"
	"capture-the-fly/internal/types"
	"capture-the-fly/pkg/geom"
)

// HUD — слой поверх игры. Это вложенный менеджер: уровень регистрирует
// его первым, поэтому джойстик обновляется раньше игрока.
type HUD struct {
	*entity.Manager
	screen geom.Rect

	Joystick       *Joystick
	ControlButtons *ControlButtons
	ChargeBar      *ChargeBar
	HealthBar      *HealthBar
	Banner         *WaveBanner
	FPS            *FPSCounter
}

// NewHUD собирает HUD. power и health могут быть nil — тогда
// соответствующая полоска не создаётся.
func NewHUD(screen geom.Rect, power, health Gauge, showFPS bool) *HUD {
	h := &HUD{Manager: entity.NewManager(), screen: screen}
	h.Joystick = entity.Create(h.Manager, func(types.EntityID) *Joystick { return NewJoystick(screen) })
	h.ControlButtons = entity.Create(h.Manager, func(types.EntityID) *ControlButtons { return NewControlButtons(screen) })
	if power != nil {
		h.ChargeBar = entity.Create(h.Manager, func(types.EntityID) *ChargeBar { return NewChargeBar(screen, power) })
	}
	if health != nil {
		h.HealthBar = entity.Create(h.Manager, func(types.EntityID) *HealthBar { return NewHealthBar(screen, health) })
	}
	h.Banner = entity.Create(h.Manager, func(types.EntityID) *WaveBanner { return NewWaveBanner(screen) })
	if showFPS {
		h.FPS = entity.Create(h.Manager, func(types.EntityID) *FPSCounter { return &FPSCounter{} })
	}
	return h
}

// Rect — весь экран, а не объединение виджетов.
func (h *HUD) Rect() geom.Rect { return h.screen }
