// internal/system/area_attack_system.go
package system

import (
	"capture-the-fly/internal/actor"
	"capture-the-fly/internal/event"
	"capture-the-fly/internal/input"
	"capture-the-fly/pkg/geom"
)

// PowerSource — накопитель силы для удара по области.
type PowerSource interface {
	PowerLevel() float64
	ConsumePower() float64
}

// ViewSource — видимая часть мира.
type ViewSource interface {
	GameRect() geom.Rect
}

// ShakeReference — эталон ускорения, с которым сравнивается встряска.
type ShakeReference interface {
	AccelerationReference() geom.Vector3f
}

// AreaAttackSystem убивает всех мух в кадре, когда телефон встряхнули,
// а у игрока накоплена полная сила.
type AreaAttackSystem struct {
	power           PowerSource
	view            ViewSource
	swarm           actor.Swarm
	reference       ShakeReference
	eventDispatcher *event.Dispatcher

	shaking bool
}

func NewAreaAttackSystem(power PowerSource, view ViewSource, swarm actor.Swarm, reference ShakeReference, eventDispatcher *event.Dispatcher) *AreaAttackSystem {
	return &AreaAttackSystem{
		power:           power,
		view:            view,
		swarm:           swarm,
		reference:       reference,
		eventDispatcher: eventDispatcher,
	}
}

func (s *AreaAttackSystem) HandleInput(in *input.State) {
	s.shaking = in.IsShaking(s.reference.AccelerationReference())
}

// Update возвращает число убитых мух.
func (s *AreaAttackSystem) Update() int {
	if !s.shaking || s.power.PowerLevel() < 1 {
		return 0
	}
	s.power.ConsumePower()

	view := s.view.GameRect()
	killed := 0
	for _, f := range s.swarm.Living() {
		if f.Rect().Intersects(view) && f.Die() {
			killed++
		}
	}
	s.eventDispatcher.Publish(event.AreaBurst, killed)
	return killed
}
