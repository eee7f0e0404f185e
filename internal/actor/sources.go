// internal/actor/sources.go
package actor

import (
	"capture-the-fly/internal/component"
	"capture-the-fly/pkg/geom"
)

// PositionSource отдаёт текущий центр отслеживаемой сущности.
// Мухи и камера держат его вместо ссылки на игрока.
type PositionSource interface {
	Center() geom.Vector2f
}

// DirectionSource — направления, которые выдаёт джойстик.
type DirectionSource interface {
	Horizontal() component.Movement
	Vertical() component.Movement
}

// Swarm — живые мухи текущей волны.
type Swarm interface {
	Living() []*Fly
}
