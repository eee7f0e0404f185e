// internal/defs/animations.go
package defs

import "capture-the-fly/internal/component"

// Имена действий спрайтов
const (
	ActionHit = "hit"

	ActionFly     = "fly"
	ActionFlyHit  = "attack"
	ActionFlyDie  = "die"
	ActionStunned = "stunned"
)

// PlayerAction собирает имя действия игрока вида walk_left.
func PlayerAction(kind string, dir component.Movement) string {
	if dir == component.None {
		dir = component.Down
	}
	return kind + "_" + dir.String()
}

// PlayerAnimations — раскадровка спрайта игрока.
var PlayerAnimations = map[string]component.AnimationDef{
	ActionHit: {Frames: 6, FrameDuration: 0.1},
}

// FlyAnimations — раскадровка спрайта мухи.
var FlyAnimations = map[string]component.AnimationDef{
	ActionFly:     {Frames: 2, FrameDuration: 0.05, Loop: true},
	ActionFlyHit:  {Frames: 4, FrameDuration: 0.08},
	ActionFlyDie:  {Frames: 5, FrameDuration: 0.1},
	ActionStunned: {Frames: 1, FrameDuration: 0.1, Loop: true},
}

func init() {
	for _, dir := range []component.Movement{component.Left, component.Right, component.Up, component.Down} {
		PlayerAnimations[PlayerAction("idle", dir)] = component.AnimationDef{Frames: 4, FrameDuration: 0.15, Loop: true}
		PlayerAnimations[PlayerAction("walk", dir)] = component.AnimationDef{Frames: 6, FrameDuration: 0.1, Loop: true}
		PlayerAnimations[PlayerAction("attack", dir)] = component.AnimationDef{Frames: 4, FrameDuration: 0.075}
	}
}
