// internal/system/combat.go
package system

import "capture-the-fly/internal/actor"

// CombatSystem разбирает удары игрока и мух за кадр.
type CombatSystem struct {
	player *actor.Player
	swarm  actor.Swarm
}

func NewCombatSystem(player *actor.Player, swarm actor.Swarm) *CombatSystem {
	return &CombatSystem{player: player, swarm: swarm}
}

// Update возвращает true, если удар мухи убил игрока. В этом случае
// игрок уже переведён в состояние смерти.
func (s *CombatSystem) Update() bool {
	if hit := s.player.AttackRect(); !hit.IsEmpty() {
		for _, f := range s.swarm.Living() {
			if f.Alive() && hit.Intersects(f.Rect()) {
				f.Die()
			}
		}
	}

	if s.player.Dead() {
		return false
	}
	body := s.player.CollisionRect()
	for _, f := range s.swarm.Living() {
		if !f.Alive() || !f.Rect().Intersects(body) {
			continue
		}
		if !f.Attack() || !f.AttackRect().Intersects(body) {
			continue
		}
		if s.player.TakeDamage() {
			s.player.Die()
			return true
		}
	}
	return false
}
