package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capture-the-fly/internal/component"
	"capture-the-fly/internal/event"
	"capture-the-fly/pkg/geom"
)

func newTestPlayer(t *testing.T) (*Player, *stick) {
	t.Helper()
	controls := &stick{}
	return NewPlayer(1, testMap(t), controls, nil), controls
}

func TestPlayerSpawnsOnInitialCell(t *testing.T) {
	p, _ := newTestPlayer(t)
	assert.Equal(t, geom.Rect{Left: 16, Top: 48, Right: 32, Bottom: 64}, p.Rect())
	assert.Equal(t, 1.0, p.Health)
	assert.Equal(t, component.PlayerIdle, p.State())
}

func TestVelocityDecayReachesZeroWithoutSignFlip(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.Velocity = component.Velocity{DX: 16, DY: -16}

	frames := 0
	for p.Velocity.DX != 0 || p.Velocity.DY != 0 {
		p.HandleInput(nil)
		p.Update(0.016)
		assert.GreaterOrEqual(t, p.Velocity.DX, 0.0)
		assert.LessOrEqual(t, p.Velocity.DY, 0.0)
		frames++
		require.Less(t, frames, 20, "velocity never settled")
	}
}

func TestVelocityIsClamped(t *testing.T) {
	p, controls := newTestPlayer(t)
	controls.h = component.Right
	controls.v = component.Up
	for i := 0; i < 30; i++ {
		p.HandleInput(nil)
		p.Update(0.1)
	}
	assert.Equal(t, 16.0, p.Velocity.DX)
	assert.Equal(t, -16.0, p.Velocity.DY)
}

func TestVerticalCollisionRejectsOnlyVerticalMove(t *testing.T) {
	p, controls := newTestPlayer(t)
	controls.h = component.Right
	controls.v = component.Down

	p.HandleInput(nil)
	p.Update(0.1)

	r := p.Rect()
	assert.Equal(t, 48.0, r.Top, "wall below must stop the vertical move")
	assert.InDelta(t, 16+6.4*0.1*12, r.Left, 1e-9)
	assert.InDelta(t, 6.4, p.Velocity.DY, 1e-9, "velocity is kept")
	assert.Equal(t, component.PlayerWalking, p.State())
}

func TestDeathBlockKillsAndRespawns(t *testing.T) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(event.PlayerDied, rec)
	d.Subscribe(event.PlayerRespawned, rec)

	p := NewPlayer(1, testMap(t), &stick{}, d)
	spawn := p.Rect()
	p.SetPosition(geom.Vector2i{X: 3, Y: 3}, 16)

	p.Update(0.016)
	assert.Equal(t, component.PlayerHit, p.State())
	assert.Equal(t, "hit", p.Action())
	assert.Equal(t, 1, p.Deaths)

	for i := 0; i < 20 && p.Dead(); i++ {
		p.Update(0.1)
	}
	require.False(t, p.Dead())
	assert.Equal(t, spawn, p.Rect())
	assert.Equal(t, 1.0, p.Health)
	assert.Equal(t, component.Velocity{}, p.Velocity)
	assert.Equal(t, []event.EventType{event.PlayerDied, event.PlayerRespawned}, rec.types)
}

func TestDieIsIdempotent(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.Die()
	p.Die()
	assert.Equal(t, 1, p.Deaths)
}

func TestDamageIgnoredWhileInvincible(t *testing.T) {
	p, _ := newTestPlayer(t)

	assert.False(t, p.TakeDamage())
	assert.InDelta(t, 0.8, p.Health, 1e-9)

	for i := 0; i < 5; i++ {
		assert.False(t, p.TakeDamage())
		p.Update(0.1)
	}
	assert.InDelta(t, 0.8, p.Health, 1e-9)

	p.Update(0.6)
	assert.False(t, p.TakeDamage())
	assert.InDelta(t, 0.6, p.Health, 1e-9)
}

func TestFifthHitIsLethal(t *testing.T) {
	p, _ := newTestPlayer(t)
	for i := 0; i < 4; i++ {
		require.False(t, p.TakeDamage(), "hit %d", i+1)
		p.Invincibility = 0
	}
	assert.True(t, p.TakeDamage())
}

func TestHealthNeverExceedsOne(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.Health = 0.5
	for i := 0; i < 100; i++ {
		p.GatherHealth(0.5)
		require.LessOrEqual(t, p.Health, 1.0)
	}
	assert.Equal(t, 1.0, p.Health)
}

func TestPowerAccumulatesAndIsConsumed(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.GatherPower(10)
	assert.InDelta(t, 1.0, p.Power, 1e-9)
	assert.InDelta(t, 1.0, p.ConsumePower(), 1e-9)
	assert.Equal(t, 0.0, p.Power)
}

func TestAttackRectFollowsFacingAndExpires(t *testing.T) {
	p, controls := newTestPlayer(t)
	assert.True(t, p.AttackRect().IsEmpty())

	controls.h = component.Left
	p.HandleInput(nil)
	controls.h = component.None
	p.HandleInput(nil)

	p.Attack()
	assert.Equal(t, component.PlayerAttacking, p.State())
	assert.Equal(t, p.Rect().LeftHalf(), p.AttackRect())

	for i := 0; i < 10; i++ {
		p.Update(0.05)
	}
	assert.False(t, p.Attacking())
	assert.Equal(t, geom.Rect{}, p.AttackRect())
}

type recorder struct {
	types []event.EventType
}

func (r *recorder) OnEvent(e event.Event) { r.types = append(r.types, e.Type) }
