// internal/actor/player.go
package actor

import (
	"capture-the-fly/internal/component"
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/defs"
	"capture-the-fly/internal/event"
	"capture-the-fly/internal/input"
	"capture-the-fly/internal/types"
	"capture-the-fly/internal/utils"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
	"capture-the-fly/pkg/tiledmap"
)

// Погрешность сравнения здоровья с нулём: пять ударов по 0.2
// во float64 не дают ровно 0.
const healthEpsilon = 1e-9

// Player — персонаж игрока. При смерти не уничтожается, а
// возвращается на точку появления.
type Player struct {
	ID types.EntityID
	component.Vitals
	Velocity component.Velocity

	rect     geom.Rect
	tilemap  *tiledmap.TiledMap
	controls DirectionSource
	events   *event.Dispatcher
	anim     *component.Animation

	horizontal component.Movement
	vertical   component.Movement
	facing     component.Movement
	attacking  bool
	dead       bool
}

// NewPlayer ставит игрока на точку появления карты.
// controls и events могут быть nil.
func NewPlayer(id types.EntityID, tm *tiledmap.TiledMap, controls DirectionSource, events *event.Dispatcher) *Player {
	p := &Player{
		ID:       id,
		rect:     geom.RectFromSize(0, 0, config.PlayerWidth, config.PlayerHeight),
		tilemap:  tm,
		controls: controls,
		events:   events,
		facing:   component.Down,
	}
	p.anim = component.NewAnimation(defs.PlayerAnimations, defs.PlayerAction("idle", p.facing))
	p.reset()
	return p
}

func (p *Player) reset() {
	p.SetPosition(p.tilemap.InitialPlayerPosition(), p.tilemap.TileSize())
	p.Health = config.PlayerMaxHealth
	p.Invincibility = 0
	p.Velocity = component.Velocity{}
	p.horizontal = component.None
	p.vertical = component.None
	p.attacking = false
	p.dead = false
	p.anim.Restart(defs.PlayerAction("idle", p.facing), false)
}

// SetPosition ставит игрока низом на нижнюю границу клетки cell,
// по центру клетки.
func (p *Player) SetPosition(cell geom.Vector2i, tileSize float64) {
	bottom := float64(cell.Y+1) * tileSize
	centerX := float64(cell.X)*tileSize + tileSize/2
	w, h := p.rect.Width(), p.rect.Height()
	p.rect = geom.RectFromSize(centerX-w/2, bottom-h, w, h)
}

func (p *Player) Rect() geom.Rect { return p.rect }

func (p *Player) Center() geom.Vector2f { return p.rect.Center() }

// CollisionRect — спрайт, суженный по горизонтали.
func (p *Player) CollisionRect() geom.Rect {
	return p.rect.Inset(config.PlayerCollisionInset, 0)
}

// AttackRect — половина спрайта со стороны взгляда. Пустой, если игрок не атакует.
func (p *Player) AttackRect() geom.Rect {
	if !p.attacking {
		return geom.Rect{}
	}
	return halfToward(p.rect, p.facing)
}

func (p *Player) Facing() component.Movement { return p.facing }
func (p *Player) Attacking() bool            { return p.attacking }
func (p *Player) Dead() bool                 { return p.dead }
func (p *Player) Action() string             { return p.anim.Action }

func (p *Player) State() component.PlayerState {
	switch {
	case p.dead:
		return component.PlayerHit
	case p.attacking:
		return component.PlayerAttacking
	case p.Velocity.DX != 0 || p.Velocity.DY != 0:
		return component.PlayerWalking
	}
	return component.PlayerIdle
}

func (p *Player) HandleInput(_ *input.State) {
	if p.dead || p.controls == nil {
		p.horizontal, p.vertical = component.None, component.None
		return
	}
	p.horizontal = p.controls.Horizontal()
	p.vertical = p.controls.Vertical()
	if p.vertical != component.None {
		p.facing = p.vertical
	}
	if p.horizontal != component.None {
		p.facing = p.horizontal
	}
}

func (p *Player) Update(dt float64) {
	p.Invincibility -= dt

	lastFrame := p.anim.Frame
	p.anim.Update(dt)

	if p.dead || p.tilemap.AnyTile(p.CollisionRect(), tiledmap.DeathBlock) {
		p.Die()
		if p.anim.Finished {
			p.reset()
			p.events.Publish(event.PlayerRespawned, p.Deaths)
		}
		return
	}

	if p.attacking && p.anim.Finished {
		p.attacking = false
	}

	p.integrate(dt)
	p.chooseAction()
	p.move(dt)

	if p.State() == component.PlayerWalking && p.anim.Frame != lastFrame {
		p.events.Publish(event.PlayerStep, nil)
	}
}

func (p *Player) integrate(dt float64) {
	p.Velocity.DX = decayAxis(p.Velocity.DX+config.PlayerAcceleration*dt*p.horizontal.Delta(), p.horizontal)
	p.Velocity.DY = decayAxis(p.Velocity.DY+config.PlayerAcceleration*dt*p.vertical.Delta(), p.vertical)
}

// decayAxis гасит скорость по оси без ввода: делит пополам и обнуляет
// у порога, затем ограничивает модуль.
func decayAxis(v float64, dir component.Movement) float64 {
	if dir == component.None {
		v /= 2
		if utils.Abs(v) < config.PlayerVelocityThreshold {
			v = 0
		}
	}
	return utils.Clamp(v, -config.PlayerMaxVelocity, config.PlayerMaxVelocity)
}

func (p *Player) chooseAction() {
	if p.attacking {
		return
	}
	if p.horizontal != component.None || p.vertical != component.None {
		p.anim.SetAction(defs.PlayerAction("walk", p.facing), p.facing == component.Left)
		return
	}
	p.anim.SetAction(defs.PlayerAction("idle", p.facing), p.facing == component.Left)
}

// move сдвигает игрока сначала по вертикали, потом по горизонтали.
// Отклоняется только смещение по оси, скорость не обнуляется.
func (p *Player) move(dt float64) {
	dy := p.Velocity.DY * dt * config.PlayerSpeed
	if dy != 0 && !p.tilemap.AnyTile(p.CollisionRect().Offset(0, dy), tiledmap.CollisionBlock) {
		p.rect = p.rect.Offset(0, dy)
	}
	dx := p.Velocity.DX * dt * config.PlayerSpeed
	if dx != 0 && !p.tilemap.AnyTile(p.CollisionRect().Offset(dx, 0), tiledmap.CollisionBlock) {
		p.rect = p.rect.Offset(dx, 0)
	}
}

// Die запускает анимацию смерти. Повторный вызов ничего не делает.
func (p *Player) Die() {
	if p.dead {
		return
	}
	p.dead = true
	p.Deaths++
	p.attacking = false
	p.horizontal, p.vertical = component.None, component.None
	p.anim.Restart(defs.ActionHit, p.facing == component.Left)
	p.events.Publish(event.PlayerDied, p.Deaths)
}

// Attack начинает удар, если игрок жив и не бьёт уже.
func (p *Player) Attack() {
	if p.dead || p.attacking {
		return
	}
	p.attacking = true
	p.anim.Restart(defs.PlayerAction("attack", p.facing), p.facing == component.Left)
}

// TakeDamage снимает здоровье, если окно неуязвимости закрыто,
// и сообщает, умер ли игрок. Смерть запускает вызывающий.
func (p *Player) TakeDamage() bool {
	if p.dead || p.Invincibility > 0 {
		return false
	}
	p.Health = max(0, p.Health-config.PlayerDamage)
	p.Invincibility = config.InvincibilityDuration
	p.events.Publish(event.PlayerHit, p.Health)
	return p.Health <= healthEpsilon
}

func (p *Player) GatherPower(dt float64) {
	if !p.dead {
		p.Power += config.PowerPerSecond * dt
	}
}

// ConsumePower тратит всю накопленную силу.
func (p *Player) ConsumePower() float64 {
	power := p.Power
	p.Power = 0
	return power
}

func (p *Player) GatherHealth(dt float64) {
	if !p.dead {
		p.Health = min(config.PlayerMaxHealth, p.Health+config.HealthRegenPerSecond*dt)
	}
}

// HealthLevel и PowerLevel нужны полоскам HUD.
func (p *Player) HealthLevel() float64 { return p.Health }
func (p *Player) PowerLevel() float64  { return p.Power }

func (p *Player) Draw(c canvas.Canvas) {
	col := config.PlayerColor
	if p.dead || p.Invincibility > 0 {
		col = config.PlayerHitColor
	}
	c.FillRect(p.rect, col)
	if p.attacking {
		c.FillRect(p.AttackRect(), config.AttackColor)
	}
}

// halfToward — половина прямоугольника в сторону направления.
func halfToward(r geom.Rect, dir component.Movement) geom.Rect {
	switch dir {
	case component.Left:
		return r.LeftHalf()
	case component.Right:
		return r.RightHalf()
	case component.Up:
		return r.TopHalf()
	}
	return r.BottomHalf()
}
