// internal/actor/fly.go
package actor

import (
	"capture-the-fly/internal/component"
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/defs"
	"capture-the-fly/internal/input"
	"capture-the-fly/internal/types"
	"capture-the-fly/internal/utils"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
)

// Fly — муха. Летит к игроку, не проходит сквозь других живых мух,
// сквозь стены летает. Смерть окончательна.
type Fly struct {
	ID types.EntityID

	rect     geom.Rect
	maxSpeed float64
	speed    float64
	target   PositionSource
	swarm    Swarm
	anim     *component.Animation

	horizontal     component.Movement
	vertical       component.Movement
	lastHorizontal component.Movement
	lastVertical   component.Movement

	stunned       bool
	attacking     bool
	dying         bool
	dead          bool
	deathReported bool
}

// NewFly создаёт муху с левым верхним углом в (x, y). Максимальная
// скорость — один тайл в секунду. swarm может быть nil.
func NewFly(id types.EntityID, x, y, tileSize float64, target PositionSource, swarm Swarm) *Fly {
	return &Fly{
		ID:       id,
		rect:     geom.RectFromSize(x, y, config.FlySize, config.FlySize),
		maxSpeed: tileSize,
		speed:    tileSize,
		target:   target,
		swarm:    swarm,
		anim:     component.NewAnimation(defs.FlyAnimations, defs.ActionFly),
	}
}

func (f *Fly) Rect() geom.Rect { return f.rect }

func (f *Fly) Center() geom.Vector2f { return f.rect.Center() }

func (f *Fly) Speed() float64 { return f.speed }

func (f *Fly) Stunned() bool { return f.stunned }

func (f *Fly) Attacking() bool { return f.attacking }

func (f *Fly) Dying() bool { return f.dying }

func (f *Fly) Dead() bool { return f.dead }

// Alive — муха ещё не начала умирать.
func (f *Fly) Alive() bool { return !f.dying && !f.dead }

func (f *Fly) State() component.FlyState {
	switch {
	case f.dead:
		return component.FlyDead
	case f.dying:
		return component.FlyDying
	case f.stunned:
		return component.FlyStunned
	case f.attacking:
		return component.FlyAttacking
	}
	return component.FlyPursuing
}

// Facing — последнее направление по горизонтали. Если по горизонтали
// муха выровнена с игроком, используется вертикальное.
func (f *Fly) Facing() component.Movement {
	if f.horizontal == component.None && f.lastVertical != component.None {
		return f.lastVertical
	}
	if f.lastHorizontal != component.None {
		return f.lastHorizontal
	}
	if f.lastVertical != component.None {
		return f.lastVertical
	}
	return component.Down
}

// AttackRect — половина мухи в сторону взгляда, пустой вне атаки.
func (f *Fly) AttackRect() geom.Rect {
	if !f.attacking {
		return geom.Rect{}
	}
	return halfToward(f.rect, f.Facing())
}

func (f *Fly) HandleInput(_ *input.State) {
	if !f.Alive() || f.target == nil {
		return
	}
	goal := f.target.Center()
	here := f.rect.Center()

	f.horizontal = axisToward(here.X, goal.X, component.Left, component.Right)
	f.vertical = axisToward(here.Y, goal.Y, component.Up, component.Down)
	if f.horizontal != component.None {
		f.lastHorizontal = f.horizontal
	}
	if f.vertical != component.None {
		f.lastVertical = f.vertical
	}
}

func axisToward(from, to float64, less, more component.Movement) component.Movement {
	switch {
	case to < from:
		return less
	case to > from:
		return more
	}
	return component.None
}

func (f *Fly) Update(dt float64) {
	if f.dead {
		return
	}
	f.anim.Update(dt)

	if f.dying {
		if f.anim.Finished {
			f.dead = true
		}
		return
	}
	if f.attacking && f.anim.Finished {
		f.attacking = false
	}

	if f.speed > 0 {
		f.moveX(dt)
		f.moveY(dt)
	}

	switch {
	case f.attacking:
	case f.stunned:
		f.anim.SetAction(defs.ActionStunned, f.Facing() == component.Left)
	default:
		f.anim.SetAction(defs.ActionFly, f.horizontal == component.Left)
	}
}

func (f *Fly) moveX(dt float64) {
	next := f.rect.Offset(f.horizontal.Delta()*f.speed*dt, 0)
	if !f.blocked(next) {
		f.rect = next
	}
}

// moveY сдвигает по вертикали и, если муха почти выровнена с игроком
// по X, доводит выравнивание до точного.
func (f *Fly) moveY(dt float64) {
	next := f.rect.Offset(0, f.vertical.Delta()*f.speed*dt)
	if f.target != nil {
		offset := f.rect.CenterX() - f.target.Center().X
		if utils.Abs(offset) < 1 {
			next = next.Offset(-offset, 0)
		}
	}
	if !f.blocked(next) {
		f.rect = next
	}
}

// blocked — next налезает на другую живую муху. Мух, с которыми уже
// есть пересечение, не учитываем, иначе слипшиеся мухи застрянут.
func (f *Fly) blocked(next geom.Rect) bool {
	if f.swarm == nil {
		return false
	}
	for _, other := range f.swarm.Living() {
		if other == f || !other.Alive() {
			continue
		}
		if other.rect.Intersects(f.rect) {
			continue
		}
		if other.rect.Intersects(next) {
			return true
		}
	}
	return false
}

// Stun останавливает муху или возвращает ей скорость.
func (f *Fly) Stun(on bool) {
	if !f.Alive() {
		return
	}
	f.stunned = on
	if on {
		f.speed = 0
		return
	}
	f.speed = f.maxSpeed
}

// Attack запускает атаку. Мёртвая, умирающая или оглушённая муха
// не атакует и возвращает false.
func (f *Fly) Attack() bool {
	if !f.Alive() || f.stunned {
		return false
	}
	if !f.attacking {
		f.attacking = true
		f.anim.Restart(defs.ActionFlyHit, f.Facing() == component.Left)
	}
	return true
}

// Die запускает анимацию смерти. Возвращает false, если муха уже умирает.
func (f *Fly) Die() bool {
	if !f.Alive() {
		return false
	}
	f.dying = true
	f.attacking = false
	f.speed = 0
	f.anim.Restart(defs.ActionFlyDie, f.anim.Reversed)
	return true
}

// ConsumeDeath возвращает true ровно один раз, после того как
// анимация смерти доиграла.
func (f *Fly) ConsumeDeath() bool {
	if !f.dead || f.deathReported {
		return false
	}
	f.deathReported = true
	return true
}

func (f *Fly) Draw(c canvas.Canvas) {
	if f.dead {
		return
	}
	col := config.FlyColor
	switch {
	case f.dying:
		col = config.FlyDyingColor
	case f.stunned:
		col = config.FlyStunnedColor
	}
	c.FillRect(f.rect, col)
	if f.attacking {
		c.FillRect(f.AttackRect(), config.AttackColor)
	}
}
