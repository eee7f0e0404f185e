// internal/level/main_level.go
package level

import (
	"capture-the-fly/internal/actor"
	"capture-the-fly/internal/component"
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/event"
	"capture-the-fly/internal/input"
	"capture-the-fly/internal/system"
	"capture-the-fly/pkg/canvas"
)

// MainLevel — уровень с волнами мух.
type MainLevel struct {
	*base

	waves  *system.WaveSystem
	stun   *system.StunSystem
	combat *system.CombatSystem
	area   *system.AreaAttackSystem

	phase component.LevelPhase
}

func NewMainLevel(deps Deps) (*MainLevel, error) {
	b, err := newBase(config.MainLevelName, deps, config.TilesAcrossScreen,
		(*actor.Player).PowerLevel, (*actor.Player).HealthLevel)
	if err != nil {
		return nil, err
	}
	l := &MainLevel{base: b}
	l.waves = system.NewWaveSystem(b.Manager, b.tilemap, b.player, deps.PRNG, deps.Events)
	l.stun = system.NewStunSystem(l.waves, deps.Events)
	l.combat = system.NewCombatSystem(b.player, l.waves)
	l.area = system.NewAreaAttackSystem(b.player, b.camera, l.waves, deps.Prefs, deps.Events)
	return l, nil
}

func (l *MainLevel) OnLoad() {
	l.base.OnLoad()
	l.reset()
}

func (l *MainLevel) reset() {
	l.phase = component.Playing
	l.stun.Reset()
	l.waves.Reset()
	l.deps.Events.Publish(event.LevelReset, nil)
}

func (l *MainLevel) HandleInput(in *input.State) {
	l.base.HandleInput(in)
	if l.hud.ControlButtons.APressed() {
		l.player.Attack()
	}
	l.stun.HandleInput(in)
	l.area.HandleInput(in)
}

func (l *MainLevel) Update(dt float64) {
	l.Manager.Update(dt)

	// Игрок сам возвращается на старт, когда доиграет анимация смерти.
	if l.phase == component.Resetting && !l.player.Dead() {
		l.reset()
	}

	l.player.GatherPower(dt)
	l.waves.Update(dt)
	l.stun.Update(dt)
	if l.combat.Update() {
		l.phase = component.Resetting
	}
	l.area.Update()
	l.player.GatherHealth(dt)
}

// PostUpdate запускает следующую волну после всех проходов кадра.
func (l *MainLevel) PostUpdate(dt float64) {
	l.Manager.PostUpdate(dt)
	l.waves.PostUpdate()
	if l.waves.Won() && l.phase != component.Won {
		l.phase = component.Won
		l.transition(config.HomeLevelName)
	}
}

func (l *MainLevel) Draw(c canvas.Canvas) {
	l.drawFrame(c, func(c canvas.Canvas) {
		l.player.Draw(c)
		for _, f := range l.waves.Living() {
			f.Draw(c)
		}
	})
}

// Wave — номер текущей волны, для статистики.
func (l *MainLevel) Wave() int {
	if l.waves.Wave == nil {
		return 0
	}
	return l.waves.Wave.Number
}

func (l *MainLevel) Player() *actor.Player       { return l.player }
func (l *MainLevel) Phase() component.LevelPhase { return l.phase }
