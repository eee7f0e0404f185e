package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capture-the-fly/internal/actor"
	"capture-the-fly/internal/entity"
	"capture-the-fly/internal/event"
	"capture-the-fly/internal/input"
	"capture-the-fly/internal/utils"
	"capture-the-fly/pkg/geom"
	"capture-the-fly/pkg/tiledmap"
)

func floorMap(t *testing.T) *tiledmap.TiledMap {
	t.Helper()
	rows := make([][]int, 10)
	for y := range rows {
		rows[y] = make([]int, 10)
		for x := range rows[y] {
			rows[y][x] = tiledmap.FloorBlock
		}
	}
	tm, err := tiledmap.New("floor", rows, 16, geom.Vector2i{X: 1, Y: 3}, 0)
	require.NoError(t, err)
	return tm
}

type point geom.Vector2f

func (p point) Center() geom.Vector2f { return geom.Vector2f(p) }

type flies []*actor.Fly

func (f flies) Living() []*actor.Fly { return f }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newWaves(t *testing.T) (*WaveSystem, *entity.Manager, *recorder) {
	t.Helper()
	m := entity.NewManager()
	d := event.NewDispatcher()
	rec := &recorder{}
	for _, et := range []event.EventType{event.WaveStarted, event.WaveCleared, event.FlySpawned, event.FlyDied, event.LevelWon} {
		d.Subscribe(et, rec)
	}
	ws := NewWaveSystem(m, floorMap(t), point{X: 80, Y: 80}, utils.NewPRNGService(3), d)
	return ws, m, rec
}

// killWave выпускает всю волну, убивает её и доигрывает анимации.
func killWave(ws *WaveSystem, m *entity.Manager) {
	for ws.Wave.Spawned < ws.Wave.Target {
		ws.Update(ws.Wave.SpawnInterval)
	}
	for _, f := range ws.Living() {
		f.Die()
	}
	for i := 0; i < 10; i++ {
		m.Update(0.1)
		ws.Update(0)
	}
}

func TestWaveSpawnsOnInterval(t *testing.T) {
	ws, m, rec := newWaves(t)
	w := ws.StartWave(1)
	require.Equal(t, 7, w.Target)

	ws.Update(1.0)
	assert.Equal(t, 0, w.Spawned)
	ws.Update(1.0)
	assert.Equal(t, 1, w.Spawned)
	assert.Equal(t, 0.0, w.SpawnTimer)
	assert.Equal(t, 1, m.Len())
	assert.Len(t, ws.Living(), 1)

	for i := 0; i < 50; i++ {
		ws.Update(2.0)
	}
	assert.Equal(t, 7, w.Spawned)
	assert.Equal(t, 7, m.Len())
	assert.Equal(t, 7, rec.count(event.FlySpawned))

	bounds := floorMapRect()
	for _, f := range ws.Living() {
		r := f.Rect()
		assert.True(t, r.Left >= bounds.Left && r.Right <= bounds.Right)
		assert.True(t, r.Top >= bounds.Top && r.Bottom <= bounds.Bottom)
	}
}

func floorMapRect() geom.Rect { return geom.NewRect(0, 0, 160, 160) }

func TestClearedWaveLaunchesNextAfterPostUpdate(t *testing.T) {
	ws, m, rec := newWaves(t)
	ws.StartWave(1)
	killWave(ws, m)

	assert.Equal(t, 0, ws.Wave.Remaining)
	assert.Empty(t, ws.Living())
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 7, rec.count(event.FlyDied))
	assert.Equal(t, 1, ws.Wave.Number, "next wave waits for post-update")

	ws.PostUpdate()
	assert.Equal(t, 2, ws.Wave.Number)
	assert.Equal(t, 9, ws.Wave.Target)
	assert.Equal(t, 9, ws.Wave.Remaining)
	assert.InDelta(t, 1.9, ws.Wave.SpawnInterval, 1e-9)
	assert.Equal(t, 2, rec.count(event.WaveStarted))
}

func TestDeadFlyIsReplacedWhileWaveRuns(t *testing.T) {
	ws, m, rec := newWaves(t)
	w := ws.StartWave(1)
	for len(ws.Living()) < w.Target {
		ws.Update(w.SpawnInterval)
	}
	require.Equal(t, 7, w.Spawned)

	require.True(t, ws.Living()[0].Die())
	for i := 0; i < 10; i++ {
		m.Update(0.1)
		ws.Update(0)
	}
	require.Len(t, ws.Living(), 6)
	require.Equal(t, 6, w.Remaining)

	ws.Update(w.SpawnInterval)
	assert.Len(t, ws.Living(), 7)
	assert.Equal(t, 8, w.Spawned)
	assert.Equal(t, 6, w.Remaining, "a replacement does not refill the wave")
	assert.Equal(t, 8, rec.count(event.FlySpawned))
	assert.Equal(t, 7, m.Len())
}

func TestLastWaveWins(t *testing.T) {
	ws, m, rec := newWaves(t)
	ws.WavesToWin = 1
	ws.StartWave(1)
	killWave(ws, m)
	ws.PostUpdate()

	assert.True(t, ws.Won())
	assert.Equal(t, 1, rec.count(event.LevelWon))

	ws.Reset()
	assert.False(t, ws.Won())
	assert.Equal(t, 1, ws.Wave.Number)
}

func TestResetRemovesLiveFlies(t *testing.T) {
	ws, m, _ := newWaves(t)
	ws.StartWave(3)
	ws.Update(5)
	ws.Update(5)
	require.Equal(t, 2, m.Len())

	ws.Reset()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, ws.Living())
	assert.Equal(t, 1, ws.Wave.Number)
}

func TestSpawnedFliesInheritStun(t *testing.T) {
	ws, _, _ := newWaves(t)
	ws.StartWave(1)
	ws.StunAll(true)
	ws.Update(2)
	require.Len(t, ws.Living(), 1)
	assert.True(t, ws.Living()[0].Stunned())

	ws.StunAll(false)
	assert.False(t, ws.Living()[0].Stunned())
}

type stunRecorder struct {
	calls []bool
}

func (s *stunRecorder) StunAll(on bool) { s.calls = append(s.calls, on) }

func TestStunNeedsOneSecondOfDarkness(t *testing.T) {
	rec := &stunRecorder{}
	s := NewStunSystem(rec, nil)
	dark := input.DefaultState()
	dark.Luminosity = 5
	light := input.DefaultState()

	s.HandleInput(&dark)
	s.Update(0.5)
	s.Update(0.4)
	assert.False(t, s.Stunned())

	s.HandleInput(&light)
	s.Update(0.1)
	s.HandleInput(&dark)
	s.Update(0.5)
	s.Update(0.4)
	assert.False(t, s.Stunned(), "light resets the timer")

	s.Update(0.2)
	assert.True(t, s.Stunned())
	s.Update(1)
	assert.Equal(t, []bool{true}, rec.calls)

	s.HandleInput(&light)
	s.Update(0.016)
	assert.False(t, s.Stunned())
	assert.Equal(t, []bool{true, false}, rec.calls)
}

func newPlayer(t *testing.T) *actor.Player {
	t.Helper()
	return actor.NewPlayer(1, floorMap(t), nil, nil)
}

// flyAtPlayer — муха вплотную справа, смотрит на игрока.
func flyAtPlayer(p *actor.Player) *actor.Fly {
	f := actor.NewFly(2, 20, 44, 16, p, nil)
	f.HandleInput(nil)
	return f
}

func TestFlyAttackDamagesPlayerOnce(t *testing.T) {
	p := newPlayer(t)
	f := flyAtPlayer(p)
	combat := NewCombatSystem(p, flies{f})

	assert.False(t, combat.Update())
	assert.True(t, f.Attacking())
	assert.InDelta(t, 0.8, p.Health, 1e-9)

	assert.False(t, combat.Update())
	assert.InDelta(t, 0.8, p.Health, 1e-9, "invincibility window")
}

func TestLethalFlyAttackKillsPlayer(t *testing.T) {
	p := newPlayer(t)
	p.Health = 0.2
	f := flyAtPlayer(p)
	combat := NewCombatSystem(p, flies{f})

	assert.True(t, combat.Update())
	assert.True(t, p.Dead())
	assert.False(t, combat.Update(), "dead player takes no more hits")
}

func TestStunnedFlyDoesNotAttack(t *testing.T) {
	p := newPlayer(t)
	f := flyAtPlayer(p)
	f.Stun(true)
	NewCombatSystem(p, flies{f}).Update()
	assert.Equal(t, 1.0, p.Health)
}

func TestPlayerAttackKillsFly(t *testing.T) {
	p := newPlayer(t)
	f := flyAtPlayer(p)
	far := actor.NewFly(3, 120, 120, 16, p, nil)
	p.Attack()

	NewCombatSystem(p, flies{f, far}).Update()
	assert.True(t, f.Dying())
	assert.True(t, far.Alive())
	assert.Equal(t, 1.0, p.Health)
}

type powerSource struct{ power float64 }

func (p *powerSource) PowerLevel() float64 { return p.power }
func (p *powerSource) ConsumePower() float64 {
	v := p.power
	p.power = 0
	return v
}

type view geom.Rect

func (v view) GameRect() geom.Rect { return geom.Rect(v) }

type reference geom.Vector3f

func (r reference) AccelerationReference() geom.Vector3f { return geom.Vector3f(r) }

func TestAreaAttackNeedsShakeAndFullPower(t *testing.T) {
	target := point{}
	inside := actor.NewFly(1, 10, 10, 16, target, nil)
	outside := actor.NewFly(2, 500, 500, 16, target, nil)
	power := &powerSource{power: 0.5}
	aoe := NewAreaAttackSystem(power, view(geom.NewRect(0, 0, 200, 200)), flies{inside, outside}, reference{Z: 9.81}, nil)

	calm := input.DefaultState()
	calm.Acceleration = geom.Vector3f{Z: 1}
	shake := input.DefaultState()
	shake.Acceleration = geom.Vector3f{X: 12}

	aoe.HandleInput(&shake)
	assert.Equal(t, 0, aoe.Update(), "not enough power")

	power.power = 1
	aoe.HandleInput(&calm)
	assert.Equal(t, 0, aoe.Update(), "no shake")
	assert.Equal(t, 1.0, power.power)

	aoe.HandleInput(&shake)
	assert.Equal(t, 1, aoe.Update())
	assert.Equal(t, 0.0, power.power)
	assert.True(t, inside.Dying())
	assert.True(t, outside.Alive())
}
