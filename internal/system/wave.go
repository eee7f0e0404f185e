// internal/system/wave.go
package system

import (
	"log"

	"capture-the-fly/internal/actor"
	"capture-the-fly/internal/component"
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/defs"
	"capture-the-fly/internal/entity"
	"capture-the-fly/internal/event"
	"capture-the-fly/internal/types"
	"capture-the-fly/internal/utils"
	"capture-the-fly/pkg/tiledmap"
)

// WaveSystem выпускает мух волнами и считает, сколько их осталось.
// Мухи живут в менеджере уровня, система держит список живых.
type WaveSystem struct {
	manager         *entity.Manager
	tilemap         *tiledmap.TiledMap
	target          actor.PositionSource
	prng            *utils.PRNGService
	eventDispatcher *event.Dispatcher

	Wave       *component.Wave
	WavesToWin int // 0 — бесконечно

	flies      []*actor.Fly
	stunned    bool
	launchNext bool
	won        bool
}

func NewWaveSystem(manager *entity.Manager, tm *tiledmap.TiledMap, target actor.PositionSource, prng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		manager:         manager,
		tilemap:         tm,
		target:          target,
		prng:            prng,
		eventDispatcher: eventDispatcher,
		WavesToWin:      config.WavesToWin,
	}
}

// Living — мухи текущей волны, которые ещё не убраны из менеджера.
func (s *WaveSystem) Living() []*actor.Fly {
	return s.flies
}

// StartWave очищает список мух и запускает волну с номером n.
func (s *WaveSystem) StartWave(n int) *component.Wave {
	s.clearFlies()
	def := defs.WaveFor(n)
	s.Wave = &component.Wave{
		Number:        def.Number,
		Target:        def.Count,
		Remaining:     def.Count,
		SpawnInterval: def.SpawnInterval,
	}
	s.launchNext = false
	log.Printf("Волна %d: %d мух, интервал %.2f с", def.Number, def.Count, def.SpawnInterval)
	s.eventDispatcher.Publish(event.WaveStarted, event.WavePayload{Number: def.Number, Target: def.Count})
	return s.Wave
}

// Reset возвращает систему к первой волне.
func (s *WaveSystem) Reset() {
	s.won = false
	s.StartWave(1)
}

func (s *WaveSystem) clearFlies() {
	for _, f := range s.flies {
		s.manager.Remove(f.ID)
	}
	s.flies = nil
}

// Update копит таймер спавна и выпускает муху, когда пора. Затем
// убирает мух, доигравших анимацию смерти.
func (s *WaveSystem) Update(deltaTime float64) {
	w := s.Wave
	if w == nil || s.won {
		return
	}
	w.SpawnTimer += deltaTime
	if w.CanSpawn(len(s.flies)) {
		s.spawnFly()
		w.Spawned++
		w.SpawnTimer = 0
	}
	s.reap()
}

func (s *WaveSystem) spawnFly() {
	pos := s.prng.PointIn(s.tilemap.Rect(), config.FlySize)
	fly := entity.Create(s.manager, func(id types.EntityID) *actor.Fly {
		return actor.NewFly(id, pos.X, pos.Y, s.tilemap.TileSize(), s.target, s)
	})
	if s.stunned {
		fly.Stun(true)
	}
	s.flies = append(s.flies, fly)
	s.eventDispatcher.Publish(event.FlySpawned, fly.ID)
}

func (s *WaveSystem) reap() {
	kept := s.flies[:0]
	for _, f := range s.flies {
		if !f.ConsumeDeath() {
			kept = append(kept, f)
			continue
		}
		s.manager.Remove(f.ID)
		s.Wave.Remaining--
		s.eventDispatcher.Publish(event.FlyDied, f.ID)
		if s.Wave.Cleared() {
			s.launchNext = true
			s.eventDispatcher.Publish(event.WaveCleared, event.WavePayload{Number: s.Wave.Number, Target: s.Wave.Target})
		}
	}
	clear(s.flies[len(kept):])
	s.flies = kept
}

// PostUpdate запускает следующую волну, если текущая пройдена.
// Вызывается после всех проходов кадра.
func (s *WaveSystem) PostUpdate() {
	if !s.launchNext {
		return
	}
	s.launchNext = false
	if s.WavesToWin > 0 && s.Wave.Number >= s.WavesToWin {
		s.won = true
		s.clearFlies()
		s.eventDispatcher.Publish(event.LevelWon, s.Wave.Number)
		return
	}
	s.StartWave(s.Wave.Number + 1)
}

// Won — пройдены все волны уровня.
func (s *WaveSystem) Won() bool { return s.won }

// StunAll оглушает или отпускает всех мух. Новые мухи наследуют состояние.
func (s *WaveSystem) StunAll(on bool) {
	s.stunned = on
	for _, f := range s.flies {
		f.Stun(on)
	}
}
