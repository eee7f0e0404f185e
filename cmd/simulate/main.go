// cmd/simulate/main.go
//
// Прогон игры без окна: цикл в горутине, ввод пишет сценарий датчиков.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"capture-the-fly/internal/assets"
	"capture-the-fly/internal/component"
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/event"
	"capture-the-fly/internal/input"
	"capture-the-fly/internal/level"
	"capture-the-fly/internal/loop"
	"capture-the-fly/internal/prefs"
	"capture-the-fly/internal/utils"
	"capture-the-fly/pkg/geom"
)

// stats считает события. Пишется только из горутины цикла,
// читается после Stop.
type stats struct {
	maxWave     int
	fliesKilled int
	deaths      int
	bursts      int
	resets      int
	wins        int
}

func (s *stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if p, ok := e.Data.(event.WavePayload); ok && p.Number > s.maxWave {
			s.maxWave = p.Number
		}
	case event.FlyDied:
		s.fliesKilled++
	case event.PlayerDied:
		s.deaths++
	case event.AreaBurst:
		s.bursts++
	case event.LevelReset:
		s.resets++
	case event.LevelWon:
		s.wins++
	}
}

func (s *stats) subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.WaveStarted, event.FlyDied, event.PlayerDied,
		event.AreaBurst, event.LevelReset, event.LevelWon,
	} {
		d.Subscribe(t, s)
	}
}

var directions = []component.Movement{component.None, component.Left, component.Right, component.Up, component.Down}

// script раз в четверть секунды меняет направление и кнопки,
// иногда гасит свет или трясёт устройство.
func script(buf *input.Buffer, prng *utils.PRNGService, reference geom.Vector3f, done <-chan struct{}) {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	dark := 0
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		if dark == 0 && prng.Float64() < 0.05 {
			dark = 6
		}
		buf.Update(func(s *input.State) {
			s.KeyHorizontal = directions[prng.Intn(len(directions))]
			s.KeyVertical = directions[prng.Intn(len(directions))]
			s.KeyA = prng.Float64() < 0.4
			s.Luminosity = config.DefaultLuminosity
			if dark > 0 {
				s.Luminosity = 0
			}
			s.Acceleration = geom.Vector3f{Z: config.StandardGravity}
			if prng.Float64() < 0.03 {
				s.Acceleration = reference
			}
		})
		if dark > 0 {
			dark--
		}
	}
}

func main() {
	configPath := flag.String("config", "", "path to settings file (default ./ctf.yaml)")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	(&event.LogListener{Prefix: "[sim] "}).Subscribe(dispatcher)
	st := &stats{}
	st.subscribe(dispatcher)

	// Настройки игрока не трогаем: прогон живёт в памяти.
	p := &prefs.Preferences{}
	deps := level.Deps{
		Screen: geom.NewRect(0, 0, float64(settings.ScreenWidth), float64(settings.ScreenHeight)),
		Maps:   assets.NewMapManager(settings.MapDir),
		Prefs:  p,
		Events: dispatcher,
		PRNG:   utils.NewPRNGService(settings.Seed),
	}
	director, err := level.NewDirector(deps, settings.StartLevel)
	if err != nil {
		log.Fatal(err)
	}

	buf := input.NewBuffer()
	gameLoop := loop.New(director, buf, nil, settings.TicksPerSecond)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		script(buf, utils.NewPRNGService(settings.Seed+1), p.AccelerationReference(), done)
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	started := time.Now()
	gameLoop.Start()
	select {
	case <-time.After(settings.SimulateFor):
	case <-interrupt:
		log.Println("Прервано")
	}
	close(done)
	wg.Wait()
	gameLoop.Stop()

	fmt.Printf("Прогон: %s, кадров %d, уровень %s\n", time.Since(started).Round(time.Millisecond), gameLoop.Frames(), director.Current().Name())
	fmt.Printf("Волна: %d, мух убито: %d, смертей: %d, встрясок: %d, перезапусков: %d, побед: %d\n",
		st.maxWave, st.fliesKilled, st.deaths, st.bursts, st.resets, st.wins)
}
