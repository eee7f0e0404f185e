// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"capture-the-fly/internal/assets"
	"capture-the-fly/internal/audio"
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/event"
	"capture-the-fly/internal/input"
	"capture-the-fly/internal/level"
	"capture-the-fly/internal/prefs"
	"capture-the-fly/internal/state"
	"capture-the-fly/internal/utils"
	"capture-the-fly/pkg/geom"
	"capture-the-fly/pkg/render"
)

// Размер тайла в текстуре тайлсета, на экране он масштабируется камерой.
const tileTextureSize = 16

type AppGame struct {
	stateMachine   *state.StateMachine
	input          *input.Buffer
	poller         *poller
	prefs          *prefs.Preferences
	canvas         *render.EbitenCanvas
	director       *level.Director
	debug          bool
	width, height  int
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	a.poller.poll(a.input)

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.prefs.Calibrate(a.input.Snapshot())
		if err := a.prefs.Save(); err != nil {
			log.Printf("Калибровка не сохранена: %v", err)
		} else {
			log.Println("Датчики откалиброваны")
		}
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.canvas.Reset(screen)
	a.stateMachine.Draw(a.canvas)

	if a.debug {
		// Debug text
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  TPS: %0.1f", a.director.Current().Name(), ebiten.ActualTPS()))
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to settings file (default ./ctf.yaml)")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	p, err := prefs.Load(settings.PrefsPath)
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	(&event.LogListener{}).Subscribe(dispatcher)

	sounds := audio.NewSoundManager(settings.AudioEnabled)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Звук отключён: %v", err)
	}
	defer sounds.Cleanup()
	sounds.Subscribe(dispatcher)

	deps := level.Deps{
		Screen:  geom.NewRect(0, 0, float64(settings.ScreenWidth), float64(settings.ScreenHeight)),
		Maps:    assets.NewMapManager(settings.MapDir),
		Prefs:   p,
		Sounds:  sounds,
		Events:  dispatcher,
		PRNG:    utils.NewPRNGService(settings.Seed),
		ShowFPS: settings.ShowFPS,
	}
	director, err := level.NewDirector(deps, settings.StartLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer director.Clean()

	buf := input.NewBuffer()
	sm := state.NewStateMachine()
	gs := state.NewGameState(sm, director, buf)
	gs.PauseRequested = pausePressed
	gs.ResumeRequested = pausePressed
	sm.SetState(gs)

	app := &AppGame{
		stateMachine:   sm,
		input:          buf,
		poller:         &poller{prefs: p},
		prefs:          p,
		canvas:         render.NewEbitenCanvas(render.NewTileset(tileTextureSize, config.TileColors)),
		director:       director,
		debug:          settings.ShowFPS,
		width:          settings.ScreenWidth,
		height:         settings.ScreenHeight,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle("Capture the Fly")
	ebiten.SetTPS(settings.TicksPerSecond)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
