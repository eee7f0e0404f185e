// internal/level/level.go
package level

import (
	"log"

	"capture-the-fly/internal/actor"
	"capture-the-fly/internal/assets"
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/entity"
	"capture-the-fly/internal/event"
	"capture-the-fly/internal/input"
	"capture-the-fly/internal/prefs"
	"capture-the-fly/internal/types"
	"capture-the-fly/internal/ui"
	"capture-the-fly/internal/utils"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
	"capture-the-fly/pkg/tiledmap"
)

// TransitionFunc просит внешний код перейти на уровень name.
type TransitionFunc func(name string)

// Sounds — фоновый звук, которым владеет уровень.
type Sounds interface {
	PlayAmbience() error
	StopAmbience()
}

// Level — активный уровень, который крутит игровой цикл.
type Level interface {
	entity.Entity
	entity.InputHandler
	entity.Updater
	entity.PostUpdater
	entity.Drawer
	entity.Loader
	entity.Saver
	entity.Cleaner
	Name() string
}

// Deps — общие зависимости уровней. Sounds и Transition могут быть nil.
type Deps struct {
	Screen     geom.Rect
	Maps       *assets.MapManager
	Prefs      *prefs.Preferences
	Sounds     Sounds
	Events     *event.Dispatcher
	PRNG       *utils.PRNGService
	ShowFPS    bool
	Transition TransitionFunc
}

// base — общая часть уровней: карта, HUD, игрок и камера.
// Порядок регистрации: HUD, игрок, камера, затем мухи.
type base struct {
	*entity.Manager
	name    string
	deps    Deps
	tilemap *tiledmap.TiledMap
	hud     *ui.HUD
	player  *actor.Player
	camera  *actor.Camera
	cleaned bool
}

func newBase(name string, deps Deps, tilesAcross float64, power, health func(p *actor.Player) float64) (*base, error) {
	tm, err := deps.Maps.Load(name)
	if err != nil {
		return nil, err
	}
	b := &base{Manager: entity.NewManager(), name: name, deps: deps, tilemap: tm}

	b.hud = entity.Create(b.Manager, func(types.EntityID) *ui.HUD {
		return ui.NewHUD(deps.Screen,
			ui.GaugeFunc(func() float64 { return power(b.player) }),
			ui.GaugeFunc(func() float64 { return health(b.player) }),
			deps.ShowFPS)
	})
	b.player = entity.Create(b.Manager, func(id types.EntityID) *actor.Player {
		return actor.NewPlayer(id, tm, b.hud.Joystick, deps.Events)
	})
	b.camera = entity.Create(b.Manager, func(types.EntityID) *actor.Camera {
		return actor.NewTrackingCamera(deps.Screen, tm.TileSize(), tilesAcross, b.player)
	})

	deps.Events.Subscribe(event.WaveStarted, b.hud.Banner)
	deps.Events.Subscribe(event.LevelWon, b.hud.Banner)
	return b, nil
}

func (b *base) Name() string { return b.name }

func (b *base) Rect() geom.Rect { return b.tilemap.Rect() }

// OnLoad запускает фоновый звук. Ошибка звука не мешает игре.
func (b *base) OnLoad() {
	b.Manager.OnLoad()
	if b.deps.Sounds != nil {
		if err := b.deps.Sounds.PlayAmbience(); err != nil {
			log.Printf("Уровень %s: фоновый звук недоступен: %v", b.name, err)
		}
	}
	log.Printf("Уровень %s загружен", b.name)
}

// OnSaveState пока ничего не сохраняет.
func (b *base) OnSaveState() error {
	log.Printf("Уровень %s: сохранение состояния не поддерживается", b.name)
	return b.Manager.OnSaveState()
}

// Clean освобождает звук и отписывается от событий. Повторный вызов ничего не делает.
func (b *base) Clean() {
	if b.cleaned {
		return
	}
	b.cleaned = true
	b.deps.Events.Unsubscribe(event.WaveStarted, b.hud.Banner)
	b.deps.Events.Unsubscribe(event.LevelWon, b.hud.Banner)
	b.Manager.Clean()
	if b.deps.Sounds != nil {
		b.deps.Sounds.StopAmbience()
	}
	log.Printf("Уровень %s выгружен", b.name)
}

func (b *base) transition(name string) {
	log.Printf("Переход %s -> %s", b.name, name)
	if b.deps.Transition != nil {
		b.deps.Transition(name)
	}
}

// drawFrame рисует фон, видимые чанки карты и мир через камеру,
// затем HUD в экранных координатах.
func (b *base) drawFrame(c canvas.Canvas, world func(c canvas.Canvas)) {
	c.FillRect(b.deps.Screen, config.BackgroundColor)

	c.Save()
	b.camera.Apply(c)
	c.Save()
	c.Clip(b.tilemap.Rect())
	c.FillRect(b.tilemap.Rect(), config.MapClipColor)
	c.Restore()

	view := b.camera.GameRect()
	for _, chunk := range b.tilemap.Chunks() {
		if chunk.Bounds.Intersects(view) {
			c.DrawTileChunk(chunk)
		}
	}
	world(c)
	c.Restore()

	b.hud.Draw(c)
}

// HandleInput по умолчанию просто раздаёт ввод сущностям.
func (b *base) HandleInput(in *input.State) {
	b.Manager.HandleInput(in)
}
