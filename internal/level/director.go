// internal/level/director.go
package level

import (
	"log"

	"capture-the-fly/internal/input"
	"capture-the-fly/pkg/canvas"
)

// Director держит активный уровень и переключает уровни по запросу.
// Переход откладывается до конца PostUpdate, чтобы кадр старого уровня
// доигрывался целиком.
type Director struct {
	deps    Deps
	current Level
	next    string

	// OnSwitch вызывается после загрузки нового уровня. Может быть nil.
	OnSwitch func(l Level)
}

// NewDirector загружает стартовый уровень. Поле Transition в deps
// заменяется на запрос к директору.
func NewDirector(deps Deps, start string) (*Director, error) {
	d := &Director{}
	deps.Transition = d.Request
	d.deps = deps

	l, err := New(start, deps)
	if err != nil {
		return nil, err
	}
	d.enter(l)
	return d, nil
}

// Request запоминает, куда перейти после текущего кадра.
func (d *Director) Request(name string) {
	d.next = name
}

func (d *Director) Current() Level { return d.current }

func (d *Director) HandleInput(in *input.State) { d.current.HandleInput(in) }

func (d *Director) Update(dt float64) { d.current.Update(dt) }

func (d *Director) PostUpdate(dt float64) {
	d.current.PostUpdate(dt)
	if d.next == "" {
		return
	}
	name := d.next
	d.next = ""

	l, err := New(name, d.deps)
	if err != nil {
		log.Printf("Не удалось перейти на уровень %s: %v", name, err)
		return
	}
	if err := d.current.OnSaveState(); err != nil {
		log.Printf("Уровень %s: ошибка сохранения: %v", d.current.Name(), err)
	}
	d.current.Clean()
	d.enter(l)
}

func (d *Director) enter(l Level) {
	d.current = l
	l.OnLoad()

	if p := d.deps.Prefs; p != nil {
		p.CurrentLevel = l.Name()
		if err := p.Save(); err != nil {
			log.Printf("Не удалось сохранить настройки: %v", err)
		}
	}
	if d.OnSwitch != nil {
		d.OnSwitch(l)
	}
}

func (d *Director) Draw(c canvas.Canvas) { d.current.Draw(c) }

// Clean выгружает активный уровень.
func (d *Director) Clean() { d.current.Clean() }
