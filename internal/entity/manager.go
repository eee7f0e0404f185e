// internal/entity/manager.go
package entity

import (
	"errors"

	"capture-the-fly/internal/input"
	"capture-the-fly/internal/types"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
)

// Manager хранит сущности в порядке регистрации. Этот же порядок
// используется для ввода, обновления и отрисовки. Менеджер сам реализует
// все хуки, поэтому менеджеры можно вкладывать друг в друга.
type Manager struct {
	NextID   types.EntityID
	order    []types.EntityID
	entities map[types.EntityID]Entity

	iterating int
	removed   []types.EntityID
	cleaned   bool
}

func NewManager() *Manager {
	return &Manager{
		NextID:   1,
		entities: make(map[types.EntityID]Entity),
	}
}

func (m *Manager) newID() types.EntityID {
	id := m.NextID
	m.NextID++
	return id
}

// Create строит сущность, регистрирует её и сразу возвращает,
// чтобы вызывающий мог связать перекрёстные ссылки.
func Create[T Entity](m *Manager, factory func(id types.EntityID) T) T {
	id := m.newID()
	e := factory(id)
	m.order = append(m.order, id)
	m.entities[id] = e
	return e
}

// Add регистрирует готовую сущность.
func (m *Manager) Add(e Entity) types.EntityID {
	id := m.newID()
	m.order = append(m.order, id)
	m.entities[id] = e
	return id
}

// Remove снимает сущность с учёта. Во время прохода удалённая сущность
// больше не посещается, а порядок сжимается после окончания прохода.
func (m *Manager) Remove(id types.EntityID) {
	if _, ok := m.entities[id]; !ok {
		return
	}
	delete(m.entities, id)
	if m.iterating > 0 {
		m.removed = append(m.removed, id)
		return
	}
	m.compact()
}

func (m *Manager) compact() {
	kept := m.order[:0]
	for _, id := range m.order {
		if _, ok := m.entities[id]; ok {
			kept = append(kept, id)
		}
	}
	m.order = kept
	m.removed = m.removed[:0]
}

func (m *Manager) Get(id types.EntityID) (Entity, bool) {
	e, ok := m.entities[id]
	return e, ok
}

func (m *Manager) Len() int { return len(m.entities) }

func (m *Manager) each(fn func(e Entity)) {
	m.Each(func(_ types.EntityID, e Entity) { fn(e) })
}

// Each обходит сущности, зарегистрированные до начала прохода,
// в порядке регистрации.
func (m *Manager) Each(fn func(id types.EntityID, e Entity)) {
	m.iterating++
	n := len(m.order)
	for i := 0; i < n; i++ {
		id := m.order[i]
		if e, ok := m.entities[id]; ok {
			fn(id, e)
		}
	}
	m.iterating--
	if m.iterating == 0 && len(m.removed) > 0 {
		m.compact()
	}
}

// Rect — объединение прямоугольников всех сущностей.
func (m *Manager) Rect() geom.Rect {
	var out geom.Rect
	first := true
	m.each(func(e Entity) {
		r := e.Rect()
		if r.IsEmpty() {
			return
		}
		if first {
			out = r
			first = false
			return
		}
		out = geom.Rect{
			Left:   min(out.Left, r.Left),
			Top:    min(out.Top, r.Top),
			Right:  max(out.Right, r.Right),
			Bottom: max(out.Bottom, r.Bottom),
		}
	})
	return out
}

func (m *Manager) OnLoad() {
	m.each(func(e Entity) {
		if l, ok := e.(Loader); ok {
			l.OnLoad()
		}
	})
}

func (m *Manager) HandleInput(in *input.State) {
	m.each(func(e Entity) {
		if h, ok := e.(InputHandler); ok {
			h.HandleInput(in)
		}
	})
}

func (m *Manager) Update(dt float64) {
	m.each(func(e Entity) {
		if u, ok := e.(Updater); ok {
			u.Update(dt)
		}
	})
}

func (m *Manager) PostUpdate(dt float64) {
	m.each(func(e Entity) {
		if u, ok := e.(PostUpdater); ok {
			u.PostUpdate(dt)
		}
	})
}

func (m *Manager) Draw(c canvas.Canvas) {
	m.each(func(e Entity) {
		if d, ok := e.(Drawer); ok {
			d.Draw(c)
		}
	})
}

// OnSaveState собирает ошибки всех детей.
func (m *Manager) OnSaveState() error {
	var errs []error
	m.each(func(e Entity) {
		if s, ok := e.(Saver); ok {
			if err := s.OnSaveState(); err != nil {
				errs = append(errs, err)
			}
		}
	})
	return errors.Join(errs...)
}

// Clean освобождает ресурсы детей один раз. Повторный вызов ничего не делает.
func (m *Manager) Clean() {
	if m.cleaned {
		return
	}
	m.cleaned = true
	m.each(func(e Entity) {
		if c, ok := e.(Cleaner); ok {
			c.Clean()
		}
	})
	m.entities = make(map[types.EntityID]Entity)
	m.order = nil
	m.removed = nil
}

func (m *Manager) Cleaned() bool { return m.cleaned }
