// internal/entity/entity.go
package entity

import (
	"capture-the-fly/internal/input"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
)

// Entity — всё, что живёт в менеджере. Остальные хуки опциональны,
// менеджер вызывает их только у тех, кто их реализует.
type Entity interface {
	Rect() geom.Rect
}

type InputHandler interface {
	HandleInput(in *input.State)
}

type Updater interface {
	Update(dt float64)
}

type PostUpdater interface {
	PostUpdate(dt float64)
}

type Drawer interface {
	Draw(c canvas.Canvas)
}

type Loader interface {
	OnLoad()
}

type Saver interface {
	OnSaveState() error
}

// Cleaner освобождает ресурсы (звук, изображения). Должен быть идемпотентным.
type Cleaner interface {
	Clean()
}
