package input

import "sync/atomic"

// Buffer хранит последний снимок ввода. Писатели (опрос ebiten, датчики)
// публикуют новые снимки, игровой цикл читает один снимок за кадр.
// Побеждает последний писатель, очереди нет.
type Buffer struct {
	current atomic.Pointer[State]
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	s := DefaultState()
	b.current.Store(&s)
	return b
}

// Snapshot возвращает копию текущего снимка.
func (b *Buffer) Snapshot() *State {
	s := b.current.Load().clone()
	return &s
}

// Publish заменяет снимок целиком.
func (b *Buffer) Publish(s State) {
	s = s.clone()
	b.current.Store(&s)
}

// Update меняет часть снимка: fn получает копию и правит её,
// затем копия атомарно подменяет текущий снимок.
func (b *Buffer) Update(fn func(s *State)) {
	for {
		old := b.current.Load()
		next := old.clone()
		fn(&next)
		if b.current.CompareAndSwap(old, &next) {
			return
		}
	}
}
