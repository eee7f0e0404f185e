// internal/loop/loop.go
package loop

import (
	"sync"
	"sync/atomic"
	"time"

	"capture-the-fly/internal/config"
	"capture-the-fly/internal/input"
	"capture-the-fly/pkg/canvas"
)

// Frame — то, что цикл крутит каждый кадр.
type Frame interface {
	HandleInput(in *input.State)
	Update(dt float64)
	PostUpdate(dt float64)
	Draw(c canvas.Canvas)
	Clean()
}

// Loop — игровой цикл в отдельной горутине. Кадр читает один снимок
// ввода и вызывает фазы строго по порядку.
type Loop struct {
	target Frame
	input  *input.Buffer
	canvas canvas.Canvas // nil — без отрисовки
	tick   time.Duration

	running  atomic.Bool
	frames   atomic.Uint64
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New создаёт цикл с частотой tps кадров в секунду. cv может быть nil.
func New(target Frame, buf *input.Buffer, cv canvas.Canvas, tps int) *Loop {
	if tps <= 0 {
		tps = config.TicksPerSec
	}
	return &Loop{
		target: target,
		input:  buf,
		canvas: cv,
		tick:   time.Second / time.Duration(tps),
	}
}

// Start запускает горутину цикла. Повторный запуск ничего не делает.
func (l *Loop) Start() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	l.wg.Add(1)
	go l.run()
}

func (l *Loop) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	last := time.Now()
	for range ticker.C {
		if !l.running.Load() {
			return
		}
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now
		l.Step(dt)
	}
}

// Step выполняет один кадр. Шаг ограничен MaxDeltaTime.
func (l *Loop) Step(dt float64) {
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	in := l.input.Snapshot()

	l.target.HandleInput(in)
	l.target.Update(dt)
	l.target.PostUpdate(dt)
	if l.canvas != nil {
		l.target.Draw(l.canvas)
	}
	l.frames.Add(1)
}

// Running — цикл запущен и не остановлен.
func (l *Loop) Running() bool { return l.running.Load() }

// Frames — сколько кадров выполнено.
func (l *Loop) Frames() uint64 { return l.frames.Load() }

// Stop дожидается конца текущего кадра и освобождает цель.
// Повторный вызов ничего не делает.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.running.Store(false)
		l.wg.Wait()
		l.target.Clean()
	})
}
