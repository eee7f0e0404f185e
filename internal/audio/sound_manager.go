// internal/audio/sound_manager.go
package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"capture-the-fly/internal/event"
)

const sampleRate = beep.SampleRate(44100)

var ErrNotInitialized = errors.New("audio: sound manager is not initialized")

// SoundManager управляет звуком игры. Без Initialize все вызовы
// молча ничего не делают, поэтому игра работает и без звуковой карты.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ambience    *beep.Ctrl
	enabled     bool
	initialized bool
}

func NewSoundManager(enabled bool) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Initialize поднимает вывод звука. Повторный вызов ничего не делает.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup останавливает все звуки. Повторный вызов ничего не делает.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	if !sm.initialized {
		sm.mu.Unlock()
		return
	}
	if sm.ambience != nil {
		pause(sm.ambience)
		sm.ambience = nil
	}
	sm.initialized = false
	sm.mu.Unlock()

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
}

// PlayAmbience запускает зацикленный фон. Если фон уже играет, не перезапускает.
func (sm *SoundManager) PlayAmbience() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.ambience != nil && !sm.ambience.Paused {
		return nil
	}
	ctrl := &beep.Ctrl{Streamer: newAmbience(sampleRate)}
	sm.ambience = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
	return nil
}

// StopAmbience глушит фон.
func (sm *SoundManager) StopAmbience() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.ambience == nil {
		return
	}
	pause(sm.ambience)
	sm.ambience = nil
}

// pause ставит поток на паузу под замком динамика: микшер читает Paused
// из своей горутины.
func pause(ctrl *beep.Ctrl) {
	speaker.Lock()
	ctrl.Paused = true
	speaker.Unlock()
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) PlayStep() { sm.play(newStep(sampleRate)) }
func (sm *SoundManager) PlaySwat() { sm.play(newSwat(sampleRate)) }
func (sm *SoundManager) PlayHit()  { sm.play(newHit(sampleRate)) }

// Subscribe подписывает менеджер на игровые события со звуком.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{event.PlayerStep, event.FlyDied, event.PlayerHit, event.AreaBurst} {
		d.Subscribe(t, sm)
	}
}

// Unsubscribe снимает подписки, сделанные Subscribe.
func (sm *SoundManager) Unsubscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{event.PlayerStep, event.FlyDied, event.PlayerHit, event.AreaBurst} {
		d.Unsubscribe(t, sm)
	}
}

func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerStep:
		sm.PlayStep()
	case event.FlyDied, event.AreaBurst:
		sm.PlaySwat()
	case event.PlayerHit:
		sm.PlayHit()
	default:
		log.Printf("audio: unexpected event %s", e.Type)
	}
}
