// internal/system/stun.go
package system

import (
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/event"
	"capture-the-fly/internal/input"
)

// Stunnable — то, что можно оглушить целиком.
type Stunnable interface {
	StunAll(on bool)
}

// StunSystem оглушает мух, если света мало дольше секунды.
// Возврат света снимает оглушение сразу.
type StunSystem struct {
	target          Stunnable
	eventDispatcher *event.Dispatcher

	luminosity float64
	lowLight   float64
	stunned    bool
}

func NewStunSystem(target Stunnable, eventDispatcher *event.Dispatcher) *StunSystem {
	return &StunSystem{
		target:          target,
		eventDispatcher: eventDispatcher,
		luminosity:      config.DefaultLuminosity,
	}
}

func (s *StunSystem) HandleInput(in *input.State) {
	s.luminosity = in.Luminosity
}

func (s *StunSystem) Update(deltaTime float64) {
	if s.luminosity < config.LowLuminosity {
		s.lowLight += deltaTime
	} else {
		s.lowLight = 0
	}

	switch {
	case s.lowLight >= config.TimeNeededToStun && !s.stunned:
		s.stunned = true
		s.target.StunAll(true)
		s.eventDispatcher.Publish(event.FliesStunned, nil)
	case s.lowLight < config.TimeNeededToStun && s.stunned:
		s.stunned = false
		s.target.StunAll(false)
		s.eventDispatcher.Publish(event.FliesRecovered, nil)
	}
}

func (s *StunSystem) Stunned() bool { return s.stunned }

func (s *StunSystem) Reset() {
	s.lowLight = 0
	if s.stunned {
		s.stunned = false
		s.target.StunAll(false)
	}
}
