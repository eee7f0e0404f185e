package event

import "log"

// LogListener пишет игровые события в стандартный лог.
type LogListener struct {
	Prefix string
}

// Subscribe подписывает слушателя на все события, которые стоит логировать.
func (l *LogListener) Subscribe(d *Dispatcher) {
	for _, t := range []EventType{
		WaveStarted, WaveCleared, FliesStunned, FliesRecovered,
		AreaBurst, PlayerDied, PlayerRespawned, LevelReset, LevelWon,
	} {
		d.Subscribe(t, l)
	}
}

func (l *LogListener) OnEvent(e Event) {
	switch data := e.Data.(type) {
	case WavePayload:
		log.Printf("%s%s: wave %d, %d flies", l.Prefix, e.Type, data.Number, data.Target)
	case nil:
		log.Printf("%s%s", l.Prefix, e.Type)
	default:
		log.Printf("%s%s: %v", l.Prefix, e.Type, data)
	}
}
