package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func TestDispatchReachesSubscribersOfType(t *testing.T) {
	d := NewDispatcher()
	died := &recorder{}
	waves := &recorder{}
	d.Subscribe(FlyDied, died)
	d.Subscribe(WaveStarted, waves)

	d.Dispatch(Event{Type: FlyDied, Data: 3})
	d.Dispatch(Event{Type: WaveStarted, Data: WavePayload{Number: 1, Target: 7}})

	assert.Len(t, died.events, 1)
	assert.Equal(t, 3, died.events[0].Data)
	assert.Len(t, waves.events, 1)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PlayerDied, r)
	d.Unsubscribe(PlayerDied, r)

	d.Dispatch(Event{Type: PlayerDied})

	assert.Empty(t, r.events)
}

func TestLogListenerHandlesAllPayloads(t *testing.T) {
	d := NewDispatcher()
	(&LogListener{Prefix: "[test] "}).Subscribe(d)

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Type: WaveStarted, Data: WavePayload{Number: 2, Target: 9}})
		d.Dispatch(Event{Type: PlayerDied})
		d.Dispatch(Event{Type: AreaBurst, Data: 4})
	})
}
