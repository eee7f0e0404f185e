// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий. Не потокобезопасен: подписка и
// рассылка происходят в игровом цикле.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	if d == nil {
		return
	}
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if d == nil {
		return
	}
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам.
// Подписчики вызываются синхронно в порядке подписки.
// Nil-диспетчер молча проглатывает события и подписки.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Publish — сокращение для Dispatch(Event{Type: t, Data: data}).
func (d *Dispatcher) Publish(t EventType, data any) {
	d.Dispatch(Event{Type: t, Data: data})
}
