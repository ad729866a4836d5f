// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Data interface{} // данные события, если нужны
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет использовать обычную функцию как Listener
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher - синхронный диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe - отписка от события. Функции-слушатели сравнивать нельзя,
// поэтому отписать можно только слушателя сравнимого типа.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if _, ok := listener.(ListenerFunc); ok {
		return
	}
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if _, ok := l.(ListenerFunc); ok {
			continue
		}
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch - отправка события всем подписчикам в порядке подписки
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
