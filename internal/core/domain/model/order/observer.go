package order

import "fmt"

// EventLevel indicates the severity of a lifecycle event.
type EventLevel int

const (
	// LevelInfo marks routine lifecycle notifications.
	LevelInfo EventLevel = iota
	// LevelWarn marks suspicious but permitted operations, such as
	// overwriting an existing ERP id.
	LevelWarn
	// LevelError marks failure notifications.
	LevelError
)

// Event is a lifecycle notification emitted by an Order. Events are
// observability concerns, not domain state: the failure reason of
// MarkAsFailed, for example, is reported here and never stored on the
// entity.
type Event struct {
	Level   EventLevel
	OrderID string
	Message string
}

// Observer receives lifecycle events from an Order. Callers that want
// transition logging attach one via Order.SetObserver; orders without an
// observer stay silent.
type Observer func(Event)

// SetObserver attaches the lifecycle observer. Passing nil detaches it.
func (o *Order) SetObserver(fn Observer) {
	o.observer = fn
}

// notify emits an event to the attached observer, if any.
func (o *Order) notify(level EventLevel, format string, args ...any) {
	if o.observer == nil {
		return
	}
	o.observer(Event{
		Level:   level,
		OrderID: o.id,
		Message: fmt.Sprintf(format, args...),
	})
}
