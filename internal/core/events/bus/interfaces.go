package bus

import "time"

// EventBus is a synchronous in-process pub/sub bus used for registry
// lifecycle notifications.
//
// - Type-based fan-out: handlers subscribe by Event.Type().
// - Publish calls handlers in the caller goroutine, in subscription order.
// - Handler errors are joined and returned from Publish.
type EventBus interface {
	Publish(event Event) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. Nil is a no-op.
	Unsubscribe(Subscription) error
	// Subscribers counts active handlers for eventType.
	Subscribers(eventType string) int
}

// Event is an immutable message transported by the EventBus.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

type EventHandler func(event Event) error

// Subscription is a registered handler. Cancel is idempotent.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	Cancel() error
}
