package interfaces

// EventPublisher delivers domain events to whoever is listening.
// A failed Publish never rolls back the state change that produced the event.
type EventPublisher interface {
	Publish(topic string, event any) error
}
