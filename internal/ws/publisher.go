package ws

// EventPublisher defines the interface for publishing events to connected clients
type EventPublisher interface {
	// Publish sends an event to all clients connected for the given owner
	Publish(ownerID int32, event Event)
}

// Ensure Hub implements EventPublisher
var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting the event to the owner's clients
func (h *Hub) Publish(ownerID int32, event Event) {
	h.Broadcast(ownerID, event)
}

// NoOpPublisher is a publisher that does nothing (for testing or when WebSocket is disabled)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(ownerID int32, event Event) {}
