package ws

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeCreated  EventType = "created"
	EventTypeUpdated  EventType = "updated"
	EventTypeDeleted  EventType = "deleted"
	EventTypeRecorded EventType = "recorded"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeTenantExpense EntityType = "tenant_expense"
	EntityTypePaidExpense   EntityType = "paid_expense"
)

// Event is a message pushed to the owner's connected clients.
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"` // Combined type e.g. "paid_expense.recorded"
	Entity    EntityType  `json:"entity"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PaymentRecorded creates a paid_expense.recorded event
func PaymentRecorded(payload interface{}) Event {
	return NewEvent(EventTypeRecorded, EntityTypePaidExpense, payload)
}

// PaymentDeleted creates a paid_expense.deleted event
func PaymentDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypePaidExpense, payload)
}

// TenantExpenseCreated creates a tenant_expense.created event
func TenantExpenseCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeTenantExpense, payload)
}

// TenantExpenseUpdated creates a tenant_expense.updated event
func TenantExpenseUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeTenantExpense, payload)
}
