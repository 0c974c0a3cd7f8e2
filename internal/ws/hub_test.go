package ws

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double implementing ClientInterface
type mockClient struct {
	id       string
	ownerID  int32
	mu       sync.Mutex
	messages [][]byte
	received chan struct{}
	sendErr  error
	closed   bool
}

func newMockClient(id string, ownerID int32) *mockClient {
	return &mockClient{
		id:       id,
		ownerID:  ownerID,
		received: make(chan struct{}, 16),
	}
}

func (m *mockClient) ID() string     { return m.id }
func (m *mockClient) OwnerID() int32 { return m.ownerID }

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.messages = append(m.messages, data)
	m.received <- struct{}{}
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) waitForMessage(t *testing.T) []byte {
	t.Helper()
	select {
	case <-m.received:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a broadcast message")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messages[len(m.messages)-1]
}

func (m *mockClient) messageCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()
	client := newMockClient("c1", 1)

	hub.Register(client)
	assert.Equal(t, 1, hub.ClientCount(1))

	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount(1))
}

func TestHub_UnregisterUnknownClient(t *testing.T) {
	hub := NewHub()

	assert.NotPanics(t, func() {
		hub.Unregister(newMockClient("ghost", 1))
	})
}

func TestHub_BroadcastReachesOwnersClients(t *testing.T) {
	hub := NewHub()
	c1 := newMockClient("c1", 1)
	c2 := newMockClient("c2", 1)
	other := newMockClient("c3", 2)
	hub.Register(c1)
	hub.Register(c2)
	hub.Register(other)

	hub.Broadcast(1, PaymentRecorded(map[string]int32{"id": 5}))

	msg1 := c1.waitForMessage(t)
	c2.waitForMessage(t)

	var event Event
	require.NoError(t, json.Unmarshal(msg1, &event))
	assert.Equal(t, "paid_expense.recorded", event.Type)
	assert.Equal(t, EntityTypePaidExpense, event.Entity)

	// No message should leak to another owner's client
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, other.messageCount())
}

func TestHub_BroadcastWithNoClients(t *testing.T) {
	hub := NewHub()

	assert.NotPanics(t, func() {
		hub.Broadcast(1, TenantExpenseCreated(nil))
	})
}

func TestHub_PublishImplementsEventPublisher(t *testing.T) {
	var publisher EventPublisher = NewHub()
	hub := publisher.(*Hub)

	client := newMockClient("c1", 1)
	hub.Register(client)

	publisher.Publish(1, TenantExpenseUpdated(map[string]int32{"id": 3}))

	msg := client.waitForMessage(t)
	var event Event
	require.NoError(t, json.Unmarshal(msg, &event))
	assert.Equal(t, "tenant_expense.updated", event.Type)
}

func TestHub_ConcurrentRegisterBroadcast(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			client := newMockClient("c"+string(rune('a'+n)), 1)
			hub.Register(client)
			hub.Unregister(client)
		}(i)
		go func() {
			defer wg.Done()
			hub.Broadcast(1, PaymentRecorded(nil))
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.ClientCount(1))
}
