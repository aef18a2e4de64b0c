package ws

import (
	"sync"
	"testing"

	"seatsync/internal/hold"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopNotifier struct {
	mu      sync.Mutex
	blocked int
	freed   int
}

func (n *nopNotifier) SeatBlocked(showID int64, seat string, userID int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.blocked++
}

func (n *nopNotifier) SeatAvailable(showID int64, seat string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.freed++
}

func newMessageClient(registry *hold.Registry) *Client {
	return &Client{id: "test", registry: registry, log: zap.NewNop()}
}

func TestHandleMessageBlockAction(t *testing.T) {
	notifier := &nopNotifier{}
	registry := hold.NewRegistry(0, notifier, zap.NewNop())
	client := newMessageClient(registry)

	client.handleMessage([]byte(`{"action":"block","showId":5,"seat":"C12","userId":3}`))

	holder, ok := registry.HeldBy(5, "C12")
	require.True(t, ok)
	assert.Equal(t, int64(3), holder)
	assert.Equal(t, 1, notifier.blocked)
}

func TestHandleMessageUnblockAction(t *testing.T) {
	notifier := &nopNotifier{}
	registry := hold.NewRegistry(0, notifier, zap.NewNop())
	client := newMessageClient(registry)

	require.True(t, registry.Hold(5, "C12", 3))

	client.handleMessage([]byte(`{"action":"unblock","showId":5,"seat":"C12","userId":3}`))

	_, ok := registry.HeldBy(5, "C12")
	assert.False(t, ok)
	assert.Equal(t, 1, notifier.freed)
}

func TestHandleMessageUnblockByNonOwnerIsNoOp(t *testing.T) {
	notifier := &nopNotifier{}
	registry := hold.NewRegistry(0, notifier, zap.NewNop())
	client := newMessageClient(registry)

	require.True(t, registry.Hold(5, "C12", 3))

	client.handleMessage([]byte(`{"action":"unblock","showId":5,"seat":"C12","userId":4}`))

	holder, ok := registry.HeldBy(5, "C12")
	require.True(t, ok)
	assert.Equal(t, int64(3), holder)
}

func TestHandleMessageMalformedPayloadIsDropped(t *testing.T) {
	notifier := &nopNotifier{}
	registry := hold.NewRegistry(0, notifier, zap.NewNop())
	client := newMessageClient(registry)

	client.handleMessage([]byte(`not json at all`))
	client.handleMessage([]byte(`{"action":"block"`))

	assert.Equal(t, 0, notifier.blocked)
}

func TestHandleMessageIncompletePayloadIsDropped(t *testing.T) {
	notifier := &nopNotifier{}
	registry := hold.NewRegistry(0, notifier, zap.NewNop())
	client := newMessageClient(registry)

	// Parseable but missing the seat and show.
	client.handleMessage([]byte(`{"action":"block","userId":3}`))

	assert.Equal(t, 0, notifier.blocked)
}

func TestHandleMessageUnknownActionIsDropped(t *testing.T) {
	notifier := &nopNotifier{}
	registry := hold.NewRegistry(0, notifier, zap.NewNop())
	client := newMessageClient(registry)

	client.handleMessage([]byte(`{"action":"reserve","showId":5,"seat":"C12","userId":3}`))

	assert.Equal(t, 0, notifier.blocked)
	_, ok := registry.HeldBy(5, "C12")
	assert.False(t, ok)
}
