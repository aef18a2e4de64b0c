package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"seatsync/internal/hold"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestClient builds a client with a buffered send channel and no
// underlying connection; tests read broadcast payloads straight from
// the channel instead of running the write pump.
func newTestClient(id string) *Client {
	return &Client{id: id, send: make(chan []byte, 16)}
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func registerClients(hub *Hub, clients ...*Client) {
	for _, c := range clients {
		hub.register <- c
	}
	// Give the run loop a moment to process registrations before any
	// broadcast competes for its select.
	time.Sleep(50 * time.Millisecond)
}

func recvEvent(t *testing.T, c *Client) map[string]any {
	t.Helper()
	select {
	case payload := <-c.send:
		var ev map[string]any
		require.NoError(t, json.Unmarshal(payload, &ev))
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return nil
	}
}

func assertNoEvent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case payload := <-c.send:
		t.Fatalf("unexpected broadcast: %s", payload)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubBroadcastsToAllObservers(t *testing.T) {
	hub := startHub(t)
	a := newTestClient("a")
	b := newTestClient("b")
	registerClients(hub, a, b)

	hub.SeatBlocked(5, "C12", 7)

	for _, c := range []*Client{a, b} {
		ev := recvEvent(t, c)
		assert.Equal(t, float64(5), ev["showId"])
		assert.Equal(t, "C12", ev["seat"])
		assert.Equal(t, float64(7), ev["userId"])
		assert.Equal(t, StatusBlocked, ev["status"])
	}
}

func TestHubAvailableEventHasNullUserID(t *testing.T) {
	hub := startHub(t)
	a := newTestClient("a")
	registerClients(hub, a)

	hub.SeatAvailable(5, "C12")

	ev := recvEvent(t, a)
	assert.Equal(t, StatusAvailable, ev["status"])
	userID, present := ev["userId"]
	assert.True(t, present)
	assert.Nil(t, userID)
}

func TestHubPreservesBroadcastOrder(t *testing.T) {
	hub := startHub(t)
	a := newTestClient("a")
	registerClients(hub, a)

	hub.SeatBlocked(5, "C12", 1)
	hub.SeatAvailable(5, "C12")
	hub.SeatBooked(5, "C12", 2)

	assert.Equal(t, StatusBlocked, recvEvent(t, a)["status"])
	assert.Equal(t, StatusAvailable, recvEvent(t, a)["status"])
	assert.Equal(t, StatusBooked, recvEvent(t, a)["status"])
}

func TestHubUnregisterStopsDelivery(t *testing.T) {
	hub := startHub(t)
	a := newTestClient("a")
	b := newTestClient("b")
	registerClients(hub, a, b)

	hub.unregister <- b
	time.Sleep(50 * time.Millisecond)

	hub.SeatBlocked(5, "C12", 1)

	ev := recvEvent(t, a)
	assert.Equal(t, StatusBlocked, ev["status"])

	// b's channel was closed on unregister; it receives nothing new.
	_, open := <-b.send
	assert.False(t, open)
}

// Holder A blocks a seat, everyone hears about it; holder B's attempt
// on the same seat changes nothing and stays silent. After A unblocks,
// B can take the seat.
func TestHoldReleaseRoundTripThroughHub(t *testing.T) {
	hub := startHub(t)
	a := newTestClient("a")
	b := newTestClient("b")
	registerClients(hub, a, b)

	registry := hold.NewRegistry(0, hub, zap.NewNop())

	require.True(t, registry.Hold(5, "C12", 1))
	for _, c := range []*Client{a, b} {
		ev := recvEvent(t, c)
		assert.Equal(t, StatusBlocked, ev["status"])
		assert.Equal(t, float64(1), ev["userId"])
	}

	require.False(t, registry.Hold(5, "C12", 2))
	assertNoEvent(t, a)
	assertNoEvent(t, b)

	require.True(t, registry.Release(5, "C12", 1))
	for _, c := range []*Client{a, b} {
		ev := recvEvent(t, c)
		assert.Equal(t, StatusAvailable, ev["status"])
		assert.Nil(t, ev["userId"])
	}

	require.True(t, registry.Hold(5, "C12", 2))
	ev := recvEvent(t, a)
	assert.Equal(t, float64(2), ev["userId"])
}
