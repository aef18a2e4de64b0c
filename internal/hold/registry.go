// Package hold implements the in-memory seat hold table. A hold is a
// temporary, non-durable claim on a (show, seat) pair owned by exactly
// one user; it lives until released by its owner, cleared by a booking
// commit, or reaped after the configured TTL.
package hold

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Notifier receives every accepted hold transition for fan-out to
// connected observers. Calls happen inside the registry's critical
// section, so delivery order matches acceptance order.
type Notifier interface {
	SeatBlocked(showID int64, seat string, userID int64)
	SeatAvailable(showID int64, seat string)
}

type key struct {
	showID int64
	seat   string
}

type entry struct {
	userID int64
	heldAt time.Time
}

// Registry is the process-wide hold table. Construct one at startup
// and hand it to every component that needs it.
type Registry struct {
	mu       sync.Mutex
	holds    map[key]entry
	ttl      time.Duration
	notifier Notifier
	log      *zap.Logger
}

// NewRegistry creates an empty registry. A ttl of zero disables expiry.
func NewRegistry(ttl time.Duration, notifier Notifier, log *zap.Logger) *Registry {
	return &Registry{
		holds:    make(map[key]entry),
		ttl:      ttl,
		notifier: notifier,
		log:      log.With(zap.String("component", "hold_registry")),
	}
}

// Hold attempts to claim a seat for userID. It succeeds when the seat
// is free, its previous hold has expired, or userID already owns it
// (re-holding refreshes the TTL). Exactly one of any set of concurrent
// callers can take a free seat. A rejected request has no effect and
// produces no event; the requester gets no reply either, clients learn
// the seat is taken from the winner's broadcast.
func (r *Registry) Hold(showID int64, seat string, userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{showID: showID, seat: seat}
	if e, ok := r.holds[k]; ok && !r.expired(e) && e.userID != userID {
		return false
	}

	r.holds[k] = entry{userID: userID, heldAt: time.Now()}
	r.notifier.SeatBlocked(showID, seat, userID)
	return true
}

// Release removes the hold if userID owns it; otherwise it is a no-op.
func (r *Registry) Release(showID int64, seat string, userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{showID: showID, seat: seat}
	e, ok := r.holds[k]
	if !ok || r.expired(e) || e.userID != userID {
		return false
	}

	delete(r.holds, k)
	r.notifier.SeatAvailable(showID, seat)
	return true
}

// Clear unconditionally removes any holds for the given seats,
// regardless of owner. The commit path calls this after a booking
// persists; it announces nothing because the caller broadcasts the
// booked state itself.
func (r *Registry) Clear(showID int64, seats []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, seat := range seats {
		delete(r.holds, key{showID: showID, seat: seat})
	}
}

// HeldBy reports the current owner of a seat hold. Expired holds read
// as absent.
func (r *Registry) HeldBy(showID int64, seat string) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.holds[key{showID: showID, seat: seat}]
	if !ok || r.expired(e) {
		return 0, false
	}
	return e.userID, true
}

// Sweep reaps every expired hold and announces the seats as available
// again. Returns the number of holds removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	reaped := 0
	for k, e := range r.holds {
		if r.expired(e) {
			delete(r.holds, k)
			r.notifier.SeatAvailable(k.showID, k.seat)
			reaped++
		}
	}

	if reaped > 0 {
		r.log.Info("Expired holds reaped", zap.Int("count", reaped))
	}
	return reaped
}

// StartSweeper runs Sweep on the given interval until ctx is done.
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Sweep()
			}
		}
	}()
}

func (r *Registry) expired(e entry) bool {
	return r.ttl > 0 && time.Since(e.heldAt) > r.ttl
}
