package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"seatsync/internal/data/entity"
	"seatsync/internal/data/repository"
	"seatsync/internal/dto/request"
	"seatsync/internal/hold"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type seatKey struct {
	showID int64
	seat   string
}

// fakeStore stands in for the durable store. It honours the same
// contract as the pgx repositories: all-or-nothing commits, a
// uniqueness check per (show, seat), and not-found on cancelling
// anything that is not a confirmed booking.
type fakeStore struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
	seats    map[seatKey]uuid.UUID
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookings: make(map[uuid.UUID]*entity.Booking),
		seats:    make(map[seatKey]uuid.UUID),
	}
}

func (f *fakeStore) CreateWithSeats(ctx context.Context, booking *entity.Booking, seats []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return f.failWith
	}

	for _, seat := range seats {
		if _, taken := f.seats[seatKey{booking.ShowID, seat}]; taken {
			return fmt.Errorf("seat %s on show %d: %w", seat, booking.ShowID, repository.ErrSeatConflict)
		}
	}

	copied := *booking
	f.bookings[booking.ID] = &copied
	for _, seat := range seats {
		f.seats[seatKey{booking.ShowID, seat}] = booking.ID
	}
	return nil
}

func (f *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeStore) CancelWithSeats(ctx context.Context, id uuid.UUID) (int64, []string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking, ok := f.bookings[id]
	if !ok || booking.Status != entity.BookingStatusConfirmed {
		return 0, nil, fmt.Errorf("booking %s: %w", id.String(), repository.ErrNotFound)
	}

	booking.Status = entity.BookingStatusCancelled

	var freed []string
	for k, owner := range f.seats {
		if owner == id {
			freed = append(freed, k.seat)
			delete(f.seats, k)
		}
	}
	sort.Strings(freed)
	return booking.ShowID, freed, nil
}

func (f *fakeStore) ListByShow(ctx context.Context, showID int64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var seats []string
	for k := range f.seats {
		if k.showID == showID {
			seats = append(seats, k.seat)
		}
	}
	sort.Strings(seats)
	return seats, nil
}

type recordedEvent struct {
	showID int64
	seat   string
	userID int64
	status string
}

// recordingNotifier satisfies both hold.Notifier and SeatNotifier.
type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (n *recordingNotifier) SeatBlocked(showID int64, seat string, userID int64) {
	n.record(recordedEvent{showID, seat, userID, "blocked"})
}

func (n *recordingNotifier) SeatAvailable(showID int64, seat string) {
	n.record(recordedEvent{showID: showID, seat: seat, status: "available"})
}

func (n *recordingNotifier) SeatBooked(showID int64, seat string, userID int64) {
	n.record(recordedEvent{showID, seat, userID, "booked"})
}

func (n *recordingNotifier) record(ev recordedEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) byStatus(status string) []recordedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []recordedEvent
	for _, ev := range n.events {
		if ev.status == status {
			out = append(out, ev)
		}
	}
	return out
}

func newTestBookingService(store *fakeStore) (BookingService, *hold.Registry, *recordingNotifier) {
	notifier := &recordingNotifier{}
	registry := hold.NewRegistry(0, notifier, zap.NewNop())
	repo := &repository.Repository{Booking: store, BookedSeat: store}
	service := NewBookingService(repo, registry, notifier, zap.NewNop())
	return service, registry, notifier
}

func TestCreateBookingCommitsSeatsAndClearsHolds(t *testing.T) {
	store := newFakeStore()
	service, registry, notifier := newTestBookingService(store)

	require.True(t, registry.Hold(5, "C12", 7))
	require.True(t, registry.Hold(5, "C13", 7))

	resp, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		UserID: 7,
		ShowID: 5,
		Seats:  []string{"C12", "C13"},
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(resp.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)

	availability, err := service.GetBookedSeats(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"C12", "C13"}, availability.BookedSeats)

	// Holds are gone once the commit lands.
	_, held := registry.HeldBy(5, "C12")
	assert.False(t, held)
	_, held = registry.HeldBy(5, "C13")
	assert.False(t, held)

	booked := notifier.byStatus("booked")
	require.Len(t, booked, 2)
	assert.Equal(t, int64(7), booked[0].userID)
}

func TestCreateBookingRejectsEmptySeatList(t *testing.T) {
	store := newFakeStore()
	service, _, notifier := newTestBookingService(store)

	_, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		UserID: 7,
		ShowID: 5,
		Seats:  []string{},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, store.seats)
	assert.Empty(t, notifier.byStatus("booked"))
}

func TestCreateBookingConflictOnBookedSeat(t *testing.T) {
	store := newFakeStore()
	service, _, notifier := newTestBookingService(store)

	_, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		UserID: 7,
		ShowID: 5,
		Seats:  []string{"C12", "C13"},
	})
	require.NoError(t, err)

	// A second commit for the same seats by another user fails whole.
	_, err = service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		UserID: 8,
		ShowID: 5,
		Seats:  []string{"C13", "C14"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrSeatConflict)

	availability, err := service.GetBookedSeats(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"C12", "C13"}, availability.BookedSeats)

	assert.Len(t, notifier.byStatus("booked"), 2)
}

func TestCreateBookingRefusedWhenSeatHeldByAnotherUser(t *testing.T) {
	store := newFakeStore()
	service, registry, notifier := newTestBookingService(store)

	require.True(t, registry.Hold(5, "C12", 2))

	_, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		UserID: 1,
		ShowID: 5,
		Seats:  []string{"C12"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrSeatConflict)

	// Store untouched, the other user's hold survives.
	assert.Empty(t, store.seats)
	holder, ok := registry.HeldBy(5, "C12")
	require.True(t, ok)
	assert.Equal(t, int64(2), holder)
	assert.Empty(t, notifier.byStatus("booked"))
}

func TestCreateBookingOwnHoldIsAccepted(t *testing.T) {
	store := newFakeStore()
	service, registry, _ := newTestBookingService(store)

	require.True(t, registry.Hold(5, "C12", 7))

	_, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		UserID: 7,
		ShowID: 5,
		Seats:  []string{"C12"},
	})
	assert.NoError(t, err)
}

func TestCreateBookingStoreFailureLeavesHoldsIntact(t *testing.T) {
	store := newFakeStore()
	service, registry, notifier := newTestBookingService(store)

	require.True(t, registry.Hold(5, "C12", 7))
	store.failWith = errors.New("connection reset")

	_, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		UserID: 7,
		ShowID: 5,
		Seats:  []string{"C12"},
	})
	require.Error(t, err)

	// The failed commit must not clear the hold or announce anything.
	holder, ok := registry.HeldBy(5, "C12")
	require.True(t, ok)
	assert.Equal(t, int64(7), holder)
	assert.Empty(t, notifier.byStatus("booked"))
}

func TestCancelBookingFreesSeats(t *testing.T) {
	store := newFakeStore()
	service, _, notifier := newTestBookingService(store)

	resp, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		UserID: 7,
		ShowID: 5,
		Seats:  []string{"C12", "C13"},
	})
	require.NoError(t, err)

	cancel, err := service.CancelBooking(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, cancel.FreedSeats)

	availability, err := service.GetBookedSeats(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, availability.BookedSeats)

	available := notifier.byStatus("available")
	require.Len(t, available, 2)
	seats := []string{available[0].seat, available[1].seat}
	assert.ElementsMatch(t, []string{"C12", "C13"}, seats)
}

func TestCancelBookingTwiceReportsNotFound(t *testing.T) {
	store := newFakeStore()
	service, _, _ := newTestBookingService(store)

	resp, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		UserID: 7,
		ShowID: 5,
		Seats:  []string{"C12"},
	})
	require.NoError(t, err)

	_, err = service.CancelBooking(context.Background(), resp.ID)
	require.NoError(t, err)

	_, err = service.CancelBooking(context.Background(), resp.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCancelBookingUnknownIDReportsNotFound(t *testing.T) {
	store := newFakeStore()
	service, _, _ := newTestBookingService(store)

	_, err := service.CancelBooking(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCancelBookingRejectsMalformedID(t *testing.T) {
	store := newFakeStore()
	service, _, _ := newTestBookingService(store)

	_, err := service.CancelBooking(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestSeatsFreedByCancelCanBeRebooked(t *testing.T) {
	store := newFakeStore()
	service, _, _ := newTestBookingService(store)

	resp, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		UserID: 7,
		ShowID: 5,
		Seats:  []string{"C12"},
	})
	require.NoError(t, err)

	_, err = service.CancelBooking(context.Background(), resp.ID)
	require.NoError(t, err)

	_, err = service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		UserID: 8,
		ShowID: 5,
		Seats:  []string{"C12"},
	})
	assert.NoError(t, err)
}
