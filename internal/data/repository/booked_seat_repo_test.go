package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// seatRows is a pgx.Rows that yields the given seat labels and then
// reports rowsErr from Err(), the shape of a connection dropped while
// streaming a result set.
type seatRows struct {
	seats   []string
	idx     int
	rowsErr error
}

func (r *seatRows) Close()                                       {}
func (r *seatRows) Err() error                                   { return r.rowsErr }
func (r *seatRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *seatRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *seatRows) Values() ([]any, error)                       { return nil, nil }
func (r *seatRows) RawValues() [][]byte                          { return nil }
func (r *seatRows) Conn() *pgx.Conn                              { return nil }

func (r *seatRows) Next() bool {
	if r.idx >= len(r.seats) {
		return false
	}
	r.idx++
	return true
}

func (r *seatRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.seats[r.idx-1]
	return nil
}

type fakeQuerier struct {
	rows pgx.Rows
}

func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeQuerier) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (f *fakeQuerier) Ping(ctx context.Context) error            { return nil }
func (f *fakeQuerier) Close()                                    {}

func TestListByShowReturnsAllSeats(t *testing.T) {
	db := &fakeQuerier{rows: &seatRows{seats: []string{"C12", "C13"}}}
	repo := NewBookedSeatRepository(db, zap.NewNop())

	seats, err := repo.ListByShow(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"C12", "C13"}, seats)
}

// A result set cut short by a dropped connection must surface as an
// error, never as a shorter seat list: callers treat this list as the
// ground truth of unavailable seats.
func TestListByShowFailsOnTruncatedResultSet(t *testing.T) {
	db := &fakeQuerier{rows: &seatRows{
		seats:   []string{"C12"},
		rowsErr: errors.New("unexpected EOF"),
	}}
	repo := NewBookedSeatRepository(db, zap.NewNop())

	seats, err := repo.ListByShow(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read booked seat rows")
	assert.Nil(t, seats)
}
