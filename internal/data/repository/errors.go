// Package repository defines sentinel errors shared across the
// repositories so that higher layers can distinguish failure scenarios
// without inspecting error strings.
package repository

import "errors"

// ErrNotFound is returned when an operation targets a row that does
// not exist (or, for cancellation, is no longer confirmed). Handlers
// translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrSeatConflict is returned when a booking commit collides with an
// existing booked seat row. The unique constraint on
// (show_id, seat_label) is the final arbiter against double booking;
// handlers translate this into an HTTP 409 response.
var ErrSeatConflict = errors.New("seat already booked")
