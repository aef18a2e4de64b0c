package ws

// Seat statuses broadcast to observers.
const (
	StatusBlocked   = "blocked"
	StatusAvailable = "available"
	StatusBooked    = "booked"
)

// Inbound actions accepted from clients.
const (
	ActionBlock   = "block"
	ActionUnblock = "unblock"
)

// SeatEvent is the broadcast payload for one seat transition. UserID
// is null when the seat becomes available.
type SeatEvent struct {
	ShowID int64  `json:"showId"`
	Seat   string `json:"seat"`
	UserID *int64 `json:"userId"`
	Status string `json:"status"`
}

// ClientMessage is an inbound hold or release request.
type ClientMessage struct {
	Action string `json:"action"`
	ShowID int64  `json:"showId"`
	Seat   string `json:"seat"`
	UserID int64  `json:"userId"`
}
