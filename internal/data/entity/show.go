package entity

import "time"

type Screen struct {
	ID       int64  `db:"id"`
	CinemaID int64  `db:"cinema_id"`
	Name     string `db:"name"`
}

type Show struct {
	ID        int64     `db:"id"`
	MovieID   int64     `db:"movie_id"`
	ScreenID  int64     `db:"screen_id"`
	StartTime time.Time `db:"start_time"`
}

// ShowListing carries the screen name alongside the show for the
// catalog listing endpoints.
type ShowListing struct {
	ID         int64
	StartTime  time.Time
	ScreenName string
}
