package request

type CreateBookingRequest struct {
	UserID int64    `json:"userId" validate:"required,gt=0"`
	ShowID int64    `json:"showId" validate:"required,gt=0"`
	Seats  []string `json:"seats" validate:"required,min=1,dive,required"`
}
