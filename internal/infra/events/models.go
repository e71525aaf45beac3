package events

import "time"

// BookingSubmitted событие об отправленном из черновика бронировании
type BookingSubmitted struct {
	BookingID   int64     `json:"booking_id"`
	DraftID     string    `json:"draft_id"`
	UserID      int64     `json:"user_id"`
	Mode        string    `json:"mode"`
	PropertyID  int64     `json:"property_id"`
	UnitID      int64     `json:"property_unit_id"`
	CheckIn     string    `json:"check_in_date"`
	CheckOut    string    `json:"check_out_date"`
	Total       float64   `json:"total"`
	Outstanding float64   `json:"outstanding"`
	SubmittedAt time.Time `json:"submitted_at"`
}
