package submit_draft

import "github.com/m04kA/SMC-ReservationDesk/internal/domain"

// Request модель запроса на отправку черновика
type Request struct {
	UserID  int64
	DraftID string
}

// Response результат отправки
type Response struct {
	BookingID int64         `json:"bookingId"`
	Mode      string        `json:"mode"`
	Totals    domain.Totals `json:"totals"`
}
