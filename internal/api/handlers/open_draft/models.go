package open_draft

// OpenDraftRequest HTTP request model
// Без bookingId открывается форма нового бронирования
type OpenDraftRequest struct {
	BookingID *int64 `json:"bookingId,omitempty"`
}
