package open_draft

// Request модель запроса на открытие черновика
type Request struct {
	UserID    int64  // ID пользователя (X-User-ID)
	BookingID *int64 // ID бронирования для редактирования (nil - новое бронирование)
}
