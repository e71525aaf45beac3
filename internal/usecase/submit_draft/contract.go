package submit_draft

import (
	"context"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingDraft, error)
	Update(ctx context.Context, d *domain.BookingDraft) error
	Delete(ctx context.Context, id string) error
}

// PMSClient интерфейс клиента API управления объектами
type PMSClient interface {
	CreateBooking(ctx context.Context, payload *pmsapi.BookingPayload) (*pmsapi.Booking, error)
	UpdateBooking(ctx context.Context, bookingID int64, payload *pmsapi.BookingPayload) (*pmsapi.Booking, error)
}

// EventPublisher интерфейс публикации событий
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// Metrics интерфейс метрик жизненного цикла черновиков
type Metrics interface {
	IncDraftEvent(event, mode string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
