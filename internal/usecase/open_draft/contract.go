package open_draft

import (
	"context"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Create(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error)
}

// PMSClient интерфейс клиента API управления объектами
type PMSClient interface {
	GetBooking(ctx context.Context, bookingID int64) (*pmsapi.Booking, error)
}

// ReferenceLoader интерфейс загрузчика справочников
type ReferenceLoader interface {
	LoadCore(ctx context.Context, d *domain.BookingDraft) []string
	LoadRoomTypes(ctx context.Context, d *domain.BookingDraft) []string
	LoadUnits(ctx context.Context, d *domain.BookingDraft) []string
}

// IDGenerator генератор ID черновиков (для тестирования)
type IDGenerator interface {
	NewID() string
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
