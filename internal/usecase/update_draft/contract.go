package update_draft

import (
	"context"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingDraft, error)
	Update(ctx context.Context, d *domain.BookingDraft) error
}

// ReferenceLoader интерфейс загрузчика зависимых справочников
type ReferenceLoader interface {
	LoadRoomTypes(ctx context.Context, d *domain.BookingDraft) []string
	LoadUnits(ctx context.Context, d *domain.BookingDraft) []string
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
