package drafts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingDraft, error)
	Delete(ctx context.Context, id string) error
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
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
