package get_draft

import (
	"context"

	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts/models"
)

type DraftService interface {
	GetByID(ctx context.Context, id string, userID int64) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
