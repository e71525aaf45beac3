package quick_add_guest

import (
	"context"

	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts/models"
	quickAddGuest "github.com/m04kA/SMC-ReservationDesk/internal/usecase/quick_add_guest"
)

type QuickAddGuestUseCase interface {
	Execute(ctx context.Context, req *quickAddGuest.Request) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
