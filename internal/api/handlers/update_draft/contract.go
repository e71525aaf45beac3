package update_draft

import (
	"context"

	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts/models"
	updateDraft "github.com/m04kA/SMC-ReservationDesk/internal/usecase/update_draft"
)

type UpdateDraftUseCase interface {
	Execute(ctx context.Context, req *updateDraft.Request) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
