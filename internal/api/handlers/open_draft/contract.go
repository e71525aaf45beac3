package open_draft

import (
	"context"

	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts/models"
	openDraft "github.com/m04kA/SMC-ReservationDesk/internal/usecase/open_draft"
)

type OpenDraftUseCase interface {
	Execute(ctx context.Context, req *openDraft.Request) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
