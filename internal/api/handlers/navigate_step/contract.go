package navigate_step

import (
	"context"

	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts/models"
	navigateStep "github.com/m04kA/SMC-ReservationDesk/internal/usecase/navigate_step"
)

type NavigateStepUseCase interface {
	Execute(ctx context.Context, req *navigateStep.Request) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
