package navigate_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationDesk/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationDesk/internal/api/middleware"
	navigateStep "github.com/m04kA/SMC-ReservationDesk/internal/usecase/navigate_step"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidDirection = "направление перехода должно быть next или back"
	msgNotFound         = "черновик не найден"
	msgForbidden        = "доступ запрещен"
	msgValidation       = "заполните обязательные поля текущего шага"
	msgOutOfRange       = "переход за пределы мастера невозможен"
	msgConflict         = "черновик был изменён другим запросом, обновите форму"
)

type Handler struct {
	useCase NavigateStepUseCase
	logger  Logger
}

func NewHandler(useCase NavigateStepUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/steps/{direction}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]
	direction := navigateStep.Direction(vars["direction"])

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/steps - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.useCase.Execute(r.Context(), &navigateStep.Request{
		UserID:    userID,
		DraftID:   draftID,
		Direction: direction,
	})
	if err != nil {
		switch {
		case errors.Is(err, navigateStep.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDirection)

		case errors.Is(err, navigateStep.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/steps - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, navigateStep.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/steps - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, navigateStep.ErrValidation):
			handlers.RespondValidationError(w, msgValidation, err)

		case errors.Is(err, navigateStep.ErrOutOfRange):
			handlers.RespondBadRequest(w, msgOutOfRange)

		case errors.Is(err, navigateStep.ErrConflict):
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /drafts/{id}/steps - Failed to navigate: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draft)
}
