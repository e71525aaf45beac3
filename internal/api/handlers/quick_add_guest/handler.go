package quick_add_guest

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationDesk/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationDesk/internal/api/middleware"
	quickAddGuest "github.com/m04kA/SMC-ReservationDesk/internal/usecase/quick_add_guest"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "черновик не найден"
	msgForbidden          = "доступ запрещен"
	msgValidation         = "проверьте данные гостя"
	msgConflict           = "черновик был изменён другим запросом, обновите форму"
	msgUnauthorized       = "Unauthorized Access"
	msgRejected           = "гость не создан"
	msgUpstream           = "сервис гостей недоступен, попробуйте позже"
)

type Handler struct {
	useCase QuickAddGuestUseCase
	logger  Logger
}

func NewHandler(useCase QuickAddGuestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/guests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req QuickAddGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/guests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, draftID))
	if err != nil {
		switch {
		case errors.Is(err, quickAddGuest.ErrValidation):
			handlers.RespondValidationError(w, msgValidation, err)

		case errors.Is(err, quickAddGuest.ErrDraftNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, quickAddGuest.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/guests - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, quickAddGuest.ErrConflict):
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, quickAddGuest.ErrUnauthorized):
			handlers.RespondForbidden(w, msgUnauthorized)

		case errors.Is(err, quickAddGuest.ErrRejected):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgRejected)

		case errors.Is(err, quickAddGuest.ErrUpstream):
			h.logger.Error("POST /drafts/{id}/guests - API failure: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("POST /drafts/{id}/guests - Failed to add guest: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/guests - Guest added: draft_id=%s", draftID)
	handlers.RespondJSON(w, http.StatusCreated, draft)
}
