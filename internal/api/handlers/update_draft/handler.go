package update_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationDesk/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationDesk/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	updateDraft "github.com/m04kA/SMC-ReservationDesk/internal/usecase/update_draft"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "черновик не найден"
	msgForbidden          = "доступ запрещен"
	msgUnknownSelection   = "выбранное значение отсутствует в справочнике"
	msgUnknownLabel       = "неизвестное значение статуса, канала или типа бронирования"
	msgInvalidInput       = "некорректные значения полей"
	msgConflict           = "черновик был изменён другим запросом, обновите форму"
)

type Handler struct {
	useCase UpdateDraftUseCase
	logger  Logger
}

func NewHandler(useCase UpdateDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, draftID)
	if err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	draft, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateDraft.ErrDraftNotFound):
			h.logger.Warn("PATCH /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateDraft.ErrAccessDenied):
			h.logger.Warn("PATCH /drafts/{id} - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateDraft.ErrConflict):
			h.logger.Warn("PATCH /drafts/{id} - Version conflict: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, domain.ErrUnknownSelection):
			h.logger.Warn("PATCH /drafts/{id} - Unknown selection: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgUnknownSelection)

		case errors.Is(err, domain.ErrUnknownLabel):
			h.logger.Warn("PATCH /drafts/{id} - Unknown label: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgUnknownLabel)

		case errors.Is(err, updateDraft.ErrInvalidInput):
			h.logger.Warn("PATCH /drafts/{id} - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /drafts/{id} - Failed to update draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /drafts/{id} - Draft updated: draft_id=%s, version=%d", draftID, draft.Version)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
