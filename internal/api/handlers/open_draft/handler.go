package open_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationDesk/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationDesk/internal/api/middleware"
	openDraft "github.com/m04kA/SMC-ReservationDesk/internal/usecase/open_draft"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgUnauthorized       = "Unauthorized Access"
)

type Handler struct {
	useCase OpenDraftUseCase
	logger  Logger
}

func NewHandler(useCase OpenDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req OpenDraftRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /drafts - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	draft, err := h.useCase.Execute(r.Context(), &openDraft.Request{
		UserID:    userID,
		BookingID: req.BookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, openDraft.ErrInvalidInput):
			h.logger.Warn("POST /drafts - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, openDraft.ErrBookingNotFound):
			h.logger.Warn("POST /drafts - Booking not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, openDraft.ErrUnauthorized):
			h.logger.Warn("POST /drafts - API denied access: user_id=%d", userID)
			handlers.RespondForbidden(w, msgUnauthorized)

		default:
			h.logger.Error("POST /drafts - Failed to open draft: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts - Draft opened: draft_id=%s, mode=%s, user_id=%d", draft.ID, draft.Mode, userID)
	handlers.RespondJSON(w, http.StatusCreated, draft)
}
