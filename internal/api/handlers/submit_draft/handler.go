package submit_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationDesk/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationDesk/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	submitDraft "github.com/m04kA/SMC-ReservationDesk/internal/usecase/submit_draft"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgNotFound        = "черновик не найден"
	msgForbidden       = "доступ запрещен"
	msgValidation      = "форма бронирования заполнена не полностью"
	msgConflict        = "черновик уже отправляется или был изменён, обновите форму"
	msgUnauthorized    = "Unauthorized Access"
	msgRejected        = "бронирование отклонено"
	msgBookingNotFound = "редактируемое бронирование больше не существует"
	msgUpstream        = "сервис бронирований недоступен, попробуйте позже"
)

type Handler struct {
	useCase SubmitDraftUseCase
	logger  Logger
}

func NewHandler(useCase SubmitDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/submit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitDraft.Request{UserID: userID, DraftID: draftID})
	if err != nil {
		var rejected *submitDraft.RejectedError

		switch {
		case errors.Is(err, submitDraft.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, submitDraft.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/submit - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitDraft.ErrValidation):
			handlers.RespondValidationError(w, msgValidation, err)

		case errors.Is(err, submitDraft.ErrConflict):
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, submitDraft.ErrUnauthorized):
			h.logger.Warn("POST /drafts/{id}/submit - API denied access: draft_id=%s", draftID)
			handlers.RespondForbidden(w, msgUnauthorized)

		case errors.As(err, &rejected):
			// сообщение сервера показываем пользователю как есть
			msg := msgRejected
			if rejected.Message != "" {
				msg = rejected.Message
			}
			handlers.RespondError(w, http.StatusUnprocessableEntity, msg)

		case errors.Is(err, submitDraft.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, submitDraft.ErrUpstream):
			h.logger.Error("POST /drafts/{id}/submit - API failure: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Failed to submit draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/submit - Booking saved: draft_id=%s, booking_id=%d, mode=%s",
		draftID, result.BookingID, result.Mode)

	status := http.StatusCreated
	if result.Mode == string(domain.ModeEdit) {
		status = http.StatusOK
	}
	handlers.RespondJSON(w, status, result)
}
