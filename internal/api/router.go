package api

import (
	"net/http"

	"github.com/gorilla/mux"

	discardDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/discard_draft"
	getDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/get_draft"
	listReferencesHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/list_references"
	navigateStepHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/navigate_step"
	openDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/open_draft"
	quickAddGuestHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/quick_add_guest"
	submitDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/submit_draft"
	updateDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/update_draft"
	"github.com/m04kA/SMC-ReservationDesk/internal/api/middleware"
)

// Handlers набор обработчиков API
type Handlers struct {
	OpenDraft     *openDraftHandler.Handler
	GetDraft      *getDraftHandler.Handler
	UpdateDraft   *updateDraftHandler.Handler
	NavigateStep  *navigateStepHandler.Handler
	SubmitDraft   *submitDraftHandler.Handler
	QuickAddGuest *quickAddGuestHandler.Handler
	DiscardDraft  *discardDraftHandler.Handler
	References    *listReferencesHandler.Handler
}

// RouterOptions необязательные части роутера
type RouterOptions struct {
	Metrics        middleware.HTTPMetricsRecorder // nil - без HTTP метрик
	MetricsPath    string
	MetricsHandler http.Handler // nil - без /metrics
}

// NewRouter регистрирует маршруты /api/v1
// Все маршруты требуют X-User-ID
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	if opts.MetricsHandler != nil {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Черновики бронирований ---
	api.HandleFunc("/drafts", h.OpenDraft.Handle).Methods(http.MethodPost)

	draft := api.PathPrefix("/drafts/{draftId}").Subrouter()
	draft.Use(middleware.DraftID)
	draft.HandleFunc("", h.GetDraft.Handle).Methods(http.MethodGet)
	draft.HandleFunc("", h.UpdateDraft.Handle).Methods(http.MethodPatch)
	draft.HandleFunc("", h.DiscardDraft.Handle).Methods(http.MethodDelete)
	draft.HandleFunc("/steps/{direction}", h.NavigateStep.Handle).Methods(http.MethodPost)
	draft.HandleFunc("/submit", h.SubmitDraft.Handle).Methods(http.MethodPost)
	draft.HandleFunc("/guests", h.QuickAddGuest.Handle).Methods(http.MethodPost)

	// --- Справочники ---
	api.HandleFunc("/properties", h.References.HandleProperties).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}/room-types", h.References.HandleRoomTypes).Methods(http.MethodGet)
	api.HandleFunc("/room-types/{roomTypeId}/units", h.References.HandleUnits).Methods(http.MethodGet)
	api.HandleFunc("/room-types/{roomTypeId}/amenities", h.References.HandleAmenities).Methods(http.MethodGet)

	return r
}
