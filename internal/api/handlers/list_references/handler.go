package list_references

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationDesk/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationDesk/internal/service/references"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidRoomTypeID = "некорректный ID категории номера"
	msgInvalidInput      = "некорректный ID"
	msgNotFound          = "ресурс не найден"
	msgUnauthorized      = "Unauthorized Access"
	msgUpstream          = "справочник недоступен, попробуйте позже"
)

type Handler struct {
	service ReferenceService
	logger  Logger
}

func NewHandler(service ReferenceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleProperties GET /api/v1/properties
func (h *Handler) HandleProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.ListProperties(r.Context())
	if err != nil {
		h.respondError(w, "GET /properties", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, nonNil(properties))
}

// HandleRoomTypes GET /api/v1/properties/{propertyId}/room-types
func (h *Handler) HandleRoomTypes(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil || propertyID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	roomTypes, err := h.service.ListRoomTypes(r.Context(), propertyID)
	if err != nil {
		h.respondError(w, "GET /properties/{id}/room-types", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, nonNil(roomTypes))
}

// HandleUnits GET /api/v1/room-types/{roomTypeId}/units
func (h *Handler) HandleUnits(w http.ResponseWriter, r *http.Request) {
	roomTypeID, ok := h.roomTypeID(w, r)
	if !ok {
		return
	}

	units, err := h.service.ListUnits(r.Context(), roomTypeID)
	if err != nil {
		h.respondError(w, "GET /room-types/{id}/units", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, nonNil(units))
}

// HandleAmenities GET /api/v1/room-types/{roomTypeId}/amenities
func (h *Handler) HandleAmenities(w http.ResponseWriter, r *http.Request) {
	roomTypeID, ok := h.roomTypeID(w, r)
	if !ok {
		return
	}

	amenities, err := h.service.ListAmenities(r.Context(), roomTypeID)
	if err != nil {
		h.respondError(w, "GET /room-types/{id}/amenities", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, nonNil(amenities))
}

func (h *Handler) roomTypeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	roomTypeID, err := strconv.ParseInt(mux.Vars(r)["roomTypeId"], 10, 64)
	if err != nil || roomTypeID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return 0, false
	}
	return roomTypeID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, references.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
	case errors.Is(err, references.ErrNotFound):
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, references.ErrUnauthorized):
		h.logger.Warn("%s - API denied access", route)
		handlers.RespondForbidden(w, msgUnauthorized)
	default:
		h.logger.Error("%s - Failed to load references: %v", route, err)
		handlers.RespondBadGateway(w, msgUpstream)
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
