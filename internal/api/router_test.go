package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationDesk/internal/api/handlers"
	discardDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/discard_draft"
	getDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/get_draft"
	listReferencesHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/list_references"
	navigateStepHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/navigate_step"
	openDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/open_draft"
	quickAddGuestHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/quick_add_guest"
	submitDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/submit_draft"
	updateDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/update_draft"
	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi/pmsapitest"
	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts"
	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts/models"
	"github.com/m04kA/SMC-ReservationDesk/internal/service/references"
	navigateStepUC "github.com/m04kA/SMC-ReservationDesk/internal/usecase/navigate_step"
	openDraftUC "github.com/m04kA/SMC-ReservationDesk/internal/usecase/open_draft"
	quickAddGuestUC "github.com/m04kA/SMC-ReservationDesk/internal/usecase/quick_add_guest"
	submitDraftUC "github.com/m04kA/SMC-ReservationDesk/internal/usecase/submit_draft"
	updateDraftUC "github.com/m04kA/SMC-ReservationDesk/internal/usecase/update_draft"
	"github.com/m04kA/SMC-ReservationDesk/pkg/logger"
)

type testServer struct {
	router http.Handler
	client *pmsapitest.Client
	repo   *pmsapitest.DraftRepository
}

func newTestServer() *testServer {
	log := logger.NewWithWriter(io.Discard, "error")
	client := pmsapitest.New()
	repo := pmsapitest.NewDraftRepository()
	loader := references.NewLoader(client, log)
	draftSvc := drafts.NewService(repo, nil, log)

	h := Handlers{
		OpenDraft:     openDraftHandler.NewHandler(openDraftUC.NewUseCase(repo, client, loader, nil, log), log),
		GetDraft:      getDraftHandler.NewHandler(draftSvc, log),
		UpdateDraft:   updateDraftHandler.NewHandler(updateDraftUC.NewUseCase(repo, loader, nil, log), log),
		NavigateStep:  navigateStepHandler.NewHandler(navigateStepUC.NewUseCase(repo, log), log),
		SubmitDraft:   submitDraftHandler.NewHandler(submitDraftUC.NewUseCase(repo, client, nil, nil, log), log),
		QuickAddGuest: quickAddGuestHandler.NewHandler(quickAddGuestUC.NewUseCase(repo, client, log), log),
		DiscardDraft:  discardDraftHandler.NewHandler(draftSvc, log),
		References:    listReferencesHandler.NewHandler(references.NewService(client, log), log),
	}

	return &testServer{
		router: NewRouter(h, RouterOptions{}),
		client: client,
		repo:   repo,
	}
}

func (s *testServer) do(t *testing.T, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeDraft(t *testing.T, w *httptest.ResponseRecorder) models.DraftResponse {
	t.Helper()
	var d models.DraftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d), w.Body.String())
	return d
}

func TestBookingFormFlow(t *testing.T) {
	s := newTestServer()

	// открытие пустой формы
	w := s.do(t, http.MethodPost, "/api/v1/drafts", "5", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	draft := decodeDraft(t, w)
	assert.Equal(t, "create", draft.Mode)
	assert.Len(t, draft.Options.Statuses, 9)
	base := "/api/v1/drafts/" + draft.ID

	// объект -> категории
	w = s.do(t, http.MethodPatch, base, "5", map[string]interface{}{"property_id": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	draft = decodeDraft(t, w)
	assert.Len(t, draft.References.RoomTypes, 2)

	// шаг 1 без юнита не проходит
	w = s.do(t, http.MethodPost, base+"/steps/next", "5", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var verr handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verr))
	assert.NotEmpty(t, verr.Fields)

	w = s.do(t, http.MethodPatch, base, "5", map[string]interface{}{
		"room_type_id":       10,
		"property_unit_id":   100,
		"check_in_date":      "2024-07-01",
		"check_out_date":     "2024-07-04",
		"room_rate_modifier": 100,
		"status":             "Confirmed",
		"charges":            []map[string]interface{}{{"charge_reference_id": 1, "amount": 50}},
		"amount_paid":        100,
		"payment_method":     "card",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	draft = decodeDraft(t, w)
	assert.Equal(t, 350.0, draft.Totals.Total)
	assert.Equal(t, 250.0, draft.Totals.Outstanding)

	w = s.do(t, http.MethodPost, base+"/steps/next", "5", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 2, decodeDraft(t, w).Step)

	// шаг 2 без гостей не проходит
	w = s.do(t, http.MethodPost, base+"/steps/next", "5", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, base+"/guests", "5", map[string]interface{}{
		"first_name": "Anna",
		"last_name":  "Ivanova",
		"email":      "anna@example.com",
		"password":   "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, decodeDraft(t, w).Fields.Guests, 1)

	w = s.do(t, http.MethodPost, base+"/steps/next", "5", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 3, decodeDraft(t, w).Step)

	// отправка
	w = s.do(t, http.MethodPost, base+"/submit", "5", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var result submitDraftUC.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(500), result.BookingID)

	require.Len(t, s.client.Created, 1)
	payload := s.client.Created[0]
	assert.Equal(t, 1, payload.Status)
	assert.Equal(t, 250.0, payload.AmountDue)
	assert.Equal(t, "card", payload.Payment.PaymentMethod)
	assert.Equal(t, 100.0, payload.Payment.Amount)
	assert.Equal(t, 0, payload.Payment.Status)

	// черновик удалён
	w = s.do(t, http.MethodGet, base, "5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDraftAccess(t *testing.T) {
	s := newTestServer()

	w := s.do(t, http.MethodPost, "/api/v1/drafts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/drafts", "5", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/v1/drafts/" + decodeDraft(t, w).ID

	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, base, "6", nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodDelete, base, "6", nil).Code)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, base, "5", nil).Code)
	assert.Equal(t, 0, s.repo.Len())
}

func TestDraftRoutes_MalformedID(t *testing.T) {
	s := newTestServer()
	s.repo.Put(&domain.BookingDraft{ID: "abc", UserID: 5, Mode: domain.ModeCreate, Phase: domain.PhaseInteractive, Step: domain.StepReservation})

	tests := []struct {
		method string
		path   string
		body   interface{}
	}{
		{method: http.MethodGet, path: "/api/v1/drafts/abc"},
		{method: http.MethodPatch, path: "/api/v1/drafts/abc", body: map[string]interface{}{"remarks": "x"}},
		{method: http.MethodDelete, path: "/api/v1/drafts/abc"},
		{method: http.MethodPost, path: "/api/v1/drafts/abc/steps/back"},
		{method: http.MethodPost, path: "/api/v1/drafts/abc/submit"},
		{method: http.MethodPost, path: "/api/v1/drafts/abc/guests", body: map[string]interface{}{"first_name": "Anna"}},
	}

	for _, tt := range tests {
		w := s.do(t, tt.method, tt.path, "5", tt.body)

		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tt.method, tt.path)
		var resp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	}
	assert.Equal(t, 1, s.repo.Len())
}

func TestUpdateDraft_Errors(t *testing.T) {
	s := newTestServer()
	w := s.do(t, http.MethodPost, "/api/v1/drafts", "5", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/v1/drafts/" + decodeDraft(t, w).ID

	tests := []struct {
		name   string
		body   map[string]interface{}
		status int
	}{
		{name: "bad date", body: map[string]interface{}{"check_in_date": "01.07.2024"}, status: http.StatusBadRequest},
		{name: "unknown field", body: map[string]interface{}{"colour": "red"}, status: http.StatusBadRequest},
		{name: "unknown property", body: map[string]interface{}{"property_id": 99}, status: http.StatusBadRequest},
		{name: "unknown label", body: map[string]interface{}{"booking_type": "Hourly"}, status: http.StatusBadRequest},
		{name: "stale version", body: map[string]interface{}{"version": 7, "remarks": "x"}, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPatch, base, "5", tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestSubmit_RejectedShowsServerMessage(t *testing.T) {
	s := newTestServer()
	w := s.do(t, http.MethodPost, "/api/v1/drafts", "5", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/v1/drafts/" + decodeDraft(t, w).ID

	w = s.do(t, http.MethodPatch, base, "5", map[string]interface{}{
		"property_id":      1,
		"room_type_id":     10,
		"property_unit_id": 100,
		"check_in_date":    "2024-07-01",
		"check_out_date":   "2024-07-02",
		"guests":           []map[string]interface{}{{"first_name": "A", "last_name": "B"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	s.client.Fail("create_booking", &pmsapi.APIError{StatusCode: 422, Message: "unit is occupied", Kind: pmsapi.ErrRejected})
	w = s.do(t, http.MethodPost, base+"/submit", "5", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "unit is occupied")

	// после отказа черновик снова можно править
	w = s.do(t, http.MethodPatch, base, "5", map[string]interface{}{"remarks": "late arrival"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSubmit_ForbiddenIsUnauthorizedAccess(t *testing.T) {
	s := newTestServer()
	w := s.do(t, http.MethodPost, "/api/v1/drafts", "5", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/v1/drafts/" + decodeDraft(t, w).ID

	w = s.do(t, http.MethodPatch, base, "5", map[string]interface{}{
		"property_id":      1,
		"room_type_id":     10,
		"property_unit_id": 100,
		"check_in_date":    "2024-07-01",
		"check_out_date":   "2024-07-02",
		"guests":           []map[string]interface{}{{"first_name": "A", "last_name": "B"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	s.client.Fail("create_booking", &pmsapi.APIError{StatusCode: 403, Kind: pmsapi.ErrForbidden})
	w = s.do(t, http.MethodPost, base+"/submit", "5", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized Access")
}

func TestReferenceRoutes(t *testing.T) {
	s := newTestServer()

	w := s.do(t, http.MethodGet, "/api/v1/properties", "5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Seaside Residence")

	w = s.do(t, http.MethodGet, "/api/v1/properties/1/room-types", "5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Deluxe King")

	w = s.do(t, http.MethodGet, "/api/v1/room-types/99/units", "5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = s.do(t, http.MethodGet, "/api/v1/room-types/abc/amenities", "5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.client.Fail("list_properties", pmsapi.ErrForbidden)
	w = s.do(t, http.MethodGet, "/api/v1/properties", "5", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
