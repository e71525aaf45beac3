package open_draft

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi/pmsapitest"
	"github.com/m04kA/SMC-ReservationDesk/internal/service/references"
	"github.com/m04kA/SMC-ReservationDesk/pkg/logger"
)

type fixedID string

func (f fixedID) NewID() string { return string(f) }

type countingMetrics struct {
	events map[string]int
}

func (m *countingMetrics) IncDraftEvent(event, mode string) {
	if m.events == nil {
		m.events = map[string]int{}
	}
	m.events[event+":"+mode]++
}

func newUseCase(t *testing.T) (*UseCase, *pmsapitest.Client, *pmsapitest.DraftRepository, *countingMetrics) {
	t.Helper()

	log := logger.NewWithWriter(io.Discard, "error")
	client := pmsapitest.New()
	repo := pmsapitest.NewDraftRepository()
	metrics := &countingMetrics{}

	uc := NewUseCase(repo, client, references.NewLoader(client, log), metrics, log)
	uc.idGenerator = fixedID("draft-1")
	return uc, client, repo, metrics
}

func editableBooking() *pmsapi.Booking {
	return &pmsapi.Booking{
		ID:             42,
		PropertyID:     1,
		RoomTypeID:     10,
		PropertyUnitID: 101,
		CheckInDate:    "2024-07-01",
		CheckOutDate:   "2024-07-04",
		RawRoomRate:    100,
		RoomRate:       90,
		NumberOfGuests: 2,
		Status:         1,
		BookingSource:  3,
		BookingType:    1,
		Guests:         []pmsapi.Guest{{ID: 7, FirstName: "Anna", LastName: "Ivanova"}},
		Charges:        []pmsapi.Charge{{ChargeReferenceID: 1, Amount: 50}},
		PaymentMethod:  "cash",
		AmountPaid:     100,
		AmountDue:      999, // устаревшее значение на стороне API
	}
}

func TestExecute_OpenCreate(t *testing.T) {
	uc, client, repo, metrics := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5})

	require.NoError(t, err)
	assert.Equal(t, "draft-1", resp.ID)
	assert.Equal(t, string(domain.ModeCreate), resp.Mode)
	assert.Equal(t, string(domain.PhaseInteractive), resp.Phase)
	assert.Equal(t, 1, resp.Step)
	assert.Equal(t, int64(1), resp.Version)
	assert.Equal(t, "Pending", resp.Fields.Status)
	assert.Equal(t, "Direct", resp.Fields.BookingSource)
	assert.Equal(t, "Nightly", resp.Fields.BookingType)
	assert.Equal(t, 1, resp.Fields.NumberOfGuests)
	assert.Len(t, resp.References.Properties, 2)
	assert.Empty(t, resp.References.RoomTypes)
	assert.Empty(t, resp.Notices)

	assert.Equal(t, 0, client.CallCount("get_booking"))
	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, 1, metrics.events["opened:create"])
}

func TestExecute_OpenEditKeepsCascadeSelections(t *testing.T) {
	uc, client, _, metrics := newUseCase(t)
	client.Bookings[42] = editableBooking()
	bookingID := int64(42)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: &bookingID})

	require.NoError(t, err)
	assert.Equal(t, string(domain.ModeEdit), resp.Mode)
	assert.Equal(t, string(domain.PhaseInteractive), resp.Phase)
	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(42), *resp.BookingID)

	// Гидратация не сбрасывает категорию и юнит
	assert.Equal(t, int64(1), resp.Fields.PropertyID)
	assert.Equal(t, int64(10), resp.Fields.RoomTypeID)
	assert.Equal(t, int64(101), resp.Fields.PropertyUnitID)
	assert.Equal(t, 90.0, resp.Fields.RoomRateModifier)
	assert.Len(t, resp.References.RoomTypes, 2)
	assert.Len(t, resp.References.Units, 2)
	assert.Len(t, resp.References.Amenities, 1)

	assert.Equal(t, "2024-07-01", resp.Fields.CheckInDate)
	assert.Equal(t, "Confirmed", resp.Fields.Status)
	assert.Equal(t, "Airbnb", resp.Fields.BookingSource)
	require.Len(t, resp.Fields.Guests, 1)
	require.NotNil(t, resp.Fields.Guests[0].GuestID)
	assert.Equal(t, int64(7), *resp.Fields.Guests[0].GuestID)

	// 3 ночи * 90 + 50 = 320, оплачено 100
	assert.Equal(t, 3, resp.Totals.Nights)
	assert.Equal(t, 320.0, resp.Totals.Total)
	assert.Equal(t, 220.0, resp.Totals.Outstanding)
	assert.Equal(t, 220.0, resp.Fields.AmountDue)
	assert.Equal(t, 1, metrics.events["opened:edit"])
}

func TestExecute_OpenEditUnknownCodeAddsNotice(t *testing.T) {
	uc, client, _, _ := newUseCase(t)
	b := editableBooking()
	b.BookingSource = 99
	client.Bookings[42] = b
	bookingID := int64(42)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: &bookingID})

	require.NoError(t, err)
	assert.Empty(t, resp.Fields.BookingSource)
	assert.Contains(t, resp.Notices, "неизвестный код канала 99")
}

func TestExecute_ReferenceFailureLeavesListEmpty(t *testing.T) {
	uc, client, _, _ := newUseCase(t)
	client.Fail("list_properties", pmsapi.ErrInternal)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5})

	require.NoError(t, err)
	assert.Empty(t, resp.References.Properties)
	assert.Equal(t, []string{references.NoticePropertiesUnavailable}, resp.Notices)
	assert.Equal(t, 1, client.CallCount("list_properties"))
}

func TestExecute_Errors(t *testing.T) {
	bookingID := int64(42)
	badID := int64(-1)

	tests := []struct {
		name    string
		req     *Request
		apiErr  error
		wantErr error
	}{
		{name: "no user", req: &Request{UserID: 0}, wantErr: ErrInvalidInput},
		{name: "bad booking id", req: &Request{UserID: 5, BookingID: &badID}, wantErr: ErrInvalidInput},
		{name: "booking not found", req: &Request{UserID: 5, BookingID: &bookingID}, wantErr: ErrBookingNotFound},
		{name: "forbidden", req: &Request{UserID: 5, BookingID: &bookingID}, apiErr: pmsapi.ErrForbidden, wantErr: ErrUnauthorized},
		{name: "api down", req: &Request{UserID: 5, BookingID: &bookingID}, apiErr: pmsapi.ErrInternal, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, client, repo, _ := newUseCase(t)
			if tt.apiErr != nil {
				client.Fail("get_booking", tt.apiErr)
			}

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, repo.Len())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-07-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = parseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = parseDate("01/07/2024")
	assert.Error(t, err)
}
