package drafts

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi/pmsapitest"
	"github.com/m04kA/SMC-ReservationDesk/pkg/logger"
)

func newService() (*Service, *pmsapitest.DraftRepository) {
	repo := pmsapitest.NewDraftRepository()
	return NewService(repo, nil, logger.NewWithWriter(io.Discard, "error")), repo
}

func TestGetByID_ComputesTotals(t *testing.T) {
	s, repo := newService()
	repo.Put(&domain.BookingDraft{
		ID:     "d1",
		UserID: 5,
		Mode:   domain.ModeEdit,
		Fields: domain.DraftFields{
			CheckInDate:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate:     time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC),
			RoomRateModifier: 100,
			Charges:          []domain.Charge{{ChargeReferenceID: 1, Amount: 50}},
			AmountPaid:       100,
			NewPaymentAmount: 50,
		},
	})

	resp, err := s.GetByID(context.Background(), "d1", 5)

	require.NoError(t, err)
	assert.Equal(t, 350.0, resp.Totals.Total)
	assert.Equal(t, 150.0, resp.Totals.TotalPaid)
	assert.Equal(t, 200.0, resp.Totals.Outstanding)
	assert.Equal(t, "2024-07-04", resp.Fields.CheckOutDate)
	assert.NotNil(t, resp.Fields.Guests)
}

func TestGetByID_Errors(t *testing.T) {
	s, repo := newService()
	repo.Put(&domain.BookingDraft{ID: "d1", UserID: 5})

	_, err := s.GetByID(context.Background(), "d1", 6)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.GetByID(context.Background(), "nope", 5)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDiscard(t *testing.T) {
	s, repo := newService()
	repo.Put(&domain.BookingDraft{ID: "d1", UserID: 5})

	assert.ErrorIs(t, s.Discard(context.Background(), "d1", 6), ErrAccessDenied)
	require.NoError(t, s.Discard(context.Background(), "d1", 5))
	assert.Equal(t, 0, repo.Len())
	assert.ErrorIs(t, s.Discard(context.Background(), "d1", 5), ErrDraftNotFound)
}

func TestCleanupStale(t *testing.T) {
	s, repo := newService()
	now := time.Now()
	repo.Put(&domain.BookingDraft{ID: "old", UserID: 5, UpdatedAt: now.Add(-13 * time.Hour)})
	repo.Put(&domain.BookingDraft{ID: "fresh", UserID: 5, UpdatedAt: now.Add(-time.Minute)})

	deleted, err := s.CleanupStale(context.Background(), 12*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	_, err = repo.GetByID(context.Background(), "fresh")
	assert.NoError(t, err)
}
