package navigate_step

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi/pmsapitest"
	"github.com/m04kA/SMC-ReservationDesk/pkg/logger"
)

func seed(repo *pmsapitest.DraftRepository, step domain.Step, unitID int64) {
	repo.Put(&domain.BookingDraft{
		ID:     "draft-1",
		UserID: 5,
		Mode:   domain.ModeCreate,
		Phase:  domain.PhaseInteractive,
		Step:   step,
		Fields: domain.DraftFields{
			PropertyID:       1,
			RoomTypeID:       10,
			PropertyUnitID:   unitID,
			CheckInDate:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate:     time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC),
			RoomRateModifier: 100,
			NumberOfGuests:   1,
			Status:           "Pending",
			BookingSource:    "Direct",
			BookingType:      "Nightly",
		},
	})
}

func newUseCase() (*UseCase, *pmsapitest.DraftRepository) {
	repo := pmsapitest.NewDraftRepository()
	return NewUseCase(repo, logger.NewWithWriter(io.Discard, "error")), repo
}

func run(uc *UseCase, dir Direction) error {
	_, err := uc.Execute(context.Background(), &Request{UserID: 5, DraftID: "draft-1", Direction: dir})
	return err
}

func TestExecute_NextWithoutUnitStaysOnStep(t *testing.T) {
	uc, repo := newUseCase()
	seed(repo, domain.StepReservation, 0)

	err := run(uc, DirectionNext)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "property_unit_id", verr.Fields[0].Field)

	d, err := repo.GetByID(context.Background(), "draft-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepReservation, d.Step)
	assert.Equal(t, int64(1), d.Version)
}

func TestExecute_NextSavesStep(t *testing.T) {
	uc, repo := newUseCase()
	seed(repo, domain.StepReservation, 100)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, DraftID: "draft-1", Direction: DirectionNext})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Step)
	assert.Equal(t, int64(2), resp.Version)
}

func TestExecute_BackNeverValidates(t *testing.T) {
	uc, repo := newUseCase()
	// на шаге 2 гостей нет, но назад переходить можно
	seed(repo, domain.StepGuests, 0)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, DraftID: "draft-1", Direction: DirectionBack})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Step)
}

func TestExecute_Bounds(t *testing.T) {
	uc, repo := newUseCase()
	seed(repo, domain.StepReservation, 100)
	assert.ErrorIs(t, run(uc, DirectionBack), ErrOutOfRange)

	seed(repo, domain.StepPayment, 100)
	assert.ErrorIs(t, run(uc, DirectionNext), ErrOutOfRange)
}

func TestExecute_Errors(t *testing.T) {
	uc, repo := newUseCase()
	seed(repo, domain.StepReservation, 100)

	assert.ErrorIs(t, run(uc, Direction("sideways")), ErrInvalidInput)

	_, err := uc.Execute(context.Background(), &Request{UserID: 6, DraftID: "draft-1", Direction: DirectionNext})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = uc.Execute(context.Background(), &Request{UserID: 5, DraftID: "nope", Direction: DirectionNext})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestExecute_SubmittingDraftIsLocked(t *testing.T) {
	uc, repo := newUseCase()
	repo.Put(&domain.BookingDraft{ID: "draft-1", UserID: 5, Phase: domain.PhaseSubmitting, Step: domain.StepGuests})

	assert.ErrorIs(t, run(uc, DirectionBack), ErrConflict)
}
