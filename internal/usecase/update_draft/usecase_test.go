package update_draft

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
	"github.com/m04kA/SMC-ReservationDesk/pkg/ptr"
)

const userID = int64(5)

func newUseCase(t *testing.T) (*UseCase, *pmsapitest.Client, *pmsapitest.DraftRepository) {
	t.Helper()

	log := logger.NewWithWriter(io.Discard, "error")
	client := pmsapitest.New()
	repo := pmsapitest.NewDraftRepository()

	return NewUseCase(repo, references.NewLoader(client, log), nil, log), client, repo
}

// seedDraft кладет интерактивный черновик с выбранными объектом 1, категорией 10 и юнитом 100
func seedDraft(client *pmsapitest.Client, repo *pmsapitest.DraftRepository) *domain.BookingDraft {
	d := &domain.BookingDraft{
		ID:     "draft-1",
		UserID: userID,
		Mode:   domain.ModeCreate,
		Phase:  domain.PhaseInteractive,
		Step:   domain.StepReservation,
		Fields: domain.DraftFields{
			PropertyID:       1,
			RoomTypeID:       10,
			PropertyUnitID:   100,
			RawRoomRate:      100,
			RoomRateModifier: 100,
			NumberOfGuests:   1,
			Status:           "Pending",
			BookingSource:    "Direct",
			BookingType:      "Nightly",
		},
		References: domain.ReferenceSnapshot{
			Properties: client.Properties,
			RoomTypes:  client.RoomTypes[1],
			Units:      client.Units[10],
			Amenities:  client.Amenities[10],
		},
	}
	repo.Put(d)
	return d
}

func execute(t *testing.T, uc *UseCase, patch Patch) error {
	t.Helper()
	_, err := uc.Execute(context.Background(), &Request{UserID: userID, DraftID: "draft-1", Patch: patch})
	return err
}

func stored(t *testing.T, repo *pmsapitest.DraftRepository) *domain.BookingDraft {
	t.Helper()
	d, err := repo.GetByID(context.Background(), "draft-1")
	require.NoError(t, err)
	return d
}

func TestExecute_PropertyChangeClearsDependents(t *testing.T) {
	uc, client, repo := newUseCase(t)
	seedDraft(client, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  userID,
		DraftID: "draft-1",
		Patch:   Patch{PropertyID: ptr.Ptr(int64(2))},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Fields.PropertyID)
	assert.Zero(t, resp.Fields.RoomTypeID)
	assert.Zero(t, resp.Fields.PropertyUnitID)
	assert.Equal(t, client.RoomTypes[2], resp.References.RoomTypes)
	assert.Empty(t, resp.References.Units)
	assert.Empty(t, resp.References.Amenities)
	assert.Equal(t, int64(2), resp.Version)
}

func TestExecute_PropertyBackAndForthNeverLeaks(t *testing.T) {
	uc, client, repo := newUseCase(t)
	seedDraft(client, repo)

	require.NoError(t, execute(t, uc, Patch{PropertyID: ptr.Ptr(int64(2))}))
	require.NoError(t, execute(t, uc, Patch{PropertyID: ptr.Ptr(int64(1))}))

	d := stored(t, repo)
	assert.Equal(t, int64(1), d.Fields.PropertyID)
	assert.Zero(t, d.Fields.RoomTypeID)
	assert.Zero(t, d.Fields.PropertyUnitID)
	assert.Equal(t, client.RoomTypes[1], d.References.RoomTypes)
	assert.Empty(t, d.References.Units)
}

func TestExecute_SameValueIsNoop(t *testing.T) {
	uc, client, repo := newUseCase(t)
	seedDraft(client, repo)

	require.NoError(t, execute(t, uc, Patch{PropertyID: ptr.Ptr(int64(1)), RoomTypeID: ptr.Ptr(int64(10))}))

	d := stored(t, repo)
	assert.Equal(t, int64(100), d.Fields.PropertyUnitID)
	assert.Equal(t, 0, client.CallCount("list_room_types"))
	assert.Equal(t, 0, client.CallCount("list_units"))
}

func TestExecute_RoomTypeChangeLoadsUnitsAndPrefillsRate(t *testing.T) {
	uc, client, repo := newUseCase(t)
	d := seedDraft(client, repo)
	d.Fields.RoomRateModifier = 0
	repo.Put(d)

	require.NoError(t, execute(t, uc, Patch{RoomTypeID: ptr.Ptr(int64(11))}))

	got := stored(t, repo)
	assert.Equal(t, int64(11), got.Fields.RoomTypeID)
	assert.Zero(t, got.Fields.PropertyUnitID)
	assert.Equal(t, 80.0, got.Fields.RawRoomRate)
	assert.Equal(t, 80.0, got.Fields.RoomRateModifier)
	assert.Equal(t, client.Units[11], got.References.Units)
}

func TestExecute_PropertyRoomTypeAndUnitInOnePatch(t *testing.T) {
	uc, client, repo := newUseCase(t)
	seedDraft(client, repo)

	require.NoError(t, execute(t, uc, Patch{
		PropertyID:     ptr.Ptr(int64(2)),
		RoomTypeID:     ptr.Ptr(int64(20)),
		PropertyUnitID: ptr.Ptr(int64(200)),
	}))

	got := stored(t, repo)
	assert.Equal(t, int64(2), got.Fields.PropertyID)
	assert.Equal(t, int64(20), got.Fields.RoomTypeID)
	assert.Equal(t, int64(200), got.Fields.PropertyUnitID)
	// модификатор уже был задан и не перезаписывается
	assert.Equal(t, 100.0, got.Fields.RoomRateModifier)
	assert.Equal(t, 250.0, got.Fields.RawRoomRate)
}

func TestExecute_UnitFailureAddsNotice(t *testing.T) {
	uc, client, repo := newUseCase(t)
	seedDraft(client, repo)
	client.Fail("list_units", pmsapi.ErrInternal)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  userID,
		DraftID: "draft-1",
		Patch:   Patch{RoomTypeID: ptr.Ptr(int64(11))},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.References.Units)
	assert.Equal(t, []string{references.NoticeUnitsUnavailable}, resp.Notices)
	assert.Equal(t, 1, client.CallCount("list_units"))
}

func TestExecute_EndToEndTotals(t *testing.T) {
	uc, client, repo := newUseCase(t)
	seedDraft(client, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  userID,
		DraftID: "draft-1",
		Patch: Patch{
			CheckInDate:      ptr.Ptr(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)),
			CheckOutDate:     ptr.Ptr(time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)),
			RoomRateModifier: ptr.Ptr(100.0),
			Charges:          &[]domain.Charge{{ChargeReferenceID: 1, Amount: 50}},
			AmountPaid:       ptr.Ptr(100.0),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Totals.Nights)
	assert.Equal(t, 350.0, resp.Totals.Total)
	assert.Equal(t, 250.0, resp.Totals.Outstanding)
	assert.Equal(t, 250.0, resp.Fields.AmountDue)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		patch   Patch
		wantErr error
	}{
		{name: "unknown property", patch: Patch{PropertyID: ptr.Ptr(int64(9))}, wantErr: domain.ErrUnknownSelection},
		{name: "room type of other property", patch: Patch{RoomTypeID: ptr.Ptr(int64(20))}, wantErr: domain.ErrUnknownSelection},
		{name: "unit of other room type", patch: Patch{PropertyUnitID: ptr.Ptr(int64(200))}, wantErr: domain.ErrUnknownSelection},
		{name: "unknown status", patch: Patch{Status: ptr.Ptr("Lost")}, wantErr: domain.ErrUnknownLabel},
		{name: "unknown channel", patch: Patch{BookingSource: ptr.Ptr("Fax")}, wantErr: domain.ErrUnknownLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, client, repo := newUseCase(t)
			seedDraft(client, repo)

			err := execute(t, uc, tt.patch)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, int64(1), stored(t, repo).Version)
		})
	}
}

func TestExecute_AccessAndExistence(t *testing.T) {
	uc, client, repo := newUseCase(t)
	seedDraft(client, repo)

	_, err := uc.Execute(context.Background(), &Request{UserID: 6, DraftID: "draft-1"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = uc.Execute(context.Background(), &Request{UserID: userID, DraftID: "missing"})
	assert.ErrorIs(t, err, ErrDraftNotFound)

	_, err = uc.Execute(context.Background(), &Request{UserID: userID})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StaleClientVersion(t *testing.T) {
	uc, client, repo := newUseCase(t)
	seedDraft(client, repo)
	repo.Bump("draft-1")

	_, err := uc.Execute(context.Background(), &Request{
		UserID:  userID,
		DraftID: "draft-1",
		Version: 1,
		Patch:   Patch{Remarks: ptr.Ptr("late")},
	})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestExecute_ConcurrentWriteDuringCascade(t *testing.T) {
	uc, client, repo := newUseCase(t)
	seedDraft(client, repo)

	// Пока грузились категории, другой запрос успел сохранить черновик
	repo.BeforeUpdate = func(d *domain.BookingDraft) {
		repo.BeforeUpdate = nil
		repo.Bump(d.ID)
	}

	err := execute(t, uc, Patch{PropertyID: ptr.Ptr(int64(2))})

	assert.ErrorIs(t, err, ErrConflict)
	got := stored(t, repo)
	assert.Equal(t, int64(1), got.Fields.PropertyID)
	assert.Equal(t, int64(10), got.Fields.RoomTypeID)
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{Remarks: ptr.Ptr("")}.IsEmpty())
}

func TestExecute_EmptyPatchDoesNotWrite(t *testing.T) {
	uc, client, repo := newUseCase(t)
	seedDraft(client, repo)

	resp, err := uc.Execute(context.Background(), &Request{UserID: userID, DraftID: "draft-1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Version)
	assert.Equal(t, int64(1), stored(t, repo).Version)
}

func TestExecute_SubmittingDraftIsLocked(t *testing.T) {
	uc, client, repo := newUseCase(t)
	d := seedDraft(client, repo)
	d.Phase = domain.PhaseSubmitting
	repo.Put(d)

	err := execute(t, uc, Patch{Remarks: ptr.Ptr("late")})

	assert.ErrorIs(t, err, ErrConflict)
}
