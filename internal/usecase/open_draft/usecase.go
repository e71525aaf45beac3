package open_draft

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts/models"
)

// UseCase use case открытия черновика бронирования
type UseCase struct {
	draftRepo   DraftRepository
	pmsClient   PMSClient
	loader      ReferenceLoader
	idGenerator IDGenerator
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	draftRepo DraftRepository,
	pmsClient PMSClient,
	loader ReferenceLoader,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:   draftRepo,
		pmsClient:   pmsClient,
		loader:      loader,
		idGenerator: &UUIDGenerator{},
		metrics:     metrics,
		logger:      logger,
	}
}

// UUIDGenerator генератор ID черновиков для production
type UUIDGenerator struct{}

// NewID возвращает новый UUID v4
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Execute открывает черновик
// Без BookingID создается пустая форма, с BookingID форма заполняется данными бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.DraftResponse, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.BookingID != nil && *req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	d := &domain.BookingDraft{
		ID:     uc.idGenerator.NewID(),
		UserID: req.UserID,
		Step:   domain.StepReservation,
	}

	var (
		notices []string
		err     error
	)
	if req.BookingID == nil {
		uc.logger.Info("OpenDraft: user=%d opens new booking form, draft=%s", req.UserID, d.ID)
		notices = uc.openCreate(ctx, d)
	} else {
		uc.logger.Info("OpenDraft: user=%d opens booking id=%d for edit, draft=%s", req.UserID, *req.BookingID, d.ID)
		notices, err = uc.openEdit(ctx, d, *req.BookingID)
		if err != nil {
			return nil, err
		}
	}

	created, err := uc.draftRepo.Create(ctx, d)
	if err != nil {
		uc.logger.Error("OpenDraft: failed to save draft=%s: %v", d.ID, err)
		return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncDraftEvent("opened", string(created.Mode))
	}
	uc.logger.Info("OpenDraft: draft=%s created, mode=%s, notices=%d", created.ID, created.Mode, len(notices))

	return models.FromDomainDraft(created, notices), nil
}

func (uc *UseCase) openCreate(ctx context.Context, d *domain.BookingDraft) []string {
	d.Mode = domain.ModeCreate
	d.Phase = domain.PhaseInteractive
	d.Fields = newFields()

	return uc.loader.LoadCore(ctx, d)
}

// openEdit загружает бронирование и выставляет каскадные поля в фазе hydrating,
// поэтому загрузка категорий и юнитов не сбрасывает уже выбранные значения
func (uc *UseCase) openEdit(ctx context.Context, d *domain.BookingDraft, bookingID int64) ([]string, error) {
	booking, err := uc.pmsClient.GetBooking(ctx, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, pmsapi.ErrNotFound):
			uc.logger.Warn("OpenDraft: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, pmsapi.ErrForbidden):
			uc.logger.Warn("OpenDraft: access to booking id=%d forbidden by API", bookingID)
			return nil, ErrUnauthorized
		default:
			uc.logger.Error("OpenDraft: failed to get booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
	}

	fields, notices, err := hydrateFields(booking)
	if err != nil {
		uc.logger.Error("OpenDraft: booking id=%d has malformed data: %v", bookingID, err)
		return nil, fmt.Errorf("%w: malformed booking: %v", ErrInternal, err)
	}

	d.Mode = domain.ModeEdit
	d.Phase = domain.PhaseHydrating
	d.BookingID = &bookingID
	d.Fields = fields

	notices = append(notices, uc.loader.LoadCore(ctx, d)...)

	// В фазе hydrating выбор не возвращает ошибок и не сбрасывает зависимые поля
	if reload, _ := d.SelectProperty(booking.PropertyID); reload {
		notices = append(notices, uc.loader.LoadRoomTypes(ctx, d)...)
	}
	if reload, _ := d.SelectRoomType(booking.RoomTypeID); reload {
		notices = append(notices, uc.loader.LoadUnits(ctx, d)...)
	}
	_ = d.SelectUnit(booking.PropertyUnitID)

	d.FinishHydration()

	return notices, nil
}
