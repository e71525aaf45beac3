package submit_draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/infra/events"
	draftRepo "github.com/m04kA/SMC-ReservationDesk/internal/infra/storage/draft"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
)

// cleanupTimeout время на снятие захвата и завершающие шаги после вызова API
const cleanupTimeout = 5 * time.Second

// UseCase use case отправки черновика в API
type UseCase struct {
	draftRepo DraftRepository
	pmsClient PMSClient
	publisher EventPublisher
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// publisher и metrics могут быть nil
func NewUseCase(
	draftRepo DraftRepository,
	pmsClient PMSClient,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo: draftRepo,
		pmsClient: pmsClient,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute проверяет все шаги, захватывает черновик и отправляет бронирование
// Захват (фаза submitting + новая версия) не дает отправить один черновик дважды.
// При ошибке API захват снимается, черновик остается доступным для правки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	d, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("SubmitDraft: draft=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SubmitDraft: failed to get draft=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if !d.OwnedBy(req.UserID) {
		uc.logger.Warn("SubmitDraft: access denied for user=%d to draft=%s", req.UserID, req.DraftID)
		return nil, ErrAccessDenied
	}

	if d.IsSubmitting() {
		uc.logger.Warn("SubmitDraft: draft=%s is already being submitted", d.ID)
		return nil, ErrConflict
	}

	if err := domain.ValidateAll(d.Mode, d.Fields); err != nil {
		uc.logger.Info("SubmitDraft: draft=%s has invalid fields: %v", d.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	payload, err := BuildPayload(d)
	if err != nil {
		uc.logger.Warn("SubmitDraft: draft=%s cannot be formatted: %v", d.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := uc.claim(ctx, d); err != nil {
		return nil, err
	}

	booking, err := uc.send(ctx, d, payload)

	// Клиент мог отключиться во время вызова API, завершающие шаги не зависят от его ctx
	afterCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err != nil {
		uc.release(afterCtx, d)
		return nil, err
	}

	if err := uc.draftRepo.Delete(afterCtx, d.ID); err != nil && !errors.Is(err, draftRepo.ErrDraftNotFound) {
		// бронирование уже создано, черновик удалит очистка по TTL
		uc.logger.Error("SubmitDraft: booking id=%d saved but draft=%s not deleted: %v", booking.ID, d.ID, err)
	}

	totals := d.Totals()
	uc.publish(afterCtx, d, booking.ID, totals)

	if uc.metrics != nil {
		uc.metrics.IncDraftEvent("submitted", string(d.Mode))
	}
	uc.logger.Info("SubmitDraft: draft=%s submitted as booking id=%d, mode=%s", d.ID, booking.ID, d.Mode)

	return &Response{
		BookingID: booking.ID,
		Mode:      string(d.Mode),
		Totals:    totals,
	}, nil
}

func (uc *UseCase) claim(ctx context.Context, d *domain.BookingDraft) error {
	d.Phase = domain.PhaseSubmitting

	err := uc.draftRepo.Update(ctx, d)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, draftRepo.ErrVersionConflict):
		uc.logger.Warn("SubmitDraft: draft=%s modified concurrently", d.ID)
		return ErrConflict
	case errors.Is(err, draftRepo.ErrDraftNotFound):
		return ErrDraftNotFound
	default:
		uc.logger.Error("SubmitDraft: failed to claim draft=%s: %v", d.ID, err)
		return fmt.Errorf("%w: failed to claim draft: %v", ErrInternal, err)
	}
}

func (uc *UseCase) release(ctx context.Context, d *domain.BookingDraft) {
	d.Phase = domain.PhaseInteractive
	if err := uc.draftRepo.Update(ctx, d); err != nil {
		uc.logger.Error("SubmitDraft: failed to release draft=%s: %v", d.ID, err)
	}
}

func (uc *UseCase) send(ctx context.Context, d *domain.BookingDraft, payload *pmsapi.BookingPayload) (*pmsapi.Booking, error) {
	var (
		booking *pmsapi.Booking
		err     error
	)
	if d.IsEdit() {
		booking, err = uc.pmsClient.UpdateBooking(ctx, *d.BookingID, payload)
	} else {
		booking, err = uc.pmsClient.CreateBooking(ctx, payload)
	}
	if err == nil {
		if booking.ID == 0 && d.BookingID != nil {
			booking.ID = *d.BookingID
		}
		return booking, nil
	}

	switch {
	case errors.Is(err, pmsapi.ErrForbidden):
		uc.logger.Warn("SubmitDraft: API denied access for draft=%s", d.ID)
		return nil, ErrUnauthorized
	case errors.Is(err, pmsapi.ErrRejected):
		msg, _ := pmsapi.ServerMessage(err)
		uc.logger.Warn("SubmitDraft: API rejected draft=%s: %s", d.ID, msg)
		return nil, &RejectedError{Message: msg}
	case errors.Is(err, pmsapi.ErrNotFound):
		uc.logger.Warn("SubmitDraft: booking for draft=%s no longer exists", d.ID)
		return nil, ErrBookingNotFound
	default:
		uc.logger.Error("SubmitDraft: API call failed for draft=%s: %v", d.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}

func (uc *UseCase) publish(ctx context.Context, d *domain.BookingDraft, bookingID int64, totals domain.Totals) {
	if uc.publisher == nil {
		return
	}

	routingKey := events.RoutingBookingCreated
	if d.IsEdit() {
		routingKey = events.RoutingBookingUpdated
	}

	event := events.BookingSubmitted{
		BookingID:   bookingID,
		DraftID:     d.ID,
		UserID:      d.UserID,
		Mode:        string(d.Mode),
		PropertyID:  d.Fields.PropertyID,
		UnitID:      d.Fields.PropertyUnitID,
		CheckIn:     d.Fields.CheckInDate.Format(domain.DateFormat),
		CheckOut:    d.Fields.CheckOutDate.Format(domain.DateFormat),
		Total:       totals.Total,
		Outstanding: totals.Outstanding,
		SubmittedAt: time.Now().UTC(),
	}

	if err := uc.publisher.Publish(ctx, routingKey, event); err != nil {
		uc.logger.Error("SubmitDraft: failed to publish %s for booking id=%d: %v", routingKey, bookingID, err)
	}
}
