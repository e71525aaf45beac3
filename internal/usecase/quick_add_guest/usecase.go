package quick_add_guest

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	draftRepo "github.com/m04kA/SMC-ReservationDesk/internal/infra/storage/draft"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts/models"
)

// Гость уже создан в API, поэтому при конфликте версий черновик перечитывается и вставка повторяется
const saveAttempts = 3

// UseCase use case быстрого создания гостя из формы бронирования
type UseCase struct {
	draftRepo DraftRepository
	pmsClient PMSClient
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(draftRepo DraftRepository, pmsClient PMSClient, logger Logger) *UseCase {
	return &UseCase{
		draftRepo: draftRepo,
		pmsClient: pmsClient,
		logger:    logger,
	}
}

// Execute проверяет форму, создает гостя в API и записывает его первым гостем черновика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.DraftResponse, error) {
	if err := domain.Validator().Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, domain.NewValidationError(domain.StepGuests, err))
	}

	// Доступ проверяем до создания гостя
	if _, err := uc.getOwned(ctx, req); err != nil {
		return nil, err
	}

	created, err := uc.pmsClient.CreateGuest(ctx, &pmsapi.NewGuest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return nil, uc.mapClientError(req.DraftID, err)
	}
	uc.logger.Info("QuickAddGuest: guest id=%d created for draft=%s", created.ID, req.DraftID)

	guestID := created.ID
	guest := domain.Guest{
		GuestID:     &guestID,
		FirstName:   created.FirstName,
		LastName:    created.LastName,
		Email:       created.Email,
		PhoneNumber: created.PhoneNumber,
	}

	for attempt := 1; attempt <= saveAttempts; attempt++ {
		d, err := uc.getOwned(ctx, req)
		if err != nil {
			return nil, err
		}

		d.SetPrimaryGuest(guest)

		err = uc.draftRepo.Update(ctx, d)
		switch {
		case err == nil:
			return models.FromDomainDraft(d, nil), nil
		case errors.Is(err, draftRepo.ErrVersionConflict):
			uc.logger.Warn("QuickAddGuest: draft=%s modified concurrently, attempt %d", d.ID, attempt)
		case errors.Is(err, draftRepo.ErrDraftNotFound):
			return nil, ErrDraftNotFound
		default:
			uc.logger.Error("QuickAddGuest: failed to save draft=%s: %v", d.ID, err)
			return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
		}
	}

	uc.logger.Error("QuickAddGuest: guest id=%d created but draft=%s was not updated", guestID, req.DraftID)
	return nil, ErrConflict
}

func (uc *UseCase) getOwned(ctx context.Context, req *Request) (*domain.BookingDraft, error) {
	d, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("QuickAddGuest: draft=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("QuickAddGuest: failed to get draft=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if !d.OwnedBy(req.UserID) {
		uc.logger.Warn("QuickAddGuest: access denied for user=%d to draft=%s", req.UserID, req.DraftID)
		return nil, ErrAccessDenied
	}
	if d.IsSubmitting() {
		return nil, ErrConflict
	}

	return d, nil
}

func (uc *UseCase) mapClientError(draftID string, err error) error {
	switch {
	case errors.Is(err, pmsapi.ErrForbidden):
		uc.logger.Warn("QuickAddGuest: API denied access for draft=%s", draftID)
		return ErrUnauthorized
	case errors.Is(err, pmsapi.ErrRejected):
		msg, _ := pmsapi.ServerMessage(err)
		uc.logger.Warn("QuickAddGuest: API rejected guest for draft=%s: %s", draftID, msg)
		return fmt.Errorf("%w: %s", ErrRejected, msg)
	default:
		uc.logger.Error("QuickAddGuest: failed to create guest for draft=%s: %v", draftID, err)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
