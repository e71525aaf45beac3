package navigate_step

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	draftRepo "github.com/m04kA/SMC-ReservationDesk/internal/infra/storage/draft"
	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts/models"
)

// UseCase use case перехода между шагами мастера
type UseCase struct {
	draftRepo DraftRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(draftRepo DraftRepository, logger Logger) *UseCase {
	return &UseCase{
		draftRepo: draftRepo,
		logger:    logger,
	}
}

// Execute переходит на соседний шаг
// Вперёд - только если поля текущего шага валидны (иначе шаг не меняется и ничего не сохраняется).
// Назад - без проверки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.DraftResponse, error) {
	if req.Direction != DirectionNext && req.Direction != DirectionBack {
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, req.Direction)
	}

	d, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("NavigateStep: draft=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("NavigateStep: failed to get draft=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if !d.OwnedBy(req.UserID) {
		uc.logger.Warn("NavigateStep: access denied for user=%d to draft=%s", req.UserID, req.DraftID)
		return nil, ErrAccessDenied
	}

	if d.IsSubmitting() {
		uc.logger.Warn("NavigateStep: draft=%s is being submitted", d.ID)
		return nil, ErrConflict
	}

	from := d.Step
	if req.Direction == DirectionNext {
		err = d.Advance()
	} else {
		err = d.Back()
	}

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidation):
		uc.logger.Info("NavigateStep: draft=%s step %d has invalid fields: %v", d.ID, from, err)
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, domain.ErrNoNextStep), errors.Is(err, domain.ErrNoPreviousStep):
		return nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := uc.draftRepo.Update(ctx, d); err != nil {
		switch {
		case errors.Is(err, draftRepo.ErrVersionConflict):
			uc.logger.Warn("NavigateStep: draft=%s modified concurrently", d.ID)
			return nil, ErrConflict
		case errors.Is(err, draftRepo.ErrDraftNotFound):
			return nil, ErrDraftNotFound
		default:
			uc.logger.Error("NavigateStep: failed to save draft=%s: %v", d.ID, err)
			return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("NavigateStep: draft=%s moved %s from step %d to %d", d.ID, req.Direction, from, d.Step)
	return models.FromDomainDraft(d, nil), nil
}
