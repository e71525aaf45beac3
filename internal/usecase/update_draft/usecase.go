package update_draft

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	draftRepo "github.com/m04kA/SMC-ReservationDesk/internal/infra/storage/draft"
	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts/models"
)

// UseCase use case изменения полей черновика с каскадным сбросом зависимых выборов
type UseCase struct {
	draftRepo DraftRepository
	loader    ReferenceLoader
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(draftRepo DraftRepository, loader ReferenceLoader, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		draftRepo: draftRepo,
		loader:    loader,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute применяет изменения к черновику
// Порядок: объект -> категория -> юнит -> остальные поля, чтобы каскад видел актуальные справочники.
// Сохранение защищено версией: если за время загрузки справочников черновик изменился, возвращается ErrConflict
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.DraftResponse, error) {
	if req.UserID <= 0 || req.DraftID == "" {
		return nil, fmt.Errorf("%w: userID and draftID are required", ErrInvalidInput)
	}

	d, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("UpdateDraft: draft=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("UpdateDraft: failed to get draft=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if !d.OwnedBy(req.UserID) {
		uc.logger.Warn("UpdateDraft: access denied for user=%d to draft=%s", req.UserID, req.DraftID)
		return nil, ErrAccessDenied
	}

	if d.IsSubmitting() {
		uc.logger.Warn("UpdateDraft: draft=%s is being submitted", d.ID)
		return nil, ErrConflict
	}

	if req.Version != 0 && req.Version != d.Version {
		uc.logger.Warn("UpdateDraft: draft=%s stale version %d, current %d", d.ID, req.Version, d.Version)
		return nil, ErrConflict
	}

	if req.Patch.IsEmpty() {
		return models.FromDomainDraft(d, nil), nil
	}

	notices, err := uc.applySelections(ctx, d, req.Patch)
	if err != nil {
		uc.logger.Warn("UpdateDraft: draft=%s rejected selection: %v", d.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := applyFields(d, req.Patch); err != nil {
		uc.logger.Warn("UpdateDraft: draft=%s rejected fields: %v", d.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := uc.draftRepo.Update(ctx, d); err != nil {
		switch {
		case errors.Is(err, draftRepo.ErrVersionConflict):
			uc.logger.Warn("UpdateDraft: draft=%s modified concurrently", d.ID)
			if uc.metrics != nil {
				uc.metrics.IncDraftEvent("conflict", string(d.Mode))
			}
			return nil, ErrConflict
		case errors.Is(err, draftRepo.ErrDraftNotFound):
			return nil, ErrDraftNotFound
		default:
			uc.logger.Error("UpdateDraft: failed to save draft=%s: %v", d.ID, err)
			return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
		}
	}

	if uc.metrics != nil {
		uc.metrics.IncDraftEvent("updated", string(d.Mode))
	}
	uc.logger.Info("UpdateDraft: draft=%s saved, version=%d", d.ID, d.Version)

	return models.FromDomainDraft(d, notices), nil
}

func (uc *UseCase) applySelections(ctx context.Context, d *domain.BookingDraft, p Patch) ([]string, error) {
	var notices []string

	if p.PropertyID != nil {
		reload, err := d.SelectProperty(*p.PropertyID)
		if err != nil {
			return nil, err
		}
		if reload {
			notices = append(notices, uc.loader.LoadRoomTypes(ctx, d)...)
		}
	}

	if p.RoomTypeID != nil {
		reload, err := d.SelectRoomType(*p.RoomTypeID)
		if err != nil {
			return nil, err
		}
		if reload {
			notices = append(notices, uc.loader.LoadUnits(ctx, d)...)
		}
	}

	if p.PropertyUnitID != nil {
		if err := d.SelectUnit(*p.PropertyUnitID); err != nil {
			return nil, err
		}
	}

	return notices, nil
}

// applyFields переносит некаскадные поля; неизвестные метки отклоняются сразу
func applyFields(d *domain.BookingDraft, p Patch) error {
	f := &d.Fields

	if err := checkLabel(domain.BookingStatuses, p.Status); err != nil {
		return err
	}
	if err := checkLabel(domain.BookingChannels, p.BookingSource); err != nil {
		return err
	}
	if err := checkLabel(domain.BookingTypes, p.BookingType); err != nil {
		return err
	}

	set(&f.CheckInDate, p.CheckInDate)
	set(&f.CheckOutDate, p.CheckOutDate)
	set(&f.RawRoomRate, p.RawRoomRate)
	set(&f.RoomRateModifier, p.RoomRateModifier)
	set(&f.NumberOfGuests, p.NumberOfGuests)
	set(&f.Status, p.Status)
	set(&f.BookingSource, p.BookingSource)
	set(&f.BookingType, p.BookingType)
	set(&f.Remarks, p.Remarks)
	set(&f.Guests, p.Guests)
	set(&f.EmergencyContact, p.EmergencyContact)
	set(&f.Vehicles, p.Vehicles)
	set(&f.ItemsProvided, p.ItemsProvided)
	set(&f.Charges, p.Charges)
	set(&f.PaymentMethod, p.PaymentMethod)
	set(&f.AmountPaid, p.AmountPaid)
	set(&f.DepositNotCollected, p.DepositNotCollected)
	set(&f.NewPaymentAmount, p.NewPaymentAmount)

	// amount_due всегда равен остатку
	f.AmountDue = d.Totals().Outstanding

	return nil
}

func checkLabel(table domain.LabelTable, label *string) error {
	if label == nil || *label == "" {
		return nil
	}
	_, err := table.Code(*label)
	return err
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
