package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	draftRepo "github.com/m04kA/SMC-ReservationDesk/internal/infra/storage/draft"
	"github.com/m04kA/SMC-ReservationDesk/internal/service/drafts/models"
)

// Service сервис чтения и удаления черновиков
type Service struct {
	draftRepo DraftRepository
	metrics   Metrics
	logger    Logger
}

// NewService создает новый экземпляр сервиса черновиков
// metrics может быть nil
func NewService(draftRepo DraftRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		draftRepo: draftRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetByID получает черновик с пересчитанными суммами
// Пользователь видит только свои черновики
func (s *Service) GetByID(ctx context.Context, id string, userID int64) (*models.DraftResponse, error) {
	d, err := s.getOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainDraft(d, nil), nil
}

// Discard удаляет черновик (форма закрыта без отправки)
func (s *Service) Discard(ctx context.Context, id string, userID int64) error {
	d, err := s.getOwned(ctx, "Discard", id, userID)
	if err != nil {
		return err
	}

	if err := s.draftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return ErrDraftNotFound
		}
		s.logger.Error("Discard: repository error for draft=%s: %v", id, err)
		return fmt.Errorf("%w: Discard - repository error: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.IncDraftEvent("discarded", string(d.Mode))
	}
	s.logger.Info("Discard: draft=%s discarded by user=%d", id, userID)
	return nil
}

// CleanupStale удаляет черновики, не менявшиеся дольше ttl
func (s *Service) CleanupStale(ctx context.Context, ttl time.Duration) (int64, error) {
	before := time.Now().Add(-ttl)

	deleted, err := s.draftRepo.DeleteStale(ctx, before)
	if err != nil {
		s.logger.Error("CleanupStale: repository error: %v", err)
		return 0, fmt.Errorf("%w: CleanupStale - repository error: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("CleanupStale: removed %d drafts untouched since %s", deleted, before.Format(time.RFC3339))
	}
	return deleted, nil
}

// RunCleanup периодически удаляет брошенные черновики до отмены ctx
func (s *Service) RunCleanup(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = s.CleanupStale(ctx, ttl)
		}
	}
}

func (s *Service) getOwned(ctx context.Context, op, id string, userID int64) (*domain.BookingDraft, error) {
	d, err := s.draftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("%s: draft=%s not found", op, id)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("%s: repository error for draft=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if d.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to draft=%s", op, userID, id)
		return nil, ErrAccessDenied
	}

	return d, nil
}
