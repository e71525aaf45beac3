package pmsapitest

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	draftRepo "github.com/m04kA/SMC-ReservationDesk/internal/infra/storage/draft"
)

// DraftRepository in-memory репозиторий черновиков с той же семантикой версий, что и PostgreSQL
type DraftRepository struct {
	mu     sync.Mutex
	drafts map[string]domain.BookingDraft

	// BeforeUpdate вызывается перед сравнением версий (для моделирования гонок)
	BeforeUpdate func(d *domain.BookingDraft)
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{drafts: map[string]domain.BookingDraft{}}
}

func (r *DraftRepository) Create(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	d.Version = 1
	d.CreatedAt = now
	d.UpdatedAt = now
	r.drafts[d.ID] = clone(d)
	return d, nil
}

func (r *DraftRepository) GetByID(ctx context.Context, id string) (*domain.BookingDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[id]
	if !ok {
		return nil, draftRepo.ErrDraftNotFound
	}
	c := clone(&d)
	return &c, nil
}

func (r *DraftRepository) Update(ctx context.Context, d *domain.BookingDraft) error {
	if r.BeforeUpdate != nil {
		r.BeforeUpdate(d)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.drafts[d.ID]
	if !ok {
		return draftRepo.ErrDraftNotFound
	}
	if stored.Version != d.Version {
		return draftRepo.ErrVersionConflict
	}

	d.Version++
	d.UpdatedAt = time.Now()
	r.drafts[d.ID] = clone(d)
	return nil
}

func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[id]; !ok {
		return draftRepo.ErrDraftNotFound
	}
	delete(r.drafts, id)
	return nil
}

func (r *DraftRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, d := range r.drafts {
		if d.UpdatedAt.Before(before) {
			delete(r.drafts, id)
			n++
		}
	}
	return n, nil
}

// Put кладет черновик как есть (для подготовки тестов)
func (r *DraftRepository) Put(d *domain.BookingDraft) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.Version == 0 {
		d.Version = 1
	}
	r.drafts[d.ID] = clone(d)
}

// Bump увеличивает версию сохраненного черновика, имитируя параллельную запись
func (r *DraftRepository) Bump(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.drafts[id]
	d.Version++
	r.drafts[id] = d
}

// Len количество черновиков
func (r *DraftRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}

// clone копирует черновик вместе со срезами, чтобы тесты не делили состояние с хранилищем
func clone(d *domain.BookingDraft) domain.BookingDraft {
	c := *d
	c.Fields.Guests = append([]domain.Guest(nil), d.Fields.Guests...)
	c.Fields.Vehicles = append([]domain.Vehicle(nil), d.Fields.Vehicles...)
	c.Fields.ItemsProvided = append([]domain.Item(nil), d.Fields.ItemsProvided...)
	c.Fields.Charges = append([]domain.Charge(nil), d.Fields.Charges...)
	c.References.Properties = append([]domain.Property(nil), d.References.Properties...)
	c.References.RoomTypes = append([]domain.RoomType(nil), d.References.RoomTypes...)
	c.References.Units = append([]domain.Unit(nil), d.References.Units...)
	c.References.Amenities = append([]domain.Amenity(nil), d.References.Amenities...)
	if d.BookingID != nil {
		id := *d.BookingID
		c.BookingID = &id
	}
	return c
}
