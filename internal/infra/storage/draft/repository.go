package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/pkg/psqlbuilder"
)

const table = "booking_drafts"

var columns = []string{
	"id",
	"user_id",
	"mode",
	"phase",
	"step",
	"booking_id",
	"fields",
	"reference_lists",
	"version",
	"created_at",
	"updated_at",
}

// Repository репозиторий черновиков бронирований
// Состояние формы хранится в JSONB, конкурентные изменения отсекаются по колонке version
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый черновик с версией 1
func (r *Repository) Create(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	fields, refs, err := encodeState(d)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"user_id",
			"mode",
			"phase",
			"step",
			"booking_id",
			"fields",
			"reference_lists",
			"version",
		).
		Values(
			d.ID,
			d.UserID,
			d.Mode,
			d.Phase,
			d.Step,
			d.BookingID,
			fields,
			refs,
			1,
		).
		Suffix("RETURNING version, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&d.Version, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return d, nil
}

// GetByID получает черновик по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.BookingDraft, error) {
	if !validID(id) {
		return nil, ErrDraftNotFound
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		d         domain.BookingDraft
		bookingID sql.NullInt64
		fields    []byte
		refs      []byte
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&d.UserID,
		&d.Mode,
		&d.Phase,
		&d.Step,
		&bookingID,
		&fields,
		&refs,
		&d.Version,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan draft: %v", ErrScanRow, err)
	}

	if bookingID.Valid {
		id := bookingID.Int64
		d.BookingID = &id
	}

	if err := json.Unmarshal(fields, &d.Fields); err != nil {
		return nil, fmt.Errorf("%w: GetByID - decode fields: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(refs, &d.References); err != nil {
		return nil, fmt.Errorf("%w: GetByID - decode reference lists: %v", ErrScanRow, err)
	}

	return &d, nil
}

// Update сохраняет черновик, если его версия не изменилась с момента чтения
// При успехе увеличивает d.Version. Если черновик успели изменить - ErrVersionConflict.
func (r *Repository) Update(ctx context.Context, d *domain.BookingDraft) error {
	if !validID(d.ID) {
		return ErrDraftNotFound
	}

	fields, refs, err := encodeState(d)
	if err != nil {
		return err
	}

	query, args, err := updateQuery(d, fields, refs).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var (
		version   int64
		updatedAt time.Time
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&version, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r.missingOrConflict(ctx, d.ID)
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	d.Version = version
	d.UpdatedAt = updatedAt
	return nil
}

// Delete удаляет черновик
func (r *Repository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrDraftNotFound
	}

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

// DeleteStale удаляет брошенные черновики, не менявшиеся с момента before
// Закрытая без отправки форма не удаляет черновик, его подбирает эта очистка
func (r *Repository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := deleteStaleQuery(before).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) missingOrConflict(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build exists query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrDraftNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - scan exists: %v", ErrScanRow, err)
	}
	return ErrVersionConflict
}

// updateQuery обновляет строку, только если версия в БД совпадает с прочитанной
func updateQuery(d *domain.BookingDraft, fields, refs []byte) squirrel.UpdateBuilder {
	return psqlbuilder.Update(table).
		Set("phase", d.Phase).
		Set("step", d.Step).
		Set("fields", fields).
		Set("reference_lists", refs).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": d.ID, "version": d.Version}).
		Suffix("RETURNING version, updated_at")
}

func deleteStaleQuery(before time.Time) squirrel.DeleteBuilder {
	return psqlbuilder.Delete(table).
		Where(squirrel.Lt{"updated_at": before})
}

// validID колонка id имеет тип UUID, строку другого вида PostgreSQL не примет
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func encodeState(d *domain.BookingDraft) ([]byte, []byte, error) {
	fields, err := json.Marshal(d.Fields)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: fields: %v", ErrEncode, err)
	}
	refs, err := json.Marshal(d.References)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reference lists: %v", ErrEncode, err)
	}
	return fields, refs, nil
}
