package list_references

import (
	"context"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
)

type ReferenceService interface {
	ListProperties(ctx context.Context) ([]domain.Property, error)
	ListRoomTypes(ctx context.Context, propertyID int64) ([]domain.RoomType, error)
	ListUnits(ctx context.Context, roomTypeID int64) ([]domain.Unit, error)
	ListAmenities(ctx context.Context, roomTypeID int64) ([]domain.Amenity, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
