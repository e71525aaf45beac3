package references

import (
	"context"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
)

// PMSClient интерфейс клиента API управления объектами (справочники)
type PMSClient interface {
	ListProperties(ctx context.Context) ([]domain.Property, error)
	ListRoomTypes(ctx context.Context, propertyID int64) ([]domain.RoomType, error)
	ListUnits(ctx context.Context, roomTypeID int64) ([]domain.Unit, error)
	ListAmenities(ctx context.Context, roomTypeID int64) ([]domain.Amenity, error)
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	ListBookingTypeReferences(ctx context.Context) ([]domain.BookingTypeReference, error)
	ListChargeReferences(ctx context.Context) ([]domain.ChargeReference, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
