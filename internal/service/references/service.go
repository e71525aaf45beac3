package references

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
)

// Service сервис чтения справочников для выпадающих списков формы
type Service struct {
	client PMSClient
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(client PMSClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// ListProperties получает список объектов
func (s *Service) ListProperties(ctx context.Context) ([]domain.Property, error) {
	properties, err := s.client.ListProperties(ctx)
	if err != nil {
		s.logger.Error("ListProperties: %v", err)
		return nil, mapClientError(err)
	}
	return properties, nil
}

// ListRoomTypes получает категории номеров объекта
func (s *Service) ListRoomTypes(ctx context.Context, propertyID int64) ([]domain.RoomType, error) {
	if propertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	roomTypes, err := s.client.ListRoomTypes(ctx, propertyID)
	if err != nil {
		s.logger.Error("ListRoomTypes: property=%d: %v", propertyID, err)
		return nil, mapClientError(err)
	}
	return roomTypes, nil
}

// ListUnits получает юниты категории номеров
func (s *Service) ListUnits(ctx context.Context, roomTypeID int64) ([]domain.Unit, error) {
	if roomTypeID <= 0 {
		return nil, fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}

	units, err := s.client.ListUnits(ctx, roomTypeID)
	if err != nil {
		s.logger.Error("ListUnits: room_type=%d: %v", roomTypeID, err)
		return nil, mapClientError(err)
	}
	return units, nil
}

// ListAmenities получает удобства категории номеров
func (s *Service) ListAmenities(ctx context.Context, roomTypeID int64) ([]domain.Amenity, error) {
	if roomTypeID <= 0 {
		return nil, fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}

	amenities, err := s.client.ListAmenities(ctx, roomTypeID)
	if err != nil {
		s.logger.Error("ListAmenities: room_type=%d: %v", roomTypeID, err)
		return nil, mapClientError(err)
	}
	return amenities, nil
}

func mapClientError(err error) error {
	switch {
	case errors.Is(err, pmsapi.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, pmsapi.ErrForbidden):
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
