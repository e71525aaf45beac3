package pmsapi

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
)

// ListProperties получает список объектов размещения
func (c *Client) ListProperties(ctx context.Context) ([]domain.Property, error) {
	var properties []domain.Property
	if err := c.get(ctx, "list_properties", "/properties", &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// ListRoomTypes получает категории номеров объекта
func (c *Client) ListRoomTypes(ctx context.Context, propertyID int64) ([]domain.RoomType, error) {
	var roomTypes []domain.RoomType
	path := fmt.Sprintf("/properties/%d/room-types", propertyID)
	if err := c.get(ctx, "list_room_types", path, &roomTypes); err != nil {
		return nil, err
	}
	return roomTypes, nil
}

// ListUnits получает юниты категории номеров
func (c *Client) ListUnits(ctx context.Context, roomTypeID int64) ([]domain.Unit, error) {
	var units []domain.Unit
	path := fmt.Sprintf("/room-types/%d/units", roomTypeID)
	if err := c.get(ctx, "list_units", path, &units); err != nil {
		return nil, err
	}
	return units, nil
}

// ListAmenities получает удобства категории номеров
func (c *Client) ListAmenities(ctx context.Context, roomTypeID int64) ([]domain.Amenity, error) {
	var amenities []domain.Amenity
	path := fmt.Sprintf("/room-types/%d/amenities", roomTypeID)
	if err := c.get(ctx, "list_amenities", path, &amenities); err != nil {
		return nil, err
	}
	return amenities, nil
}

func (c *Client) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	var channels []domain.Channel
	if err := c.get(ctx, "list_channels", "/channels", &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (c *Client) ListBookingTypeReferences(ctx context.Context) ([]domain.BookingTypeReference, error) {
	var refs []domain.BookingTypeReference
	if err := c.get(ctx, "list_booking_type_references", "/booking-type-references", &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

func (c *Client) ListChargeReferences(ctx context.Context) ([]domain.ChargeReference, error) {
	var refs []domain.ChargeReference
	if err := c.get(ctx, "list_charge_references", "/charge-references", &refs); err != nil {
		return nil, err
	}
	return refs, nil
}
