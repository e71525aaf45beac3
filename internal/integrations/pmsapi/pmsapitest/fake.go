// Package pmsapitest содержит in-memory реализацию клиента API для тестов
package pmsapitest

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
)

// Client фейковый клиент API управления объектами
// Ошибки задаются по имени операции через Fail
type Client struct {
	mu sync.Mutex

	Properties       []domain.Property
	RoomTypes        map[int64][]domain.RoomType // по property_id
	Units            map[int64][]domain.Unit     // по room_type_id
	Amenities        map[int64][]domain.Amenity  // по room_type_id
	Channels         []domain.Channel
	BookingTypes     []domain.BookingTypeReference
	ChargeReferences []domain.ChargeReference
	Bookings         map[int64]*pmsapi.Booking

	NextBookingID int64
	NextGuestID   int64

	Created  []*pmsapi.BookingPayload
	Updated  map[int64]*pmsapi.BookingPayload
	NewGuest []*pmsapi.NewGuest
	Calls    []string

	errs map[string]error
}

// New создает фейковый клиент с небольшим набором справочников:
// объект 1 (категории 10, 11), объект 2 (категория 20)
func New() *Client {
	return &Client{
		Properties: []domain.Property{{ID: 1, Name: "Seaside Residence"}, {ID: 2, Name: "Hilltop Lodge"}},
		RoomTypes: map[int64][]domain.RoomType{
			1: {{ID: 10, PropertyID: 1, Name: "Deluxe King", BasePrice: 100}, {ID: 11, PropertyID: 1, Name: "Studio", BasePrice: 80}},
			2: {{ID: 20, PropertyID: 2, Name: "Chalet", BasePrice: 250}},
		},
		Units: map[int64][]domain.Unit{
			10: {{ID: 100, RoomTypeID: 10, Name: "A-101"}, {ID: 101, RoomTypeID: 10, Name: "A-102"}},
			11: {{ID: 110, RoomTypeID: 11, Name: "B-201"}},
			20: {{ID: 200, RoomTypeID: 20, Name: "C-1"}},
		},
		Amenities: map[int64][]domain.Amenity{
			10: {{ID: 1, Name: "Wi-Fi"}},
		},
		Channels:         []domain.Channel{{ID: 1, Name: "Direct"}, {ID: 3, Name: "Airbnb"}},
		BookingTypes:     []domain.BookingTypeReference{{ID: 1, Name: "Nightly"}},
		ChargeReferences: []domain.ChargeReference{{ID: 1, Name: "Cleaning fee", DefaultAmount: 50}},
		Bookings:         map[int64]*pmsapi.Booking{},
		NextBookingID:    500,
		NextGuestID:      900,
		Updated:          map[int64]*pmsapi.BookingPayload{},
		errs:             map[string]error{},
	}
}

// Fail заставляет операцию возвращать err
func (c *Client) Fail(operation string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[operation] = err
}

// CallCount количество вызовов операции
func (c *Client) CallCount(operation string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, call := range c.Calls {
		if call == operation {
			n++
		}
	}
	return n
}

func (c *Client) call(operation string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls = append(c.Calls, operation)
	return c.errs[operation]
}

func (c *Client) ListProperties(ctx context.Context) ([]domain.Property, error) {
	if err := c.call("list_properties"); err != nil {
		return nil, err
	}
	return c.Properties, nil
}

func (c *Client) ListRoomTypes(ctx context.Context, propertyID int64) ([]domain.RoomType, error) {
	if err := c.call("list_room_types"); err != nil {
		return nil, err
	}
	return c.RoomTypes[propertyID], nil
}

func (c *Client) ListUnits(ctx context.Context, roomTypeID int64) ([]domain.Unit, error) {
	if err := c.call("list_units"); err != nil {
		return nil, err
	}
	return c.Units[roomTypeID], nil
}

func (c *Client) ListAmenities(ctx context.Context, roomTypeID int64) ([]domain.Amenity, error) {
	if err := c.call("list_amenities"); err != nil {
		return nil, err
	}
	return c.Amenities[roomTypeID], nil
}

func (c *Client) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	if err := c.call("list_channels"); err != nil {
		return nil, err
	}
	return c.Channels, nil
}

func (c *Client) ListBookingTypeReferences(ctx context.Context) ([]domain.BookingTypeReference, error) {
	if err := c.call("list_booking_type_references"); err != nil {
		return nil, err
	}
	return c.BookingTypes, nil
}

func (c *Client) ListChargeReferences(ctx context.Context) ([]domain.ChargeReference, error) {
	if err := c.call("list_charge_references"); err != nil {
		return nil, err
	}
	return c.ChargeReferences, nil
}

func (c *Client) GetBooking(ctx context.Context, bookingID int64) (*pmsapi.Booking, error) {
	if err := c.call("get_booking"); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.Bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("%w: booking id=%d", pmsapi.ErrNotFound, bookingID)
	}
	return b, nil
}

func (c *Client) CreateBooking(ctx context.Context, payload *pmsapi.BookingPayload) (*pmsapi.Booking, error) {
	if err := c.call("create_booking"); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Created = append(c.Created, payload)
	id := c.NextBookingID
	c.NextBookingID++
	return &pmsapi.Booking{ID: id, PropertyUnitID: payload.PropertyUnitID}, nil
}

func (c *Client) UpdateBooking(ctx context.Context, bookingID int64, payload *pmsapi.BookingPayload) (*pmsapi.Booking, error) {
	if err := c.call("update_booking"); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Updated[bookingID] = payload
	return &pmsapi.Booking{ID: bookingID, PropertyUnitID: payload.PropertyUnitID}, nil
}

func (c *Client) CreateGuest(ctx context.Context, guest *pmsapi.NewGuest) (*pmsapi.Guest, error) {
	if err := c.call("create_guest"); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.NewGuest = append(c.NewGuest, guest)
	id := c.NextGuestID
	c.NextGuestID++
	return &pmsapi.Guest{
		ID:          id,
		FirstName:   guest.FirstName,
		LastName:    guest.LastName,
		Email:       guest.Email,
		PhoneNumber: guest.PhoneNumber,
	}, nil
}
