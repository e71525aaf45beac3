package pmsapi

import (
	"context"
	"fmt"
	"net/http"
)

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, bookingID int64) (*Booking, error) {
	var booking Booking
	path := fmt.Sprintf("/bookings/%d", bookingID)
	if err := c.get(ctx, "get_booking", path, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateBooking создает бронирование
func (c *Client) CreateBooking(ctx context.Context, payload *BookingPayload) (*Booking, error) {
	c.log.Info("Creating booking: property=%d, unit=%d, check_in=%s",
		payload.PropertyID, payload.PropertyUnitID, payload.CheckInDate)

	var booking Booking
	if err := c.do(ctx, "create_booking", http.MethodPost, "/bookings", payload, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBooking обновляет бронирование
func (c *Client) UpdateBooking(ctx context.Context, bookingID int64, payload *BookingPayload) (*Booking, error) {
	c.log.Info("Updating booking id=%d: unit=%d, check_in=%s",
		bookingID, payload.PropertyUnitID, payload.CheckInDate)

	var booking Booking
	path := fmt.Sprintf("/bookings/%d", bookingID)
	if err := c.do(ctx, "update_booking", http.MethodPut, path, payload, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateGuest создает гостя
func (c *Client) CreateGuest(ctx context.Context, guest *NewGuest) (*Guest, error) {
	c.log.Info("Creating guest: email=%s", guest.Email)

	var created Guest
	if err := c.do(ctx, "create_guest", http.MethodPost, "/guests", guest, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
