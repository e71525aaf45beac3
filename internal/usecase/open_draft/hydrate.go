package open_draft

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
)

// Значения новой формы
const (
	defaultStatus         = "Pending"
	defaultBookingSource  = "Direct"
	defaultBookingType    = "Nightly"
	defaultNumberOfGuests = 1
)

// newFields поля пустой формы создания
func newFields() domain.DraftFields {
	return domain.DraftFields{
		NumberOfGuests: defaultNumberOfGuests,
		Status:         defaultStatus,
		BookingSource:  defaultBookingSource,
		BookingType:    defaultBookingType,
	}
}

// hydrateFields переносит данные бронирования в поля формы (кроме каскадных выборов)
// Коды переводятся в метки; неизвестный код оставляет метку пустой и возвращает уведомление
func hydrateFields(b *pmsapi.Booking) (domain.DraftFields, []string, error) {
	var notices []string

	checkIn, err := parseDate(b.CheckInDate)
	if err != nil {
		return domain.DraftFields{}, nil, fmt.Errorf("check_in_date: %w", err)
	}
	checkOut, err := parseDate(b.CheckOutDate)
	if err != nil {
		return domain.DraftFields{}, nil, fmt.Errorf("check_out_date: %w", err)
	}

	status, ok := domain.BookingStatuses.Label(b.Status)
	if !ok {
		notices = append(notices, fmt.Sprintf("неизвестный код статуса %d", b.Status))
	}
	source, ok := domain.BookingChannels.Label(b.BookingSource)
	if !ok {
		notices = append(notices, fmt.Sprintf("неизвестный код канала %d", b.BookingSource))
	}
	bookingType, ok := domain.BookingTypes.Label(b.BookingType)
	if !ok {
		notices = append(notices, fmt.Sprintf("неизвестный код типа бронирования %d", b.BookingType))
	}

	guests := make([]domain.Guest, 0, len(b.Guests))
	for _, g := range b.Guests {
		guest := domain.Guest{
			FirstName:    g.FirstName,
			LastName:     g.LastName,
			Nationality:  g.Nationality,
			PhoneNumber:  g.PhoneNumber,
			State:        g.State,
			Email:        g.Email,
			ICPassportNo: g.ICPassportNo,
		}
		if g.ID > 0 {
			id := g.ID
			guest.GuestID = &id
		}
		guests = append(guests, guest)
	}

	vehicles := make([]domain.Vehicle, 0, len(b.Vehicles))
	for _, v := range b.Vehicles {
		vehicles = append(vehicles, domain.Vehicle{Number: v.Number})
	}

	items := make([]domain.Item, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, domain.Item{Name: it.Name})
	}

	charges := make([]domain.Charge, 0, len(b.Charges))
	for _, c := range b.Charges {
		charges = append(charges, domain.Charge{ChargeReferenceID: c.ChargeReferenceID, Amount: c.Amount})
	}

	return domain.DraftFields{
		CheckInDate:         checkIn,
		CheckOutDate:        checkOut,
		RawRoomRate:         b.RawRoomRate,
		RoomRateModifier:    b.RoomRate,
		NumberOfGuests:      b.NumberOfGuests,
		Status:              status,
		BookingSource:       source,
		BookingType:         bookingType,
		Remarks:             b.Remarks,
		Guests:              guests,
		EmergencyContact:    b.EmergencyContact,
		Vehicles:            vehicles,
		ItemsProvided:       items,
		Charges:             charges,
		PaymentMethod:       b.PaymentMethod,
		AmountPaid:          b.AmountPaid,
		DepositNotCollected: b.DepositNotCollected,
	}, notices, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	// API может вернуть как дату, так и полный timestamp
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
