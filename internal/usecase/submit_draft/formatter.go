package submit_draft

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
)

// BuildPayload собирает тело запроса к API из черновика
// Метки переводятся в коды, начисления с нулевой суммой отбрасываются,
// amount_due равен остатку, статус платежа 0 при создании и 1 при обновлении
func BuildPayload(d *domain.BookingDraft) (*pmsapi.BookingPayload, error) {
	f := d.Fields
	totals := d.Totals()

	status, err := domain.BookingStatuses.Code(f.Status)
	if err != nil {
		return nil, err
	}
	source, err := domain.BookingChannels.Code(f.BookingSource)
	if err != nil {
		return nil, err
	}
	bookingType, err := domain.BookingTypes.Code(f.BookingType)
	if err != nil {
		return nil, err
	}

	if f.CheckInDate.IsZero() || f.CheckOutDate.IsZero() {
		return nil, fmt.Errorf("%w: stay dates are not set", domain.ErrValidation)
	}

	guests := make([]pmsapi.Guest, 0, len(f.Guests))
	for _, g := range f.Guests {
		guest := pmsapi.Guest{
			FirstName:    g.FirstName,
			LastName:     g.LastName,
			Nationality:  g.Nationality,
			PhoneNumber:  g.PhoneNumber,
			State:        g.State,
			Email:        g.Email,
			ICPassportNo: g.ICPassportNo,
		}
		if g.GuestID != nil {
			guest.ID = *g.GuestID
		}
		guests = append(guests, guest)
	}

	vehicles := make([]pmsapi.Vehicle, 0, len(f.Vehicles))
	for _, v := range f.Vehicles {
		vehicles = append(vehicles, pmsapi.Vehicle{Number: v.Number})
	}

	items := make([]pmsapi.Item, 0, len(f.ItemsProvided))
	for _, it := range f.ItemsProvided {
		items = append(items, pmsapi.Item{Name: it.Name})
	}

	charges := make([]pmsapi.Charge, 0, len(f.Charges))
	for _, c := range f.Charges {
		if c.Amount == 0 {
			continue
		}
		charges = append(charges, pmsapi.Charge{ChargeReferenceID: c.ChargeReferenceID, Amount: c.Amount})
	}

	paymentStatus := domain.PaymentStatusCreated
	if d.IsEdit() {
		paymentStatus = domain.PaymentStatusUpdated
	}

	return &pmsapi.BookingPayload{
		PropertyID:          f.PropertyID,
		RoomTypeID:          f.RoomTypeID,
		PropertyUnitID:      f.PropertyUnitID,
		CheckInDate:         f.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:        f.CheckOutDate.Format(domain.DateFormat),
		Nights:              totals.Nights,
		RawRoomRate:         f.RawRoomRate,
		RoomRate:            f.RoomRateModifier,
		NumberOfGuests:      f.NumberOfGuests,
		Status:              status,
		BookingSource:       source,
		BookingType:         bookingType,
		Remarks:             f.Remarks,
		Guests:              guests,
		EmergencyContact:    f.EmergencyContact,
		Vehicles:            vehicles,
		Items:               items,
		Charges:             charges,
		TotalAmount:         totals.Total,
		AmountDue:           totals.Outstanding,
		DepositNotCollected: f.DepositNotCollected,
		Payment: pmsapi.Payment{
			PaymentMethod: f.PaymentMethod,
			Amount:        domain.PaymentAmount(d.Mode, f),
			Status:        paymentStatus,
		},
	}, nil
}
