package update_draft

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
	updateDraft "github.com/m04kA/SMC-ReservationDesk/internal/usecase/update_draft"
)

// UpdateDraftRequest HTTP request model
// Передаются только изменяемые поля, даты в формате YYYY-MM-DD ("" - очистить)
type UpdateDraftRequest struct {
	Version int64 `json:"version,omitempty"`

	PropertyID     *int64 `json:"property_id,omitempty"`
	RoomTypeID     *int64 `json:"room_type_id,omitempty"`
	PropertyUnitID *int64 `json:"property_unit_id,omitempty"`

	CheckInDate  *string `json:"check_in_date,omitempty"`
	CheckOutDate *string `json:"check_out_date,omitempty"`

	RawRoomRate      *float64 `json:"raw_room_rate,omitempty"`
	RoomRateModifier *float64 `json:"room_rate_modifier,omitempty"`
	NumberOfGuests   *int     `json:"number_of_guests,omitempty"`

	Status        *string `json:"status,omitempty"`
	BookingSource *string `json:"booking_source,omitempty"`
	BookingType   *string `json:"booking_type,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`

	Guests           *[]domain.Guest   `json:"guests,omitempty"`
	EmergencyContact *string           `json:"emergency_contact,omitempty"`
	Vehicles         *[]domain.Vehicle `json:"vehicles,omitempty"`
	ItemsProvided    *[]domain.Item    `json:"items_provided,omitempty"`
	Charges          *[]domain.Charge  `json:"charges,omitempty"`

	PaymentMethod       *string  `json:"payment_method,omitempty"`
	AmountPaid          *float64 `json:"amount_paid,omitempty"`
	DepositNotCollected *bool    `json:"deposit_not_collected,omitempty"`
	NewPaymentAmount    *float64 `json:"new_payment_amount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateDraftRequest) ToUseCaseRequest(userID int64, draftID string) (*updateDraft.Request, error) {
	checkIn, err := parseDate(r.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("check_in_date: %w", err)
	}
	checkOut, err := parseDate(r.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("check_out_date: %w", err)
	}

	return &updateDraft.Request{
		UserID:  userID,
		DraftID: draftID,
		Version: r.Version,
		Patch: updateDraft.Patch{
			PropertyID:          r.PropertyID,
			RoomTypeID:          r.RoomTypeID,
			PropertyUnitID:      r.PropertyUnitID,
			CheckInDate:         checkIn,
			CheckOutDate:        checkOut,
			RawRoomRate:         r.RawRoomRate,
			RoomRateModifier:    r.RoomRateModifier,
			NumberOfGuests:      r.NumberOfGuests,
			Status:              r.Status,
			BookingSource:       r.BookingSource,
			BookingType:         r.BookingType,
			Remarks:             r.Remarks,
			Guests:              r.Guests,
			EmergencyContact:    r.EmergencyContact,
			Vehicles:            r.Vehicles,
			ItemsProvided:       r.ItemsProvided,
			Charges:             r.Charges,
			PaymentMethod:       r.PaymentMethod,
			AmountPaid:          r.AmountPaid,
			DepositNotCollected: r.DepositNotCollected,
			NewPaymentAmount:    r.NewPaymentAmount,
		},
	}, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	if *s == "" {
		return &time.Time{}, nil
	}
	t, err := time.Parse(domain.DateFormat, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
