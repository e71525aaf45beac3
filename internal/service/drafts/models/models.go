package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
)

// DraftResponse черновик с производными суммами и уведомлениями
type DraftResponse struct {
	ID        string `json:"id"`
	Mode      string `json:"mode"`
	Phase     string `json:"phase"`
	Step      int    `json:"step"`
	BookingID *int64 `json:"bookingId,omitempty"`
	Version   int64  `json:"version"`

	Fields     FieldsResponse           `json:"fields"`
	References domain.ReferenceSnapshot `json:"references"`
	Totals     domain.Totals            `json:"totals"`
	Options    OptionsResponse          `json:"options"`

	// Уведомления о неудачной загрузке справочников (не сохраняются)
	Notices []string `json:"notices,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FieldsResponse поля формы, даты в формате YYYY-MM-DD
type FieldsResponse struct {
	PropertyID     int64 `json:"property_id"`
	RoomTypeID     int64 `json:"room_type_id"`
	PropertyUnitID int64 `json:"property_unit_id"`

	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`

	RawRoomRate      float64 `json:"raw_room_rate"`
	RoomRateModifier float64 `json:"room_rate_modifier"`
	NumberOfGuests   int     `json:"number_of_guests"`

	Status        string `json:"status"`
	BookingSource string `json:"booking_source"`
	BookingType   string `json:"booking_type"`
	Remarks       string `json:"remarks"`

	Guests           []domain.Guest   `json:"guests"`
	EmergencyContact string           `json:"emergency_contact"`
	Vehicles         []domain.Vehicle `json:"vehicles"`
	ItemsProvided    []domain.Item    `json:"items_provided"`
	Charges          []domain.Charge  `json:"charges"`

	PaymentMethod       string  `json:"payment_method"`
	AmountPaid          float64 `json:"amount_paid"`
	AmountDue           float64 `json:"amount_due"`
	DepositNotCollected bool    `json:"deposit_not_collected"`
	NewPaymentAmount    float64 `json:"new_payment_amount"`
}

// OptionsResponse допустимые метки для выпадающих списков
type OptionsResponse struct {
	Statuses     []string `json:"statuses"`
	Channels     []string `json:"channels"`
	BookingTypes []string `json:"bookingTypes"`
}

// FromDomainDraft конвертирует domain модель в DTO
func FromDomainDraft(d *domain.BookingDraft, notices []string) *DraftResponse {
	if d == nil {
		return nil
	}

	f := d.Fields

	return &DraftResponse{
		ID:        d.ID,
		Mode:      string(d.Mode),
		Phase:     string(d.Phase),
		Step:      int(d.Step),
		BookingID: d.BookingID,
		Version:   d.Version,
		Fields: FieldsResponse{
			PropertyID:          f.PropertyID,
			RoomTypeID:          f.RoomTypeID,
			PropertyUnitID:      f.PropertyUnitID,
			CheckInDate:         formatDate(f.CheckInDate),
			CheckOutDate:        formatDate(f.CheckOutDate),
			RawRoomRate:         f.RawRoomRate,
			RoomRateModifier:    f.RoomRateModifier,
			NumberOfGuests:      f.NumberOfGuests,
			Status:              f.Status,
			BookingSource:       f.BookingSource,
			BookingType:         f.BookingType,
			Remarks:             f.Remarks,
			Guests:              nonNil(f.Guests),
			EmergencyContact:    f.EmergencyContact,
			Vehicles:            nonNil(f.Vehicles),
			ItemsProvided:       nonNil(f.ItemsProvided),
			Charges:             nonNil(f.Charges),
			PaymentMethod:       f.PaymentMethod,
			AmountPaid:          f.AmountPaid,
			AmountDue:           f.AmountDue,
			DepositNotCollected: f.DepositNotCollected,
			NewPaymentAmount:    f.NewPaymentAmount,
		},
		References: d.References,
		Totals:     d.Totals(),
		Options: OptionsResponse{
			Statuses:     domain.BookingStatuses.Labels(),
			Channels:     domain.BookingChannels.Labels(),
			BookingTypes: domain.BookingTypes.Labels(),
		},
		Notices:   notices,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateFormat)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
