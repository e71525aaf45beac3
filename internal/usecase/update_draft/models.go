package update_draft

import (
	"time"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
)

// Request модель запроса на изменение полей черновика
type Request struct {
	UserID  int64
	DraftID string
	// Version ожидаемая версия черновика, 0 - не проверять
	Version int64
	Patch   Patch
}

// Patch изменяемые поля; nil - поле не меняется
// Списки (гости, машины, вещи, начисления) заменяются целиком
type Patch struct {
	PropertyID     *int64
	RoomTypeID     *int64
	PropertyUnitID *int64

	CheckInDate  *time.Time
	CheckOutDate *time.Time

	RawRoomRate      *float64
	RoomRateModifier *float64
	NumberOfGuests   *int

	Status        *string
	BookingSource *string
	BookingType   *string
	Remarks       *string

	Guests           *[]domain.Guest
	EmergencyContact *string
	Vehicles         *[]domain.Vehicle
	ItemsProvided    *[]domain.Item
	Charges          *[]domain.Charge

	PaymentMethod       *string
	AmountPaid          *float64
	DepositNotCollected *bool
	NewPaymentAmount    *float64
}

// IsEmpty returns true if the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}
