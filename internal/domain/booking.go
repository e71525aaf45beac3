package domain

import "time"

// DraftMode режим черновика бронирования
type DraftMode string

const (
	ModeCreate DraftMode = "create" // новое бронирование
	ModeEdit   DraftMode = "edit"   // редактирование существующего бронирования
)

// DraftPhase фаза черновика
// hydrating - значения выставляются при загрузке существующего бронирования, зависимые поля не сбрасываются
// interactive - значения меняет пользователь, смена родителя сбрасывает зависимые поля
// submitting - идёт отправка в API
type DraftPhase string

const (
	PhaseHydrating   DraftPhase = "hydrating"
	PhaseInteractive DraftPhase = "interactive"
	PhaseSubmitting  DraftPhase = "submitting" // черновик захвачен отправкой, изменения запрещены
)

// Step шаг мастера бронирования (1..3)
type Step int

// BookingDraft черновик бронирования, живущий пока открыта форма
type BookingDraft struct {
	ID        string
	UserID    int64
	Mode      DraftMode
	Phase     DraftPhase
	Step      Step
	BookingID *int64 // только для ModeEdit
	Version   int64

	Fields     DraftFields
	References ReferenceSnapshot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DraftFields значения полей формы бронирования
type DraftFields struct {
	PropertyID     int64 `json:"property_id"`
	RoomTypeID     int64 `json:"room_type_id"`
	PropertyUnitID int64 `json:"property_unit_id"`

	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`

	RawRoomRate      float64 `json:"raw_room_rate"`
	RoomRateModifier float64 `json:"room_rate_modifier"`
	NumberOfGuests   int     `json:"number_of_guests"`

	// Человекочитаемые метки, в коды переводятся при отправке
	Status        string `json:"status"`
	BookingSource string `json:"booking_source"`
	BookingType   string `json:"booking_type"`
	Remarks       string `json:"remarks"`

	Guests           []Guest   `json:"guests"`
	EmergencyContact string    `json:"emergency_contact"`
	Vehicles         []Vehicle `json:"vehicles"`
	ItemsProvided    []Item    `json:"items_provided"`
	Charges          []Charge  `json:"charges"`

	PaymentMethod       string  `json:"payment_method"`
	AmountPaid          float64 `json:"amount_paid"`
	AmountDue           float64 `json:"amount_due"`
	DepositNotCollected bool    `json:"deposit_not_collected"`
	NewPaymentAmount    float64 `json:"new_payment_amount"`
}

// Guest гость бронирования
type Guest struct {
	GuestID      *int64 `json:"guest_id,omitempty"`
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	Nationality  string `json:"nationality"`
	PhoneNumber  string `json:"phone_number"`
	State        string `json:"state"`
	Email        string `json:"email" validate:"omitempty,email"`
	ICPassportNo string `json:"ic_passport_no"`
}

type Vehicle struct {
	Number string `json:"number" validate:"required"`
}

type Item struct {
	Name string `json:"name" validate:"required"`
}

// Charge дополнительное начисление по справочнику charge-references
type Charge struct {
	ChargeReferenceID int64   `json:"charge_reference_id" validate:"gt=0"`
	Amount            float64 `json:"amount" validate:"gte=0"`
}

// IsEdit returns true if the draft edits an existing booking
func (d *BookingDraft) IsEdit() bool {
	return d.Mode == ModeEdit
}

// IsInteractive returns true if user changes drive cascading clears
func (d *BookingDraft) IsInteractive() bool {
	return d.Phase == PhaseInteractive
}

// IsSubmitting returns true if the draft is being sent to the API
func (d *BookingDraft) IsSubmitting() bool {
	return d.Phase == PhaseSubmitting
}

// FinishHydration переводит черновик в интерактивную фазу
// amount_due из API заменяется остатком, посчитанным по полям формы
func (d *BookingDraft) FinishHydration() {
	d.Phase = PhaseInteractive
	d.Fields.AmountDue = d.Totals().Outstanding
}

// Totals производные суммы черновика
func (d *BookingDraft) Totals() Totals {
	return CalculateTotals(d.Mode, d.Fields)
}

// OwnedBy returns true if the draft was opened by userID
func (d *BookingDraft) OwnedBy(userID int64) bool {
	return d.UserID == userID
}

// SetPrimaryGuest записывает созданного гостя в первую позицию списка
// Контактные данные первого гостя заменяются, остальные его поля сохраняются
func (d *BookingDraft) SetPrimaryGuest(g Guest) {
	if len(d.Fields.Guests) == 0 {
		d.Fields.Guests = append(d.Fields.Guests, g)
		return
	}

	primary := &d.Fields.Guests[0]
	primary.GuestID = g.GuestID
	primary.FirstName = g.FirstName
	primary.LastName = g.LastName
	primary.Email = g.Email
	primary.PhoneNumber = g.PhoneNumber
}
