package pmsapi

// Booking бронирование в формате API (коды вместо меток)
type Booking struct {
	ID             int64   `json:"id"`
	PropertyID     int64   `json:"property_id"`
	RoomTypeID     int64   `json:"room_type_id"`
	PropertyUnitID int64   `json:"property_unit_id"`
	CheckInDate    string  `json:"check_in_date"`  // "2024-07-01"
	CheckOutDate   string  `json:"check_out_date"` // "2024-07-04"
	RawRoomRate    float64 `json:"raw_room_rate"`
	RoomRate       float64 `json:"room_rate"` // ставка за ночь с учетом модификатора
	NumberOfGuests int     `json:"number_of_guests"`
	Status         int     `json:"status"`
	BookingSource  int     `json:"booking_source"`
	BookingType    int     `json:"booking_type"`
	Remarks        string  `json:"remarks"`

	Guests           []Guest   `json:"guests"`
	EmergencyContact string    `json:"emergency_contact"`
	Vehicles         []Vehicle `json:"vehicles"`
	Items            []Item    `json:"items"`
	Charges          []Charge  `json:"charges"`

	PaymentMethod       string  `json:"payment_method"`
	AmountPaid          float64 `json:"amount_paid"`
	AmountDue           float64 `json:"amount_due"`
	DepositNotCollected bool    `json:"deposit_not_collected"`
}

// Guest гость в формате API
type Guest struct {
	ID           int64  `json:"id,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Nationality  string `json:"nationality,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	State        string `json:"state,omitempty"`
	Email        string `json:"email,omitempty"`
	ICPassportNo string `json:"ic_passport_no,omitempty"`
}

type Vehicle struct {
	Number string `json:"number"`
}

type Item struct {
	Name string `json:"name"`
}

type Charge struct {
	ChargeReferenceID int64   `json:"charge_reference_id"`
	Amount            float64 `json:"amount"`
}

// Payment платёж, фиксируемый вместе с бронированием
// Status: 0 - создание бронирования, 1 - обновление
type Payment struct {
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
	Status        int     `json:"status"`
}

// BookingPayload тело POST/PUT bookings
type BookingPayload struct {
	PropertyID          int64     `json:"property_id"`
	RoomTypeID          int64     `json:"room_type_id"`
	PropertyUnitID      int64     `json:"property_unit_id"`
	CheckInDate         string    `json:"check_in_date"`
	CheckOutDate        string    `json:"check_out_date"`
	Nights              int       `json:"nights"`
	RawRoomRate         float64   `json:"raw_room_rate"`
	RoomRate            float64   `json:"room_rate"`
	NumberOfGuests      int       `json:"number_of_guests"`
	Status              int       `json:"status"`
	BookingSource       int       `json:"booking_source"`
	BookingType         int       `json:"booking_type"`
	Remarks             string    `json:"remarks,omitempty"`
	Guests              []Guest   `json:"guests"`
	EmergencyContact    string    `json:"emergency_contact,omitempty"`
	Vehicles            []Vehicle `json:"vehicles"`
	Items               []Item    `json:"items"`
	Charges             []Charge  `json:"charges"`
	TotalAmount         float64   `json:"total_amount"`
	AmountDue           float64   `json:"amount_due"`
	DepositNotCollected bool      `json:"deposit_not_collected"`
	Payment             Payment   `json:"payment"`
}

// NewGuest тело POST guests (быстрое добавление гостя)
type NewGuest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number,omitempty"`
}
