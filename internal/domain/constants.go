package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxRemarksLength  = 1000
	MaxGuestsPerDraft = 20
	MinPasswordLength = 8
)

// Wizard steps
const (
	StepReservation Step = 1 // детали бронирования
	StepGuests      Step = 2 // гости, транспорт, выданные предметы
	StepPayment     Step = 3 // начисления и оплата
)

// Payment status codes in the submission payload
const (
	PaymentStatusCreated = 0
	PaymentStatusUpdated = 1
)
