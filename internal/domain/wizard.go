package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError ошибка валидации одного поля
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError ошибки валидации шага мастера
type ValidationError struct {
	Step   Step
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("%s: step %d: %s", ErrValidation, e.Step, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// reservationStep поля шага 1
type reservationStep struct {
	PropertyID       int64     `json:"property_id" validate:"gt=0"`
	RoomTypeID       int64     `json:"room_type_id" validate:"gt=0"`
	PropertyUnitID   int64     `json:"property_unit_id" validate:"gt=0"`
	CheckInDate      time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate     time.Time `json:"check_out_date" validate:"required,gtefield=CheckInDate"`
	RoomRateModifier float64   `json:"room_rate_modifier" validate:"gte=0"`
	NumberOfGuests   int       `json:"number_of_guests" validate:"gte=1"`
	Status           string    `json:"status" validate:"required,booking_status"`
	BookingSource    string    `json:"booking_source" validate:"required,booking_channel"`
	BookingType      string    `json:"booking_type" validate:"required,booking_type"`
	Remarks          string    `json:"remarks" validate:"remarks_len"`
}

// guestStep поля шага 2
type guestStep struct {
	Guests        []Guest   `json:"guests" validate:"required,guests_count,dive"`
	Vehicles      []Vehicle `json:"vehicles" validate:"dive"`
	ItemsProvided []Item    `json:"items_provided" validate:"dive"`
}

// paymentStep поля шага 3
type paymentStep struct {
	Charges          []Charge `json:"charges" validate:"dive"`
	AmountPaid       float64  `json:"amount_paid" validate:"gte=0"`
	NewPaymentAmount float64  `json:"new_payment_amount" validate:"gte=0"`
	HasPayment       bool     `json:"-"`
	PaymentMethod    string   `json:"payment_method" validate:"required_if=HasPayment true"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем json-имена полей
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Ограничения из констант домена
	v.RegisterAlias("remarks_len", fmt.Sprintf("max=%d", MaxRemarksLength))
	v.RegisterAlias("guests_count", fmt.Sprintf("min=1,max=%d", MaxGuestsPerDraft))
	v.RegisterAlias("password_len", fmt.Sprintf("min=%d", MinPasswordLength))

	mustRegisterLabel(v, "booking_status", BookingStatuses)
	mustRegisterLabel(v, "booking_channel", BookingChannels)
	mustRegisterLabel(v, "booking_type", BookingTypes)

	return v
}

func mustRegisterLabel(v *validator.Validate, tag string, table LabelTable) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return table.Has(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

// Validator возвращает общий валидатор с зарегистрированными правилами меток
func Validator() *validator.Validate {
	return validate
}

// ValidateStep проверяет только поля указанного шага
func ValidateStep(mode DraftMode, step Step, f DraftFields) error {
	var target interface{}

	switch step {
	case StepReservation:
		target = reservationStep{
			PropertyID:       f.PropertyID,
			RoomTypeID:       f.RoomTypeID,
			PropertyUnitID:   f.PropertyUnitID,
			CheckInDate:      f.CheckInDate,
			CheckOutDate:     f.CheckOutDate,
			RoomRateModifier: f.RoomRateModifier,
			NumberOfGuests:   f.NumberOfGuests,
			Status:           f.Status,
			BookingSource:    f.BookingSource,
			BookingType:      f.BookingType,
			Remarks:          f.Remarks,
		}
	case StepGuests:
		target = guestStep{
			Guests:        f.Guests,
			Vehicles:      f.Vehicles,
			ItemsProvided: f.ItemsProvided,
		}
	case StepPayment:
		target = paymentStep{
			Charges:          f.Charges,
			AmountPaid:       f.AmountPaid,
			NewPaymentAmount: f.NewPaymentAmount,
			HasPayment:       PaymentAmount(mode, f) > 0,
			PaymentMethod:    f.PaymentMethod,
		}
	default:
		return fmt.Errorf("%w: unknown step %d", ErrValidation, step)
	}

	err := validate.Struct(target)
	if err == nil {
		return nil
	}

	return NewValidationError(step, err)
}

// NewValidationError переводит ошибку validator в ValidationError с json-путями полей
func NewValidationError(step Step, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	result := &ValidationError{Step: step, Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		result.Fields = append(result.Fields, FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.ActualTag(),
		})
	}
	return result
}

// ValidateAll проверяет все шаги и объединяет ошибки
func ValidateAll(mode DraftMode, f DraftFields) error {
	var all *ValidationError

	for _, step := range []Step{StepReservation, StepGuests, StepPayment} {
		err := ValidateStep(mode, step, f)
		if err == nil {
			continue
		}

		var verr *ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		if all == nil {
			all = &ValidationError{Step: step}
		}
		all.Fields = append(all.Fields, verr.Fields...)
	}

	if all == nil {
		return nil
	}
	return all
}

// Advance переходит на следующий шаг, если поля текущего шага валидны
func (d *BookingDraft) Advance() error {
	if d.Step >= StepPayment {
		return ErrNoNextStep
	}

	if err := ValidateStep(d.Mode, d.Step, d.Fields); err != nil {
		return err
	}

	d.Step++
	return nil
}

// Back возвращается на предыдущий шаг без валидации
func (d *BookingDraft) Back() error {
	if d.Step <= StepReservation {
		return ErrNoPreviousStep
	}
	d.Step--
	return nil
}

// PaymentAmount сумма платежа, фиксируемого при отправке
// При создании это amount_paid, при редактировании - новый частичный платёж поверх истории
func PaymentAmount(mode DraftMode, f DraftFields) float64 {
	if mode == ModeEdit {
		return f.NewPaymentAmount
	}
	return f.AmountPaid
}

// fieldPath отрезает имя структуры-проекции: "guestStep.guests[0].first_name" -> "guests[0].first_name"
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
