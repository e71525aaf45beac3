package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() DraftFields {
	return DraftFields{
		PropertyID:       1,
		RoomTypeID:       10,
		PropertyUnitID:   100,
		CheckInDate:      date(2024, 7, 1),
		CheckOutDate:     date(2024, 7, 4),
		RoomRateModifier: 100,
		NumberOfGuests:   2,
		Status:           "Confirmed",
		BookingSource:    "Direct",
		BookingType:      "Nightly",
		Guests:           []Guest{{FirstName: "Anna", LastName: "Ivanova", Email: "anna@example.com"}},
		Vehicles:         []Vehicle{{Number: "A123BC"}},
		Charges:          []Charge{{ChargeReferenceID: 1, Amount: 50}},
		PaymentMethod:    "cash",
		AmountPaid:       100,
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)

	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestAdvance_MissingUnitKeepsStep(t *testing.T) {
	f := validFields()
	f.PropertyUnitID = 0
	d := &BookingDraft{Mode: ModeCreate, Phase: PhaseInteractive, Step: StepReservation, Fields: f}

	err := d.Advance()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []string{"property_unit_id"}, fieldNames(t, err))
	assert.Equal(t, StepReservation, d.Step)
}

func TestAdvance_ValidatesOnlyCurrentStep(t *testing.T) {
	f := validFields()
	f.Guests = nil // шаг 2 невалиден, но на шаге 1 это не проверяется
	d := &BookingDraft{Mode: ModeCreate, Step: StepReservation, Fields: f}

	require.NoError(t, d.Advance())
	assert.Equal(t, StepGuests, d.Step)

	err := d.Advance()
	assert.Equal(t, []string{"guests"}, fieldNames(t, err))
	assert.Equal(t, StepGuests, d.Step)
}

func TestAdvance_WalksAllSteps(t *testing.T) {
	d := &BookingDraft{Mode: ModeCreate, Step: StepReservation, Fields: validFields()}

	require.NoError(t, d.Advance())
	require.NoError(t, d.Advance())
	assert.Equal(t, StepPayment, d.Step)

	assert.ErrorIs(t, d.Advance(), ErrNoNextStep)
}

func TestBack_NeverValidates(t *testing.T) {
	d := &BookingDraft{Mode: ModeCreate, Step: StepPayment, Fields: DraftFields{}}

	require.NoError(t, d.Back())
	require.NoError(t, d.Back())
	assert.Equal(t, StepReservation, d.Step)

	assert.ErrorIs(t, d.Back(), ErrNoPreviousStep)
}

func TestValidateStep_CheckOutBeforeCheckIn(t *testing.T) {
	f := validFields()
	f.CheckInDate = date(2024, 7, 4)
	f.CheckOutDate = date(2024, 7, 1)

	err := ValidateStep(ModeCreate, StepReservation, f)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []FieldError{{Field: "check_out_date", Rule: "gtefield"}}, verr.Fields)
}

func TestValidateStep_SameDayAllowed(t *testing.T) {
	f := validFields()
	f.CheckOutDate = f.CheckInDate

	assert.NoError(t, ValidateStep(ModeCreate, StepReservation, f))
}

func TestValidateStep_UnknownLabels(t *testing.T) {
	f := validFields()
	f.Status = "Teleported"
	f.BookingSource = "Carrier Pigeon"

	err := ValidateStep(ModeCreate, StepReservation, f)

	assert.ElementsMatch(t, []string{"status", "booking_source"}, fieldNames(t, err))
}

func TestValidateStep_GuestFields(t *testing.T) {
	f := validFields()
	f.Guests = []Guest{{FirstName: "Anna", Email: "not-an-email"}}
	f.ItemsProvided = []Item{{}}

	err := ValidateStep(ModeCreate, StepGuests, f)

	assert.ElementsMatch(t, []string{"guests[0].last_name", "guests[0].email", "items_provided[0].name"}, fieldNames(t, err))
}

func TestValidateStep_Limits(t *testing.T) {
	f := validFields()
	f.Remarks = strings.Repeat("x", MaxRemarksLength+1)

	err := ValidateStep(ModeCreate, StepReservation, f)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "remarks", Rule: "max"}}, verr.Fields)

	f = validFields()
	f.Guests = make([]Guest, MaxGuestsPerDraft+1)
	for i := range f.Guests {
		f.Guests[i] = Guest{FirstName: "Anna", LastName: "Ivanova"}
	}

	err = ValidateStep(ModeCreate, StepGuests, f)

	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "guests", Rule: "max"}}, verr.Fields)

	f.Guests = f.Guests[:MaxGuestsPerDraft]
	assert.NoError(t, ValidateStep(ModeCreate, StepGuests, f))
}

func TestValidateStep_PaymentMethodRequiredForPayment(t *testing.T) {
	f := validFields()
	f.PaymentMethod = ""

	err := ValidateStep(ModeCreate, StepPayment, f)
	assert.Equal(t, []string{"payment_method"}, fieldNames(t, err))

	// В режиме редактирования платёж - это new_payment_amount
	assert.NoError(t, ValidateStep(ModeEdit, StepPayment, f))

	f.NewPaymentAmount = 10
	assert.Error(t, ValidateStep(ModeEdit, StepPayment, f))
}

func TestValidateStep_NegativeCharge(t *testing.T) {
	f := validFields()
	f.Charges = []Charge{{ChargeReferenceID: 0, Amount: -1}}

	err := ValidateStep(ModeCreate, StepPayment, f)

	assert.ElementsMatch(t, []string{"charges[0].charge_reference_id", "charges[0].amount"}, fieldNames(t, err))
}

func TestValidateAll_CollectsEverySteps(t *testing.T) {
	f := validFields()
	f.PropertyUnitID = 0
	f.Guests = nil
	f.PaymentMethod = ""

	err := ValidateAll(ModeCreate, f)

	assert.ElementsMatch(t, []string{"property_unit_id", "guests", "payment_method"}, fieldNames(t, err))
	assert.NoError(t, ValidateAll(ModeCreate, validFields()))
}
