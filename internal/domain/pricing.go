package domain

import (
	"math"
	"time"
)

// Totals производные суммы черновика, никогда не сохраняются
type Totals struct {
	Nights       int     `json:"nights"`
	RoomSubtotal float64 `json:"room_subtotal"`
	FeeSubtotal  float64 `json:"fee_subtotal"`
	Total        float64 `json:"total"`
	TotalPaid    float64 `json:"total_paid"`
	Outstanding  float64 `json:"outstanding"`
}

// CalculateTotals считает ночи, подытоги, итог, оплату и остаток
// В режиме редактирования к уже оплаченной сумме добавляется новый платёж
func CalculateTotals(mode DraftMode, f DraftFields) Totals {
	nights := NightsBetween(f.CheckInDate, f.CheckOutDate)

	roomSubtotal := f.RoomRateModifier * float64(nights)

	var feeSubtotal float64
	for _, c := range f.Charges {
		feeSubtotal += c.Amount
	}

	total := roomSubtotal + feeSubtotal

	totalPaid := f.AmountPaid
	if mode == ModeEdit {
		totalPaid += f.NewPaymentAmount
	}

	return Totals{
		Nights:       nights,
		RoomSubtotal: roundMoney(roomSubtotal),
		FeeSubtotal:  roundMoney(feeSubtotal),
		Total:        roundMoney(total),
		TotalPaid:    roundMoney(totalPaid),
		Outstanding:  roundMoney(total - totalPaid),
	}
}

// NightsBetween количество ночей между датами заезда и выезда, не меньше 0
// Сравниваются только календарные даты
func NightsBetween(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	in := dateOnly(checkIn)
	out := dateOnly(checkOut)

	nights := int(math.Round(out.Sub(in).Hours() / 24))
	if nights < 0 {
		return 0
	}
	return nights
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
