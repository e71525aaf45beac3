package domain

import (
	"fmt"
	"sort"
)

// LabelTable статическая таблица соответствия меток и кодов бэкенда
type LabelTable struct {
	name   string
	codes  map[string]int
	labels map[int]string
}

func newLabelTable(name string, codes map[string]int) LabelTable {
	labels := make(map[int]string, len(codes))
	for label, code := range codes {
		labels[code] = label
	}
	return LabelTable{name: name, codes: codes, labels: labels}
}

// Code возвращает код для метки, неизвестная метка - ErrUnknownLabel
func (t LabelTable) Code(label string) (int, error) {
	code, ok := t.codes[label]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownLabel, t.name, label)
	}
	return code, nil
}

// Label возвращает метку для кода
func (t LabelTable) Label(code int) (string, bool) {
	label, ok := t.labels[code]
	return label, ok
}

// Has returns true if the label is known
func (t LabelTable) Has(label string) bool {
	_, ok := t.codes[label]
	return ok
}

// Labels возвращает метки, упорядоченные по коду
func (t LabelTable) Labels() []string {
	codes := make([]int, 0, len(t.labels))
	for code := range t.labels {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	result := make([]string, 0, len(codes))
	for _, code := range codes {
		result = append(result, t.labels[code])
	}
	return result
}

// BookingStatuses статусы бронирования
var BookingStatuses = newLabelTable("status", map[string]int{
	"Pending":     0,
	"Confirmed":   1,
	"Checked In":  2,
	"Checked Out": 3,
	"Cancelled":   4,
	"No Show":     5,
	"On Hold":     6,
	"Completed":   7,
	"Refunded":    8,
})

// BookingChannels каналы продаж (booking_source)
var BookingChannels = newLabelTable("channel", map[string]int{
	"Direct":      1,
	"Walk-In":     2,
	"Airbnb":      3,
	"Booking.com": 4,
	"Agoda":       5,
	"Expedia":     6,
	"Trip.com":    7,
})

// BookingTypes типы бронирования
var BookingTypes = newLabelTable("booking type", map[string]int{
	"Nightly": 1,
	"Weekly":  2,
	"Monthly": 3,
})
