package domain

import "errors"

var (
	// ErrUnknownLabel возвращается, когда метки нет в таблице кодов
	ErrUnknownLabel = errors.New("domain: unknown label")

	// ErrUnknownSelection возвращается при выборе значения, которого нет в загруженном справочнике
	ErrUnknownSelection = errors.New("domain: selection is not in the loaded reference list")

	// ErrValidation возвращается, когда поля шага не прошли валидацию
	ErrValidation = errors.New("domain: validation failed")

	// ErrNoNextStep возвращается при попытке перейти дальше последнего шага
	ErrNoNextStep = errors.New("domain: already at the last step")

	// ErrNoPreviousStep возвращается при попытке вернуться с первого шага
	ErrNoPreviousStep = errors.New("domain: already at the first step")
)
