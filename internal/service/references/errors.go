package references

import "errors"

var (
	// ErrNotFound возвращается, когда родительский ресурс не найден
	ErrNotFound = errors.New("references: resource not found")

	// ErrUnauthorized возвращается, когда API отказал в доступе
	ErrUnauthorized = errors.New("references: unauthorized access")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("references: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("references: internal error")
)

// Сообщения-уведомления, возвращаемые вместе с черновиком при неудачной загрузке справочника
const (
	NoticePropertiesUnavailable   = "не удалось загрузить список объектов"
	NoticeRoomTypesUnavailable    = "не удалось загрузить категории номеров"
	NoticeUnitsUnavailable        = "не удалось загрузить список юнитов"
	NoticeAmenitiesUnavailable    = "не удалось загрузить удобства категории"
	NoticeChannelsUnavailable     = "не удалось загрузить каналы продаж"
	NoticeBookingTypesUnavailable = "не удалось загрузить типы бронирования"
	NoticeChargesUnavailable      = "не удалось загрузить справочник начислений"
)
