package references

import (
	"context"

	"github.com/m04kA/SMC-ReservationDesk/internal/domain"
)

// Loader загружает справочники в черновик
// Ошибка загрузки не прерывает операцию: список остается пустым, возвращается уведомление, повторов нет
type Loader struct {
	client PMSClient
	logger Logger
}

// NewLoader создает загрузчик справочников
func NewLoader(client PMSClient, logger Logger) *Loader {
	return &Loader{client: client, logger: logger}
}

// LoadCore загружает справочники, не зависящие от выбора: объекты, каналы, типы бронирования, начисления
func (l *Loader) LoadCore(ctx context.Context, d *domain.BookingDraft) []string {
	var notices []string

	properties, err := l.client.ListProperties(ctx)
	if err != nil {
		l.logger.Error("LoadCore: draft=%s failed to load properties: %v", d.ID, err)
		notices = append(notices, NoticePropertiesUnavailable)
	}
	d.References.Properties = properties

	channels, err := l.client.ListChannels(ctx)
	if err != nil {
		l.logger.Error("LoadCore: draft=%s failed to load channels: %v", d.ID, err)
		notices = append(notices, NoticeChannelsUnavailable)
	}
	d.References.Channels = channels

	bookingTypes, err := l.client.ListBookingTypeReferences(ctx)
	if err != nil {
		l.logger.Error("LoadCore: draft=%s failed to load booking types: %v", d.ID, err)
		notices = append(notices, NoticeBookingTypesUnavailable)
	}
	d.References.BookingTypes = bookingTypes

	charges, err := l.client.ListChargeReferences(ctx)
	if err != nil {
		l.logger.Error("LoadCore: draft=%s failed to load charge references: %v", d.ID, err)
		notices = append(notices, NoticeChargesUnavailable)
	}
	d.References.ChargeReferences = charges

	return notices
}

// LoadRoomTypes загружает категории номеров для текущего объекта черновика
func (l *Loader) LoadRoomTypes(ctx context.Context, d *domain.BookingDraft) []string {
	propertyID := d.Fields.PropertyID
	if propertyID <= 0 {
		return nil
	}

	roomTypes, err := l.client.ListRoomTypes(ctx, propertyID)
	if err != nil {
		l.logger.Error("LoadRoomTypes: draft=%s property=%d: %v", d.ID, propertyID, err)
		d.SetRoomTypes(propertyID, nil)
		return []string{NoticeRoomTypesUnavailable}
	}

	d.SetRoomTypes(propertyID, roomTypes)
	l.logger.Info("LoadRoomTypes: draft=%s property=%d loaded %d room types", d.ID, propertyID, len(roomTypes))
	return nil
}

// LoadUnits загружает юниты и удобства для текущей категории черновика
func (l *Loader) LoadUnits(ctx context.Context, d *domain.BookingDraft) []string {
	roomTypeID := d.Fields.RoomTypeID
	if roomTypeID <= 0 {
		return nil
	}

	var notices []string

	units, err := l.client.ListUnits(ctx, roomTypeID)
	if err != nil {
		l.logger.Error("LoadUnits: draft=%s room_type=%d: %v", d.ID, roomTypeID, err)
		notices = append(notices, NoticeUnitsUnavailable)
	}
	d.SetUnits(roomTypeID, units)

	amenities, err := l.client.ListAmenities(ctx, roomTypeID)
	if err != nil {
		l.logger.Warn("LoadUnits: draft=%s room_type=%d amenities: %v", d.ID, roomTypeID, err)
		notices = append(notices, NoticeAmenitiesUnavailable)
	}
	d.SetAmenities(roomTypeID, amenities)

	return notices
}
