package domain

import "fmt"

// SelectProperty выставляет объект размещения
// Возвращает true, если нужно (пере)загрузить категории номеров для нового объекта.
//
// В фазе hydrating значения зависимых полей сохраняются.
// В фазе interactive смена объекта сбрасывает категорию, юнит и их справочники,
// повторный выбор текущего объекта ничего не меняет.
func (d *BookingDraft) SelectProperty(propertyID int64) (bool, error) {
	if !d.IsInteractive() {
		d.Fields.PropertyID = propertyID
		return propertyID > 0, nil
	}

	if propertyID == d.Fields.PropertyID {
		return false, nil
	}

	if propertyID > 0 && !d.References.hasProperty(propertyID) {
		return false, fmt.Errorf("%w: property id=%d", ErrUnknownSelection, propertyID)
	}

	d.Fields.PropertyID = propertyID
	d.clearRoomType()
	d.References.RoomTypes = nil

	return propertyID > 0, nil
}

// SelectRoomType выставляет категорию номера
// Возвращает true, если нужно загрузить юниты категории.
// В фазе interactive смена категории сбрасывает юнит и подставляет базовую цену категории.
func (d *BookingDraft) SelectRoomType(roomTypeID int64) (bool, error) {
	if !d.IsInteractive() {
		d.Fields.RoomTypeID = roomTypeID
		return roomTypeID > 0, nil
	}

	if roomTypeID == d.Fields.RoomTypeID {
		return false, nil
	}

	if roomTypeID == 0 {
		d.clearRoomType()
		return false, nil
	}

	roomType, ok := d.References.roomType(roomTypeID)
	if !ok || roomType.PropertyID != d.Fields.PropertyID {
		return false, fmt.Errorf("%w: room type id=%d", ErrUnknownSelection, roomTypeID)
	}

	d.clearRoomType()
	d.Fields.RoomTypeID = roomTypeID
	d.Fields.RawRoomRate = roomType.BasePrice
	if d.Fields.RoomRateModifier == 0 {
		d.Fields.RoomRateModifier = roomType.BasePrice
	}

	return true, nil
}

// SelectUnit выставляет юнит
// В фазе interactive юнит должен входить в загруженный список юнитов текущей категории
func (d *BookingDraft) SelectUnit(unitID int64) error {
	if d.IsInteractive() && unitID > 0 && !d.References.hasUnit(unitID) {
		return fmt.Errorf("%w: unit id=%d", ErrUnknownSelection, unitID)
	}
	d.Fields.PropertyUnitID = unitID
	return nil
}

// SetRoomTypes сохраняет загруженные категории, если они относятся к текущему объекту
func (d *BookingDraft) SetRoomTypes(propertyID int64, roomTypes []RoomType) {
	if propertyID != d.Fields.PropertyID {
		return
	}
	d.References.RoomTypes = roomTypes
}

// SetUnits сохраняет загруженные юниты, если они относятся к текущей категории
func (d *BookingDraft) SetUnits(roomTypeID int64, units []Unit) {
	if roomTypeID != d.Fields.RoomTypeID {
		return
	}
	d.References.Units = units
}

// SetAmenities сохраняет удобства текущей категории
func (d *BookingDraft) SetAmenities(roomTypeID int64, amenities []Amenity) {
	if roomTypeID != d.Fields.RoomTypeID {
		return
	}
	d.References.Amenities = amenities
}

func (d *BookingDraft) clearRoomType() {
	d.Fields.RoomTypeID = 0
	d.Fields.PropertyUnitID = 0
	d.References.Units = nil
	d.References.Amenities = nil
}
