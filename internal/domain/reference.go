package domain

// Property объект размещения (здание, комплекс)
type Property struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// RoomType категория размещения внутри объекта
type RoomType struct {
	ID         int64   `json:"id"`
	PropertyID int64   `json:"property_id"`
	Name       string  `json:"name"`
	BasePrice  float64 `json:"base_price"`
	MaxGuests  int     `json:"max_guests"`
}

// Unit конкретная бронируемая единица категории
type Unit struct {
	ID         int64  `json:"id"`
	RoomTypeID int64  `json:"room_type_id"`
	Name       string `json:"name"`
	Status     string `json:"status,omitempty"`
}

type Channel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingTypeReference struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ChargeReference элемент справочника дополнительных сборов
type ChargeReference struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	DefaultAmount float64 `json:"default_amount"`
}

type Amenity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReferenceSnapshot справочники, загруженные для открытой формы
// Перезагружаются только при смене родительского выбора (объект -> категории -> юниты)
type ReferenceSnapshot struct {
	Properties       []Property             `json:"properties"`
	RoomTypes        []RoomType             `json:"room_types"`
	Units            []Unit                 `json:"units"`
	Amenities        []Amenity              `json:"amenities"`
	Channels         []Channel              `json:"channels"`
	BookingTypes     []BookingTypeReference `json:"booking_types"`
	ChargeReferences []ChargeReference      `json:"charge_references"`
}

func (s *ReferenceSnapshot) hasProperty(id int64) bool {
	for _, p := range s.Properties {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *ReferenceSnapshot) roomType(id int64) (RoomType, bool) {
	for _, rt := range s.RoomTypes {
		if rt.ID == id {
			return rt, true
		}
	}
	return RoomType{}, false
}

func (s *ReferenceSnapshot) hasUnit(id int64) bool {
	for _, u := range s.Units {
		if u.ID == id {
			return true
		}
	}
	return false
}
