package navigate_step

// Direction направление перехода по шагам мастера
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionBack Direction = "back"
)

// Request модель запроса на переход
type Request struct {
	UserID    int64
	DraftID   string
	Direction Direction
}
