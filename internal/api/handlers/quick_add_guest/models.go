package quick_add_guest

import quickAddGuest "github.com/m04kA/SMC-ReservationDesk/internal/usecase/quick_add_guest"

// QuickAddGuestRequest HTTP request model
type QuickAddGuestRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuickAddGuestRequest) ToUseCaseRequest(userID int64, draftID string) *quickAddGuest.Request {
	return &quickAddGuest.Request{
		UserID:      userID,
		DraftID:     draftID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
	}
}
