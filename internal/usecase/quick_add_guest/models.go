package quick_add_guest

// Request модель запроса быстрого добавления гостя
type Request struct {
	UserID  int64  `json:"-"`
	DraftID string `json:"-"`

	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,password_len"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=32"`
}
