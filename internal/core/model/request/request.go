package request

type SignUpRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=6,max=100"`
	Firstname string `json:"firstname" validate:"max=100"`
	Lastname  string `json:"lastname" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// UserUpdateRequest carries a partial profile update. Nil fields are left
// untouched.
type UserUpdateRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6,max=100"`
	Firstname *string `json:"firstname,omitempty" validate:"omitempty,max=100"`
	Lastname  *string `json:"lastname,omitempty" validate:"omitempty,max=100"`
}

type TodoCreateRequest struct {
	Title string `json:"title" validate:"required,max=50"`
	Body  string `json:"body" validate:"required,max=100000"`
}

// TodoUpdateRequest carries a partial todo update. Any created_by value in
// the body is ignored on purpose.
type TodoUpdateRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,max=50"`
	Body  *string `json:"body,omitempty" validate:"omitempty,max=100000"`
}
