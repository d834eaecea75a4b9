package response

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the wire shape every handler answers with. Callers inspect
// Status rather than the transport status code, which stays 200 for both
// logical outcomes to keep compatibility with existing clients.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
}

// LoginFailure is the distinct body login answers with when the email lookup
// or the password comparison fails.
type LoginFailure struct {
	LoginSuccess bool   `json:"loginSuccess"`
	Message      string `json:"message"`
}

type AuthCheckResponse struct {
	IsAuth    bool   `json:"isAuth"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// UserDetailsResponse mirrors the profile-fetch body, which carries the user
// under userCredentials rather than the envelope's data key.
type UserDetailsResponse struct {
	Status          string       `json:"status"`
	Message         string       `json:"message"`
	UserCredentials UserResponse `json:"userCredentials"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TodoResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
