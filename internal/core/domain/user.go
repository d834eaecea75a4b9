package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID
	Email             string `validate:"required,email,max=255"`
	EncryptedPassword string `validate:"required"`
	Firstname         string `validate:"max=100"`
	Lastname          string `validate:"max=100"`
	Token             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LoggedIn reports whether the user holds an active session token.
func (u *User) LoggedIn() bool {
	return u.Token != ""
}

func (u *User) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":                 u.ID.String(),
		"email":              u.Email,
		"encrypted_password": u.EncryptedPassword,
		"firstname":          u.Firstname,
		"lastname":           u.Lastname,
		"token":              u.Token,
		"created_at":         u.CreatedAt,
		"updated_at":         u.UpdatedAt,
	}
}
