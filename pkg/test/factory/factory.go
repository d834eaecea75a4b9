package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
)

// DefaultPassword is the plain-text counterpart of the fabricated
// EncryptedPassword, for login round trips in tests.
const DefaultPassword = "12345678"

// NewUser fabricates a persistable user. Unless overridden, the password is
// DefaultPassword hashed with bcrypt and no session token is set.
func NewUser(customData ...map[string]any) domain.User {
	instance := fab.New(domain.User{})

	encryptedPassword, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)

	now := time.Now().UTC().Truncate(time.Second)

	defaults := map[string]any{
		"ID":                uuid.New(),
		"Email":             uuid.NewString() + "@example.com",
		"EncryptedPassword": string(encryptedPassword),
		"Token":             "",
		"CreatedAt":         now,
		"UpdatedAt":         now,
	}

	overrides := append([]map[string]any{defaults}, customData...)

	return instance.Build(mergeOverrides(overrides...))
}

// NewTodo fabricates a todo owned by the given user unless CreatedBy is
// overridden.
func NewTodo(customData ...map[string]any) domain.Todo {
	instance := fab.New(domain.Todo{})

	now := time.Now().UTC().Truncate(time.Second)

	defaults := map[string]any{
		"ID":        uuid.New(),
		"Title":     "Buy groceries",
		"Body":      "Milk, eggs, bread",
		"CreatedBy": uuid.New(),
		"CreatedAt": now,
		"UpdatedAt": now,
	}

	overrides := append([]map[string]any{defaults}, customData...)

	return instance.Build(mergeOverrides(overrides...))
}

func mergeOverrides(overrides ...map[string]any) map[string]any {
	merged := map[string]any{}

	for _, data := range overrides {
		for key, value := range data {
			merged[key] = value
		}
	}

	return merged
}
