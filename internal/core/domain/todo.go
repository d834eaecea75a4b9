package domain

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	ID        uuid.UUID
	Title     string `validate:"required,max=50"`
	Body      string `validate:"required,max=100000"`
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Todo) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":         t.ID.String(),
		"title":      t.Title,
		"body":       t.Body,
		"created_by": t.CreatedBy.String(),
		"created_at": t.CreatedAt,
		"updated_at": t.UpdatedAt,
	}
}

func (t *Todo) BelongsTo(userID uuid.UUID) bool {
	return t.CreatedBy == userID
}
