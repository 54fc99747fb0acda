package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is a one-way notice between platform users. Intake writes one
// per assessment; the recipient is empty when no doctor was assigned.
// Messages are append-only, never mutated.
type Message struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	FromUserID uuid.UUID  `json:"from_user_id" db:"from_user_id"`
	ToUserID   *uuid.UUID `json:"to_user_id,omitempty" db:"to_user_id"`
	Content    string     `json:"content" db:"content"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}
