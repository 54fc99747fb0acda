package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath/care-api/internal/model"
)

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	query := `
		INSERT INTO messages (id, from_user_id, to_user_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	message.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.FromUserID,
		message.ToUserID,
		message.Content,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *messageRepository) ListByRecipient(ctx context.Context, userID uuid.UUID) ([]*model.Message, error) {
	query := `
		SELECT id, from_user_id, to_user_id, content, created_at
		FROM messages
		WHERE to_user_id = $1
		ORDER BY created_at DESC
	`
	var messages []*model.Message
	err := r.db.SelectContext(ctx, &messages, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
