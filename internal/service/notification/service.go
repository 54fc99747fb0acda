package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/brightpath/care-api/internal/email"
	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
	"github.com/brightpath/care-api/pkg/messaging"
)

const intakeChannel = "intake.notifications"

type Service interface {
	// NotifyIntake persists the message record and fans it out.
	// The store write is the contract: its failure is returned.
	// Broker and email delivery are best effort.
	NotifyIntake(ctx context.Context, message *model.Message) error
	// Inbox returns the notices addressed to a user, newest first.
	Inbox(ctx context.Context, userID uuid.UUID) ([]*model.Message, error)
}

type service struct {
	messages repository.MessageRepository
	broker   messaging.Broker
	emails   email.Sender
	// inbox receives an email copy of every intake notice when email
	// delivery is enabled; empty disables the copy.
	inbox string
}

func NewService(messages repository.MessageRepository, broker messaging.Broker, emails email.Sender, inbox string) Service {
	return &service{
		messages: messages,
		broker:   broker,
		emails:   emails,
		inbox:    inbox,
	}
}

func (s *service) NotifyIntake(ctx context.Context, message *model.Message) error {
	if message.Content == "" {
		return fmt.Errorf("notification content is required")
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	if s.broker != nil {
		if err := s.broker.Publish(ctx, intakeChannel, message); err != nil {
			log.Warn().Err(err).
				Str("message_id", message.ID.String()).
				Msg("failed to publish intake notification")
		}
	}

	if s.inbox != "" {
		if err := s.emails.Send(s.inbox, "New assessment submitted", message.Content); err != nil {
			log.Warn().Err(err).
				Str("message_id", message.ID.String()).
				Msg("failed to email intake notification")
		}
	}

	return nil
}

func (s *service) Inbox(ctx context.Context, userID uuid.UUID) ([]*model.Message, error) {
	messages, err := s.messages.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
