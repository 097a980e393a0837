package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

const maxMessageLength = 2000

type MessageService struct {
	messages repository.MessagesRepositoryI
	settings repository.SettingsRepositoryI
}

func NewMessageService(messagesRepo repository.MessagesRepositoryI, settingsRepo repository.SettingsRepositoryI) *MessageService {
	return &MessageService{
		messages: messagesRepo,
		settings: settingsRepo,
	}
}

func (ms *MessageService) Notify(ctx context.Context, recipientID uuid.UUID, text string) (*entity.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxMessageLength {
		return nil, fmt.Errorf("%w: message must be 1..%d characters", errorvalues.ErrValidation, maxMessageLength)
	}
	msg := &entity.Message{
		RecipientID: recipientID,
		Text:        text,
	}
	if err := ms.messages.Create(ctx, msg); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return msg, nil
}

func (ms *MessageService) List(ctx context.Context, recipientID uuid.UUID) ([]entity.Message, error) {
	msgs, err := ms.messages.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return msgs, nil
}

func (ms *MessageService) MarkRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	n, err := ms.messages.MarkRead(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("repository updating error: %w", err)
	}
	return n, nil
}

func (ms *MessageService) Broadcast(ctx context.Context) (string, error) {
	msg, err := ms.settings.GetBroadcast(ctx)
	if err != nil {
		return "", fmt.Errorf("repository searching error: %w", err)
	}
	return msg, nil
}

// SetBroadcast replaces the portal-wide banner. Empty message hides it.
func (ms *MessageService) SetBroadcast(ctx context.Context, message string) error {
	message = strings.TrimSpace(message)
	if len(message) > maxMessageLength {
		return fmt.Errorf("%w: broadcast is longer than %d characters", errorvalues.ErrValidation, maxMessageLength)
	}
	if err := ms.settings.SetBroadcast(ctx, message); err != nil {
		return fmt.Errorf("repository updating error: %w", err)
	}
	return nil
}
