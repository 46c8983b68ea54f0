package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/port"
)

// GetMessagesInput wraps the chat identifier to fetch its messages.
type GetMessagesInput struct {
	ChatID int64
}

// GetMessagesUseCase returns all messages of a chat, ordered by creation time
// ascending with the message id breaking ties. A missing chat is an error,
// not an empty listing.
type GetMessagesUseCase struct {
	Repo repository.ChatRepository
}

func NewGetMessagesUseCase(repo repository.ChatRepository) *GetMessagesUseCase {
	return &GetMessagesUseCase{Repo: repo}
}

func (uc *GetMessagesUseCase) Execute(ctx context.Context, in GetMessagesInput) ([]chat.Message, error) {
	if _, err := uc.Repo.GetChat(ctx, in.ChatID); err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	msgs, err := uc.Repo.ListMessages(ctx, in.ChatID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, nil
}
