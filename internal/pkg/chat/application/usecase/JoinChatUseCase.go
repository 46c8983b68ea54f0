package usecase

import (
	"context"
	"fmt"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/port"
)

// JoinChatInput validates a request to attach a realtime session to a chat.
type JoinChatInput struct {
	ChatID int64
	UserID int64
}

// JoinChatUseCase ensures the user belongs to the chat before the session is
// subscribed to its realtime room.
type JoinChatUseCase struct {
	Repo repository.ChatRepository
}

func NewJoinChatUseCase(repo repository.ChatRepository) *JoinChatUseCase {
	return &JoinChatUseCase{Repo: repo}
}

func (uc *JoinChatUseCase) Execute(ctx context.Context, in JoinChatInput) error {
	ok, err := uc.Repo.IsMember(ctx, in.ChatID, in.UserID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !ok {
		return chat.ErrNotMember
	}
	return nil
}
