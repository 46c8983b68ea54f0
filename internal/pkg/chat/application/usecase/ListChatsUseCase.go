package usecase

import (
	"context"
	"fmt"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/port"
)

// ListChatsInput wraps the user identifier to fetch their chats.
type ListChatsInput struct {
	UserID int64
}

// ListChatsUseCase returns every chat the user is a member of. No ordering is
// guaranteed beyond set semantics; a user without chats gets an empty slice.
type ListChatsUseCase struct {
	Repo repository.ChatRepository
}

func NewListChatsUseCase(repo repository.ChatRepository) *ListChatsUseCase {
	return &ListChatsUseCase{Repo: repo}
}

func (uc *ListChatsUseCase) Execute(ctx context.Context, in ListChatsInput) ([]chat.Chat, error) {
	chats, err := uc.Repo.ListChatsByUser(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return chats, nil
}
