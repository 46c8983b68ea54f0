package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/port"
)

// ListMembersInput wraps the chat identifier to fetch its member ids.
type ListMembersInput struct {
	ChatID int64
}

// ListMembersUseCase returns the user ids of all members in the chat.
type ListMembersUseCase struct {
	Repo repository.ChatRepository
}

func NewListMembersUseCase(repo repository.ChatRepository) *ListMembersUseCase {
	return &ListMembersUseCase{Repo: repo}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, in ListMembersInput) ([]int64, error) {
	if _, err := uc.Repo.GetChat(ctx, in.ChatID); err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	ids, err := uc.Repo.ListMemberIDs(ctx, in.ChatID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return ids, nil
}
