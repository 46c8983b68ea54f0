package usecase

import (
	"context"
	"fmt"

	user "github.com/johannesjahn/bun-chat/internal/pkg/user/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/user/persistence/repository/port"
)

// ListUsersUseCase returns all registered users.
type ListUsersUseCase struct {
	Repo repository.UserRepository
}

func NewListUsersUseCase(repo repository.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{Repo: repo}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]user.User, error) {
	users, err := uc.Repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return users, nil
}
