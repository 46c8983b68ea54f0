package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	user "github.com/johannesjahn/bun-chat/internal/pkg/user/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/user/persistence/repository/port"
)

// LoginInput carries the credentials presented by the caller.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is the issued token together with the account it belongs to.
type LoginOutput struct {
	Token string
	User  user.User
}

// LoginUseCase verifies credentials and issues a self-contained signed token.
// An unknown username and a wrong password produce the same error.
type LoginUseCase struct {
	Repo   repository.UserRepository
	Tokens *auth.TokenService
}

func NewLoginUseCase(repo repository.UserRepository, tokens *auth.TokenService) *LoginUseCase {
	return &LoginUseCase{Repo: repo, Tokens: tokens}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", user.ErrValidation)
	}

	u, err := uc.Repo.GetByUsername(ctx, in.Username)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	hash, err := uc.Repo.GetPasswordHash(ctx, u.ID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	ok, err := auth.ComparePassword(in.Password, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !ok {
		return nil, user.ErrInvalidCredentials
	}

	token, err := uc.Tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &LoginOutput{Token: token, User: *u}, nil
}
