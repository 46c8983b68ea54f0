package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	user "github.com/johannesjahn/bun-chat/internal/pkg/user/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/user/persistence/repository/port"
)

var validate = validator.New()

// RegisterUserInput carries the data needed to create an account.
type RegisterUserInput struct {
	Username string `validate:"required,min=3,max=32,alphanum"`
	Password string `validate:"required,min=8,max=72"`
	Name     string `validate:"required,min=1,max=100"`
}

// RegisterUserUseCase creates a new user with a hashed password. The user row
// and the password row are written atomically by the repository.
type RegisterUserUseCase struct {
	Repo repository.UserRepository
}

func NewRegisterUserUseCase(repo repository.UserRepository) *RegisterUserUseCase {
	return &RegisterUserUseCase{Repo: repo}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, in RegisterUserInput) (*user.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrValidation, err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	u := user.User{
		Username:  in.Username,
		Name:      in.Name,
		CreatedAt: time.Now().UTC(),
	}
	created, err := uc.Repo.CreateUser(ctx, u, hash)
	if errors.Is(err, user.ErrUsernameTaken) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &created, nil
}
