package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	user "github.com/johannesjahn/bun-chat/internal/pkg/user/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/user/persistence/repository/port"
)

// ResolveUsernamesInput is the set of usernames to map to ids.
type ResolveUsernamesInput struct {
	Usernames []string
}

// ResolveUsernamesUseCase maps usernames to user ids. Every requested name
// must exist; unknown names fail the whole request so a chat can never be
// created with silently dropped participants.
type ResolveUsernamesUseCase struct {
	Repo repository.UserRepository
}

func NewResolveUsernamesUseCase(repo repository.UserRepository) *ResolveUsernamesUseCase {
	return &ResolveUsernamesUseCase{Repo: repo}
}

func (uc *ResolveUsernamesUseCase) Execute(ctx context.Context, in ResolveUsernamesInput) (map[string]int64, error) {
	names := lo.Uniq(in.Usernames)
	if len(names) == 0 {
		return map[string]int64{}, nil
	}

	resolved, err := uc.Repo.ResolveUsernames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	missing := lo.Filter(names, func(name string, _ int) bool {
		_, ok := resolved[name]
		return !ok
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: unknown usernames: %s", user.ErrValidation, strings.Join(missing, ", "))
	}
	return resolved, nil
}
