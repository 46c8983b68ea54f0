package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	user "github.com/johannesjahn/bun-chat/internal/pkg/user/application/domain"
	"github.com/johannesjahn/bun-chat/internal/pkg/user/application/usecase"
	"github.com/johannesjahn/bun-chat/internal/pkg/user/persistence/repository/adapter"
)

func seedUsers(t *testing.T, repo *adapter.MemoryUserRepository, names ...string) map[string]int64 {
	t.Helper()
	reg := usecase.NewRegisterUserUseCase(repo)
	ids := make(map[string]int64, len(names))
	for _, name := range names {
		u, err := reg.Execute(context.Background(), usecase.RegisterUserInput{
			Username: name, Password: "a long password", Name: name,
		})
		require.NoError(t, err)
		ids[name] = u.ID
	}
	return ids
}

func Test_ResolveUsernames_maps_names_to_ids(t *testing.T) {
	repo := adapter.NewMemoryUserRepository()
	want := seedUsers(t, repo, "alice", "bob")

	got, err := usecase.NewResolveUsernamesUseCase(repo).Execute(context.Background(), usecase.ResolveUsernamesInput{
		Usernames: []string{"alice", "bob", "alice"},
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_ResolveUsernames_fails_on_unknown_name(t *testing.T) {
	repo := adapter.NewMemoryUserRepository()
	seedUsers(t, repo, "alice")

	_, err := usecase.NewResolveUsernamesUseCase(repo).Execute(context.Background(), usecase.ResolveUsernamesInput{
		Usernames: []string{"alice", "mallory"},
	})
	assert.ErrorIs(t, err, user.ErrValidation)
	assert.Contains(t, err.Error(), "mallory")
}

func Test_ResolveUsernames_empty_input_is_empty_output(t *testing.T) {
	repo := adapter.NewMemoryUserRepository()

	got, err := usecase.NewResolveUsernamesUseCase(repo).Execute(context.Background(), usecase.ResolveUsernamesInput{})
	require.NoError(t, err)
	assert.Empty(t, got)
}
