package adapter

import (
	"context"
	"sort"
	"sync"

	user "github.com/johannesjahn/bun-chat/internal/pkg/user/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/user/persistence/repository/port"
)

// MemoryUserRepository is an in-memory user repository with the same
// semantics as the Postgres adapter, used by tests.
type MemoryUserRepository struct {
	mu        sync.Mutex
	nextID    int64
	users     map[int64]user.User
	byName    map[string]int64
	passwords map[int64]string
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		nextID:    1,
		users:     make(map[int64]user.User),
		byName:    make(map[string]int64),
		passwords: make(map[int64]string),
	}
}

var _ repository.UserRepository = (*MemoryUserRepository)(nil)

func (r *MemoryUserRepository) CreateUser(ctx context.Context, u user.User, passwordHash string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[u.Username]; taken {
		return user.User{}, user.ErrUsernameTaken
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	r.byName[u.Username] = u.ID
	r.passwords[u.ID] = passwordHash
	return u, nil
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u := r.users[id]
	return &u, nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *MemoryUserRepository) ResolveUsernames(ctx context.Context, usernames []string) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resolved := make(map[string]int64, len(usernames))
	for _, name := range usernames {
		if id, ok := r.byName[name]; ok {
			resolved[name] = id
		}
	}
	return resolved, nil
}

func (r *MemoryUserRepository) GetPasswordHash(ctx context.Context, userID int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hash, ok := r.passwords[userID]
	if !ok {
		return "", user.ErrUserNotFound
	}
	return hash, nil
}
