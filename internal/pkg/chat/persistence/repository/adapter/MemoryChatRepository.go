package adapter

import (
	"context"
	"sort"
	"sync"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/port"
)

// MemoryChatRepository is an in-memory chat repository. It mirrors the
// Postgres adapter's semantics, including the unique direct-key guarantee, so
// use cases can be exercised in isolation (one instance per test, no shared
// state between instances).
type MemoryChatRepository struct {
	mu          sync.Mutex
	nextChatID  int64
	nextMsgID   int64
	chats       map[int64]chat.Chat
	directKeys  map[string]int64 // canonical pair key -> chat id
	memberships map[int64][]int64
	messages    map[int64][]chat.Message
}

func NewMemoryChatRepository() *MemoryChatRepository {
	return &MemoryChatRepository{
		nextChatID:  1,
		nextMsgID:   1,
		chats:       make(map[int64]chat.Chat),
		directKeys:  make(map[string]int64),
		memberships: make(map[int64][]int64),
		messages:    make(map[int64][]chat.Message),
	}
}

var _ repository.ChatRepository = (*MemoryChatRepository)(nil)

func (r *MemoryChatRepository) CreateChatWithMembers(ctx context.Context, c chat.Chat, memberIDs []int64) (chat.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Same guarantee as the unique index: the key check and the insert happen
	// under one lock, so a racing creation for the same pair loses here.
	if c.DirectKey != nil {
		if _, taken := r.directKeys[*c.DirectKey]; taken {
			return chat.Chat{}, chat.ErrDirectChatExists
		}
	}

	c.ID = r.nextChatID
	r.nextChatID++
	r.chats[c.ID] = c
	if c.DirectKey != nil {
		r.directKeys[*c.DirectKey] = c.ID
	}
	r.memberships[c.ID] = append([]int64(nil), memberIDs...)
	return c, nil
}

func (r *MemoryChatRepository) FindDirectChatByKey(ctx context.Context, key string) (*chat.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.directKeys[key]
	if !ok {
		return nil, nil
	}
	c := r.chats[id]
	return &c, nil
}

func (r *MemoryChatRepository) GetChat(ctx context.Context, chatID int64) (*chat.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.chats[chatID]
	if !ok {
		return nil, chat.ErrChatNotFound
	}
	return &c, nil
}

func (r *MemoryChatRepository) ListChatsByUser(ctx context.Context, userID int64) ([]chat.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chats := make([]chat.Chat, 0)
	for chatID, members := range r.memberships {
		for _, uid := range members {
			if uid == userID {
				chats = append(chats, r.chats[chatID])
				break
			}
		}
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i].ID < chats[j].ID })
	return chats, nil
}

func (r *MemoryChatRepository) ListMemberIDs(ctx context.Context, chatID int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := append([]int64(nil), r.memberships[chatID]...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *MemoryChatRepository) IsMember(ctx context.Context, chatID, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, uid := range r.memberships[chatID] {
		if uid == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryChatRepository) SaveMessage(ctx context.Context, m chat.Message) (chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextMsgID
	r.nextMsgID++
	r.messages[m.ChatID] = append(r.messages[m.ChatID], m)
	return m, nil
}

func (r *MemoryChatRepository) ListMessages(ctx context.Context, chatID int64) ([]chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs := append([]chat.Message(nil), r.messages[chatID]...)
	sort.Slice(msgs, func(i, j int) bool {
		if msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].ID < msgs[j].ID
		}
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}
