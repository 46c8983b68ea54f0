package repository

import (
	"context"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
)

// ChatRepository defines persistence operations for the chat domain.
//
// CreateChatWithMembers is the only multi-row write and must be atomic: either
// the chat row and every membership row commit together or nothing does.
// Adapters must translate a uniqueness violation on the direct key into
// chat.ErrDirectChatExists so the pair invariant holds even when two creations
// race past the pre-check.
type ChatRepository interface {
	// CreateChatWithMembers persists the chat and one membership per member id
	// in a single transaction and returns the stored chat with its id set.
	CreateChatWithMembers(ctx context.Context, c chat.Chat, memberIDs []int64) (chat.Chat, error)

	// FindDirectChatByKey returns the direct chat for the canonical pair key,
	// or nil when none exists.
	FindDirectChatByKey(ctx context.Context, key string) (*chat.Chat, error)

	// GetChat returns the chat or chat.ErrChatNotFound.
	GetChat(ctx context.Context, chatID int64) (*chat.Chat, error)

	// ListChatsByUser returns every chat the user is a member of. A user
	// without chats yields an empty slice, not an error.
	ListChatsByUser(ctx context.Context, userID int64) ([]chat.Chat, error)

	// ListMemberIDs returns the user ids of all members of the chat.
	ListMemberIDs(ctx context.Context, chatID int64) ([]int64, error)

	// IsMember reports whether the user holds a membership in the chat.
	IsMember(ctx context.Context, chatID, userID int64) (bool, error)

	// SaveMessage appends the message and returns it with id assigned.
	SaveMessage(ctx context.Context, m chat.Message) (chat.Message, error)

	// ListMessages returns all messages of the chat ordered by created_at
	// ascending, id ascending for equal timestamps.
	ListMessages(ctx context.Context, chatID int64) ([]chat.Message, error)
}
