package chat

import (
	"fmt"
	"strings"
	"time"
)

// Chat is a conversation between two or more users. It is created once,
// together with its memberships, and never changes afterwards.
//
// Title is nil for direct chats and required non-empty for group chats.
// DirectKey is set only for direct chats; it holds the canonical pair key and
// is backed by a unique index so that concurrent creations of the same pair
// cannot both commit.
type Chat struct {
	ID        int64     `db:"id"`
	Title     *string   `db:"title"`
	DirectKey *string   `db:"direct_key"`
	CreatedAt time.Time `db:"created_at"`
}

// IsDirect reports whether the chat is a two-party conversation.
func (c Chat) IsDirect() bool { return c.DirectKey != nil }

// Membership links a user to a chat. Composite key (UserID, ChatID); no
// payload beyond the pair.
type Membership struct {
	UserID int64 `db:"user_id"`
	ChatID int64 `db:"chat_id"`
}

// DirectKey builds the order-independent key for a pair of user ids. Both
// orders of the same pair produce the same key.
func DirectKey(a, b int64) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

// NormalizeTitle trims the title and collapses a blank one to nil, so the
// title rules below only ever see a present, non-empty title or no title.
func NormalizeTitle(title *string) *string {
	if title == nil {
		return nil
	}
	t := strings.TrimSpace(*title)
	if t == "" {
		return nil
	}
	return &t
}

// NewChat validates the title rule against the participant count and returns
// the chat value ready to persist. participantCount must already be the count
// of distinct participants.
func NewChat(participantCount int, title *string, now time.Time) (Chat, error) {
	title = NormalizeTitle(title)

	switch {
	case participantCount < 2:
		return Chat{}, ErrTooFewParticipants
	case participantCount == 2 && title != nil:
		return Chat{}, ErrDirectChatTitled
	case participantCount > 2 && title == nil:
		return Chat{}, ErrGroupTitleRequired
	}

	if now.IsZero() {
		now = time.Now().UTC()
	}
	return Chat{Title: title, CreatedAt: now.UTC()}, nil
}
