package chat

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultMaxContentLength bounds message content when no explicit bound is
// configured. Counted in runes, not bytes.
const DefaultMaxContentLength = 1000

// Message is an immutable, append-only log entry in a chat. Listings order
// messages by CreatedAt ascending with ID as the tie-break, so callers see a
// stable order even for equal timestamps.
type Message struct {
	ID        int64     `db:"id"`
	ChatID    int64     `db:"chat_id"`
	UserID    int64     `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

// NewMessage validates content against the bound and returns a message ready
// to persist. maxLen <= 0 falls back to DefaultMaxContentLength.
func NewMessage(chatID, userID int64, content string, maxLen int, now time.Time) (Message, error) {
	if maxLen <= 0 {
		maxLen = DefaultMaxContentLength
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return Message{}, ErrEmptyMessageContent
	}
	if utf8.RuneCountInString(content) > maxLen {
		return Message{}, ErrMessageContentTooLong
	}

	if now.IsZero() {
		now = time.Now().UTC()
	}
	return Message{
		ChatID:    chatID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now.UTC(),
	}, nil
}
