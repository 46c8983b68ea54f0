package chat_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
)

func Test_NewMessage_rejects_empty_and_whitespace_content(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := chat.NewMessage(1, 1, content, 0, time.Now())
		assert.ErrorIs(t, err, chat.ErrEmptyMessageContent)
		assert.ErrorIs(t, err, chat.ErrValidation)
	}
}

func Test_NewMessage_trims_content(t *testing.T) {
	m, err := chat.NewMessage(1, 2, "  hello  ", 0, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "hello", m.Content)
	assert.Equal(t, int64(1), m.ChatID)
	assert.Equal(t, int64(2), m.UserID)
}

func Test_NewMessage_bounds_content_in_runes(t *testing.T) {
	_, err := chat.NewMessage(1, 1, strings.Repeat("x", 11), 10, time.Now())
	assert.ErrorIs(t, err, chat.ErrMessageContentTooLong)

	// Ten multi-byte runes fit a bound of ten even though the byte count is
	// larger.
	m, err := chat.NewMessage(1, 1, strings.Repeat("ü", 10), 10, time.Now())
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ü", 10), m.Content)
}

func Test_NewMessage_falls_back_to_default_bound(t *testing.T) {
	_, err := chat.NewMessage(1, 1, strings.Repeat("x", chat.DefaultMaxContentLength), 0, time.Now())
	require.NoError(t, err)

	_, err = chat.NewMessage(1, 1, strings.Repeat("x", chat.DefaultMaxContentLength+1), 0, time.Now())
	assert.ErrorIs(t, err, chat.ErrMessageContentTooLong)
}
