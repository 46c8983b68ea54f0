package chat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
)

func strPtr(s string) *string { return &s }

func Test_DirectKey_is_order_independent(t *testing.T) {
	assert.Equal(t, chat.DirectKey(1, 2), chat.DirectKey(2, 1))
	assert.Equal(t, "1:2", chat.DirectKey(2, 1))
	assert.Equal(t, "7:7", chat.DirectKey(7, 7))
	assert.NotEqual(t, chat.DirectKey(1, 2), chat.DirectKey(1, 3))
}

func Test_NormalizeTitle_collapses_blank_to_nil(t *testing.T) {
	assert.Nil(t, chat.NormalizeTitle(nil))
	assert.Nil(t, chat.NormalizeTitle(strPtr("")))
	assert.Nil(t, chat.NormalizeTitle(strPtr("   ")))

	got := chat.NormalizeTitle(strPtr("  team  "))
	require.NotNil(t, got)
	assert.Equal(t, "team", *got)
}

func Test_NewChat_rejects_fewer_than_two_participants(t *testing.T) {
	_, err := chat.NewChat(1, nil, time.Now())
	assert.ErrorIs(t, err, chat.ErrTooFewParticipants)
	assert.ErrorIs(t, err, chat.ErrValidation)

	_, err = chat.NewChat(0, strPtr("solo"), time.Now())
	assert.ErrorIs(t, err, chat.ErrTooFewParticipants)
}

func Test_NewChat_rejects_titled_direct_chat(t *testing.T) {
	_, err := chat.NewChat(2, strPtr("us two"), time.Now())
	assert.ErrorIs(t, err, chat.ErrDirectChatTitled)
	assert.ErrorIs(t, err, chat.ErrValidation)
}

func Test_NewChat_treats_blank_title_as_absent_for_direct_chat(t *testing.T) {
	c, err := chat.NewChat(2, strPtr("   "), time.Now())
	require.NoError(t, err)
	assert.Nil(t, c.Title)
}

func Test_NewChat_requires_title_for_group_chat(t *testing.T) {
	_, err := chat.NewChat(3, nil, time.Now())
	assert.ErrorIs(t, err, chat.ErrGroupTitleRequired)

	_, err = chat.NewChat(3, strPtr("  "), time.Now())
	assert.ErrorIs(t, err, chat.ErrGroupTitleRequired)

	c, err := chat.NewChat(3, strPtr("the gang"), time.Now())
	require.NoError(t, err)
	require.NotNil(t, c.Title)
	assert.Equal(t, "the gang", *c.Title)
}

func Test_Chat_IsDirect_follows_direct_key(t *testing.T) {
	key := chat.DirectKey(1, 2)
	direct := chat.Chat{DirectKey: &key}
	group := chat.Chat{Title: strPtr("g")}

	assert.True(t, direct.IsDirect())
	assert.False(t, group.IsDirect())
}
