package adapter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/adapter"
)

func Test_ListMessages_breaks_timestamp_ties_by_id(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()
	ctx := context.Background()

	created, err := repo.CreateChatWithMembers(ctx, chat.Chat{CreatedAt: time.Now().UTC()}, []int64{1, 2})
	require.NoError(t, err)

	// Three messages sharing one timestamp, then one older message saved last.
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	for _, content := range []string{"same-a", "same-b", "same-c"} {
		_, err := repo.SaveMessage(ctx, chat.Message{ChatID: created.ID, UserID: 1, Content: content, CreatedAt: at})
		require.NoError(t, err)
	}
	_, err = repo.SaveMessage(ctx, chat.Message{ChatID: created.ID, UserID: 2, Content: "older", CreatedAt: at.Add(-time.Minute)})
	require.NoError(t, err)

	msgs, err := repo.ListMessages(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	// Oldest timestamp first, equal timestamps in ascending id order.
	assert.Equal(t, "older", msgs[0].Content)
	assert.Equal(t, "same-a", msgs[1].Content)
	assert.Equal(t, "same-b", msgs[2].Content)
	assert.Equal(t, "same-c", msgs[3].Content)
	assert.Less(t, msgs[1].ID, msgs[2].ID)
	assert.Less(t, msgs[2].ID, msgs[3].ID)
}
