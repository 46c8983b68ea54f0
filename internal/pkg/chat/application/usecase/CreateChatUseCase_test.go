package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/usecase"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/adapter"
)

func strPtr(s string) *string { return &s }

func Test_CreateChat_creates_direct_chat_with_key(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()
	uc := usecase.NewCreateChatUseCase(repo)

	created, err := uc.Execute(context.Background(), usecase.CreateChatInput{
		RequesterID:    1,
		ParticipantIDs: []int64{1, 2},
	})
	require.NoError(t, err)
	assert.True(t, created.IsDirect())
	require.NotNil(t, created.DirectKey)
	assert.Equal(t, chat.DirectKey(1, 2), *created.DirectKey)
	assert.Nil(t, created.Title)

	ids, err := repo.ListMemberIDs(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}

func Test_CreateChat_rejects_second_direct_chat_for_reversed_pair(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()
	uc := usecase.NewCreateChatUseCase(repo)

	_, err := uc.Execute(context.Background(), usecase.CreateChatInput{
		RequesterID:    1,
		ParticipantIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	// Same pair, other requester, reversed order.
	_, err = uc.Execute(context.Background(), usecase.CreateChatInput{
		RequesterID:    2,
		ParticipantIDs: []int64{2, 1},
	})
	assert.ErrorIs(t, err, chat.ErrDirectChatExists)
}

func Test_CreateChat_allows_one_direct_chat_per_distinct_pair(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()
	uc := usecase.NewCreateChatUseCase(repo)

	for _, pair := range [][]int64{{1, 2}, {1, 3}, {2, 3}} {
		_, err := uc.Execute(context.Background(), usecase.CreateChatInput{
			RequesterID:    pair[0],
			ParticipantIDs: pair,
		})
		require.NoError(t, err)
	}
}

func Test_CreateChat_collapses_duplicate_participant_ids(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()
	uc := usecase.NewCreateChatUseCase(repo)

	// Two distinct users after dedup, so this is a direct chat.
	created, err := uc.Execute(context.Background(), usecase.CreateChatInput{
		RequesterID:    1,
		ParticipantIDs: []int64{1, 2, 1, 2},
	})
	require.NoError(t, err)
	assert.True(t, created.IsDirect())

	ids, err := repo.ListMemberIDs(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}

func Test_CreateChat_validates_participants_and_title(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()
	uc := usecase.NewCreateChatUseCase(repo)
	ctx := context.Background()

	cases := []struct {
		name string
		in   usecase.CreateChatInput
		want error
	}{
		{
			name: "single participant",
			in:   usecase.CreateChatInput{RequesterID: 1, ParticipantIDs: []int64{1}},
			want: chat.ErrTooFewParticipants,
		},
		{
			name: "requester outside participant set",
			in:   usecase.CreateChatInput{RequesterID: 9, ParticipantIDs: []int64{1, 2}},
			want: chat.ErrRequesterNotIncluded,
		},
		{
			name: "direct chat with title",
			in:   usecase.CreateChatInput{RequesterID: 1, ParticipantIDs: []int64{1, 2}, Title: strPtr("nope")},
			want: chat.ErrDirectChatTitled,
		},
		{
			name: "group chat without title",
			in:   usecase.CreateChatInput{RequesterID: 1, ParticipantIDs: []int64{1, 2, 3}},
			want: chat.ErrGroupTitleRequired,
		},
		{
			name: "group chat with blank title",
			in:   usecase.CreateChatInput{RequesterID: 1, ParticipantIDs: []int64{1, 2, 3}, Title: strPtr("  ")},
			want: chat.ErrGroupTitleRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, chat.ErrValidation)
		})
	}

	// Nothing was written by any of the rejected requests.
	chats, err := repo.ListChatsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, chats)
}

func Test_CreateChat_creates_group_chat_unconditionally(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()
	uc := usecase.NewCreateChatUseCase(repo)
	ctx := context.Background()

	first, err := uc.Execute(ctx, usecase.CreateChatInput{
		RequesterID:    1,
		ParticipantIDs: []int64{1, 2, 3},
		Title:          strPtr("standup"),
	})
	require.NoError(t, err)
	assert.False(t, first.IsDirect())

	// Identical participant set and title: group chats are never deduplicated.
	second, err := uc.Execute(ctx, usecase.CreateChatInput{
		RequesterID:    1,
		ParticipantIDs: []int64{1, 2, 3},
		Title:          strPtr("standup"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func Test_CreateChat_concurrent_same_pair_yields_exactly_one_chat(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()
	uc := usecase.NewCreateChatUseCase(repo)

	const n = 32
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), usecase.CreateChatInput{
				RequesterID:    1,
				ParticipantIDs: []int64{1, 2},
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, chat.ErrDirectChatExists)
	}
	assert.Equal(t, 1, succeeded)

	chats, err := repo.ListChatsByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, chats, 1)
}
