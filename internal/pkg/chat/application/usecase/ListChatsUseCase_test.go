package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/usecase"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/adapter"
)

func Test_ListChats_returns_only_chats_of_the_user(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()
	create := usecase.NewCreateChatUseCase(repo)
	ctx := context.Background()

	direct, err := create.Execute(ctx, usecase.CreateChatInput{RequesterID: 1, ParticipantIDs: []int64{1, 2}})
	require.NoError(t, err)
	group, err := create.Execute(ctx, usecase.CreateChatInput{RequesterID: 1, ParticipantIDs: []int64{1, 2, 3}, Title: strPtr("trio")})
	require.NoError(t, err)
	_, err = create.Execute(ctx, usecase.CreateChatInput{RequesterID: 2, ParticipantIDs: []int64{2, 3}})
	require.NoError(t, err)

	list := usecase.NewListChatsUseCase(repo)

	chats, err := list.Execute(ctx, usecase.ListChatsInput{UserID: 1})
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, direct.ID, chats[0].ID)
	assert.Equal(t, group.ID, chats[1].ID)

	chats, err = list.Execute(ctx, usecase.ListChatsInput{UserID: 3})
	require.NoError(t, err)
	assert.Len(t, chats, 2)

	chats, err = list.Execute(ctx, usecase.ListChatsInput{UserID: 99})
	require.NoError(t, err)
	assert.Empty(t, chats)
}

func Test_ListMembers_returns_all_member_ids(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()
	create := usecase.NewCreateChatUseCase(repo)
	ctx := context.Background()

	group, err := create.Execute(ctx, usecase.CreateChatInput{RequesterID: 2, ParticipantIDs: []int64{3, 2, 1}, Title: strPtr("trio")})
	require.NoError(t, err)

	ids, err := usecase.NewListMembersUseCase(repo).Execute(ctx, usecase.ListMembersInput{ChatID: group.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func Test_ListMembers_fails_for_missing_chat(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()

	_, err := usecase.NewListMembersUseCase(repo).Execute(context.Background(), usecase.ListMembersInput{ChatID: 404})
	assert.ErrorIs(t, err, chat.ErrChatNotFound)
}

func Test_JoinChat_admits_members_only(t *testing.T) {
	repo := adapter.NewMemoryChatRepository()
	chatID := newDirectChat(t, repo, 1, 2)

	join := usecase.NewJoinChatUseCase(repo)
	ctx := context.Background()

	assert.NoError(t, join.Execute(ctx, usecase.JoinChatInput{ChatID: chatID, UserID: 1}))
	assert.NoError(t, join.Execute(ctx, usecase.JoinChatInput{ChatID: chatID, UserID: 2}))
	assert.ErrorIs(t, join.Execute(ctx, usecase.JoinChatInput{ChatID: chatID, UserID: 3}), chat.ErrNotMember)
}
