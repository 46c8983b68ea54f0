package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/port"
)

// CreateChatInput carries the required data to open a new chat. ParticipantIDs
// must already include the requester; resolving usernames and injecting the
// requester id is the gateway's job, not this use case's.
type CreateChatInput struct {
	RequesterID    int64
	ParticipantIDs []int64
	Title          *string
}

// CreateChatUseCase creates direct and group chats.
//
// Exactly two distinct participants make a direct chat (no title allowed); a
// direct chat per unordered pair is unique. More than two make a group chat
// (title required), created unconditionally.
//
// The duplicate pre-check below is advisory only: two concurrent creations
// for the same pair can both pass it. The repository's unique direct-key
// guarantee is what actually enforces the invariant; the loser surfaces
// chat.ErrDirectChatExists exactly as if the pre-check had caught it.
type CreateChatUseCase struct {
	Repo repository.ChatRepository
}

func NewCreateChatUseCase(repo repository.ChatRepository) *CreateChatUseCase {
	return &CreateChatUseCase{Repo: repo}
}

// Execute validates the request and persists the chat with its memberships
// atomically. No write happens when validation fails.
func (uc *CreateChatUseCase) Execute(ctx context.Context, in CreateChatInput) (*chat.Chat, error) {
	ids := lo.Uniq(in.ParticipantIDs)
	if len(ids) < 2 {
		return nil, chat.ErrTooFewParticipants
	}
	if !lo.Contains(ids, in.RequesterID) {
		return nil, chat.ErrRequesterNotIncluded
	}

	c, err := chat.NewChat(len(ids), in.Title, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if len(ids) == 2 {
		key := chat.DirectKey(ids[0], ids[1])
		existing, err := uc.Repo.FindDirectChatByKey(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if existing != nil {
			return nil, chat.ErrDirectChatExists
		}
		c.DirectKey = &key
	}

	created, err := uc.Repo.CreateChatWithMembers(ctx, c, ids)
	if errors.Is(err, chat.ErrDirectChatExists) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &created, nil
}
