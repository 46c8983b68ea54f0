package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/port"
)

// SendMessageInput carries the data needed to append a message to a chat.
type SendMessageInput struct {
	ChatID   int64
	SenderID int64
	Content  string
}

// SendMessageUseCase appends a message to an existing chat. The sender must be
// a member of the chat; a non-member is rejected rather than silently
// accepted.
type SendMessageUseCase struct {
	Repo repository.ChatRepository

	// MaxContentLength bounds message content in runes; zero means the domain
	// default.
	MaxContentLength int
}

func NewSendMessageUseCase(repo repository.ChatRepository, maxContentLength int) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, MaxContentLength: maxContentLength}
}

// Execute validates the content, checks chat existence and sender membership,
// then persists and returns the message.
func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*chat.Message, error) {
	msg, err := chat.NewMessage(in.ChatID, in.SenderID, in.Content, uc.MaxContentLength, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if _, err := uc.Repo.GetChat(ctx, in.ChatID); err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	isMember, err := uc.Repo.IsMember(ctx, in.ChatID, in.SenderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !isMember {
		return nil, chat.ErrNotMember
	}

	saved, err := uc.Repo.SaveMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &saved, nil
}
