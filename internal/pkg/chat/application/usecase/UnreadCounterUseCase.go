package usecase

import (
	"context"
	"errors"
	"fmt"

	cacheport "github.com/johannesjahn/bun-chat/internal/infrastructure/cache/port"
)

// UnreadCounterUseCase tracks per-user unread counts for each chat in the
// cache. Counters are advisory: a cache wipe resets them without losing any
// message.
type UnreadCounterUseCase struct {
	Cache cacheport.Cache
}

func NewUnreadCounterUseCase(cache cacheport.Cache) *UnreadCounterUseCase {
	return &UnreadCounterUseCase{Cache: cache}
}

func unreadKey(chatID, userID int64) string {
	return fmt.Sprintf("unread:%d:%d", chatID, userID)
}

// Bump increments the unread counter of every member except the sender.
func (uc *UnreadCounterUseCase) Bump(ctx context.Context, chatID int64, memberIDs []int64, senderID int64) error {
	for _, uid := range memberIDs {
		if uid == senderID {
			continue
		}
		if _, err := uc.Cache.Incr(ctx, unreadKey(chatID, uid)); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}
	return nil
}

// Count returns the unread count for the user in the chat; a missing counter
// reads as zero.
func (uc *UnreadCounterUseCase) Count(ctx context.Context, chatID, userID int64) (int64, error) {
	n, err := uc.Cache.GetInt(ctx, unreadKey(chatID, userID))
	if errors.Is(err, cacheport.ErrMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return n, nil
}

// Reset clears the unread counter after the user has fetched the messages.
func (uc *UnreadCounterUseCase) Reset(ctx context.Context, chatID, userID int64) error {
	if _, err := uc.Cache.Del(ctx, unreadKey(chatID, userID)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
