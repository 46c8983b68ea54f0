package task

import (
	"context"
	"encoding/json"
	"time"

	qport "github.com/johannesjahn/bun-chat/internal/infrastructure/queue/port"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/usecase"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/port"
)

// MessageCreatedTaskType is the queue task name emitted after a message has
// been committed to the store.
const MessageCreatedTaskType = "chat:message_created"

// QueueName is the logical queue the chat domain enqueues into.
const QueueName = "chat"

// MessageCreatedPayload is the JSON payload transported via the queue. Kept
// separate from domain types to avoid coupling JSON tags to the domain.
type MessageCreatedPayload struct {
	MessageID int64 `json:"messageId"`
	ChatID    int64 `json:"chatId"`
	SenderID  int64 `json:"senderId"`
}

// NewMessageCreatedTask builds the queue task for a committed message.
func NewMessageCreatedTask(p MessageCreatedPayload) (qport.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return qport.Task{}, err
	}
	return qport.Task{Type: MessageCreatedTaskType, Payload: b}, nil
}

// RegisterMessageCreatedTask binds the fan-out handler to the worker server:
// every member of the chat except the sender gets their unread counter
// bumped. The handler is idempotent only per delivery; since counters are
// advisory, an occasional double bump after a retry is acceptable.
func RegisterMessageCreatedTask(srv qport.Server, repo repository.ChatRepository, counters *usecase.UnreadCounterUseCase) {
	srv.Register(MessageCreatedTaskType, func(ctx context.Context, t qport.Task) error {
		var p MessageCreatedPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// Malformed payload will never become valid; dropping beats retrying.
			return nil
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		memberIDs, err := repo.ListMemberIDs(ctx, p.ChatID)
		if err != nil {
			return err
		}
		return counters.Bump(ctx, p.ChatID, memberIDs, p.SenderID)
	})
}
