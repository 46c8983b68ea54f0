package controller

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	qport "github.com/johannesjahn/bun-chat/internal/infrastructure/queue/port"
	"github.com/johannesjahn/bun-chat/internal/infrastructure/realtime"
	chatdomain "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/task"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/usecase"
)

// SendMessageController handles the send-message endpoint. The message is
// persisted synchronously; queue fan-out and the realtime broadcast run after
// the commit and are best-effort (a failure is logged, never surfaced, since
// the stored row is the source of truth).
type SendMessageController struct {
	UC  *usecase.SendMessageUseCase
	Q   qport.Client
	Hub *realtime.Hub
	Log *slog.Logger
}

func NewSendMessageController(uc *usecase.SendMessageUseCase, q qport.Client, hub *realtime.Hub, log *slog.Logger) *SendMessageController {
	return &SendMessageController{UC: uc, Q: q, Hub: hub, Log: log}
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func messageResponse(m chatdomain.Message) gin.H {
	return gin.H{
		"id":         m.ID,
		"chat_id":    m.ChatID,
		"user_id":    m.UserID,
		"content":    m.Content,
		"created_at": m.CreatedAt,
	}
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := auth.PrincipalFromContext(c)
		if principal == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		chatID, err := strconv.ParseInt(c.Param("chatId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId must be an integer"})
			return
		}

		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msg, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			ChatID:   chatID,
			SenderID: principal.UserID,
			Content:  req.Content,
		})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		h.fanOut(ctx, *msg)

		c.JSON(http.StatusCreated, messageResponse(*msg))
	}
}

func (h *SendMessageController) fanOut(ctx context.Context, m chatdomain.Message) {
	if h.Q != nil {
		t, err := task.NewMessageCreatedTask(task.MessageCreatedPayload{
			MessageID: m.ID,
			ChatID:    m.ChatID,
			SenderID:  m.UserID,
		})
		if err == nil {
			_, err = h.Q.Enqueue(ctx, t, qport.EnqueueOption{Queue: task.QueueName, MaxRetry: 10})
		}
		if err != nil {
			h.Log.Warn("message fan-out enqueue failed", "chat_id", m.ChatID, "message_id", m.ID, "error", err)
		}
	}

	if h.Hub != nil {
		payload, err := json.Marshal(messageResponse(m))
		if err == nil {
			h.Hub.Broadcast(m.ChatID, payload)
		}
	}
}
