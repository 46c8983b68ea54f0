package controller

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/usecase"
)

// GetMessagesController handles fetching all messages of a chat, oldest
// first. Only members may read a chat; fetching also resets the reader's
// unread counter.
type GetMessagesController struct {
	UC       *usecase.GetMessagesUseCase
	Member   *usecase.JoinChatUseCase
	Counters *usecase.UnreadCounterUseCase
	Log      *slog.Logger
}

func NewGetMessagesController(uc *usecase.GetMessagesUseCase, member *usecase.JoinChatUseCase, counters *usecase.UnreadCounterUseCase, log *slog.Logger) *GetMessagesController {
	return &GetMessagesController{UC: uc, Member: member, Counters: counters, Log: log}
}

func (h *GetMessagesController) Handle() gin.HandlerFunc {
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

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, usecase.GetMessagesInput{ChatID: chatID})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		if err := h.Member.Execute(ctx, usecase.JoinChatInput{ChatID: chatID, UserID: principal.UserID}); err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		if h.Counters != nil {
			if err := h.Counters.Reset(ctx, chatID, principal.UserID); err != nil {
				h.Log.Warn("unread counter reset failed", "chat_id", chatID, "user_id", principal.UserID, "error", err)
			}
		}

		out := make([]gin.H, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, messageResponse(m))
		}
		c.JSON(http.StatusOK, gin.H{"messages": out, "count": len(out)})
	}
}
