package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/usecase"
)

// UnreadCountController returns the authenticated user's unread count for a
// chat. Counts are advisory and reset when the user fetches messages.
type UnreadCountController struct {
	Counters *usecase.UnreadCounterUseCase
	Member   *usecase.JoinChatUseCase
}

func NewUnreadCountController(counters *usecase.UnreadCounterUseCase, member *usecase.JoinChatUseCase) *UnreadCountController {
	return &UnreadCountController{Counters: counters, Member: member}
}

func (h *UnreadCountController) Handle() gin.HandlerFunc {
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

		if err := h.Member.Execute(ctx, usecase.JoinChatInput{ChatID: chatID, UserID: principal.UserID}); err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		n, err := h.Counters.Count(ctx, chatID, principal.UserID)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"chat_id": chatID, "unread": n})
	}
}
