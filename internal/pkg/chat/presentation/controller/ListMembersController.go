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

// ListMembersController returns the user ids of all members of a chat.
type ListMembersController struct {
	UC     *usecase.ListMembersUseCase
	Member *usecase.JoinChatUseCase
}

func NewListMembersController(uc *usecase.ListMembersUseCase, member *usecase.JoinChatUseCase) *ListMembersController {
	return &ListMembersController{UC: uc, Member: member}
}

func (h *ListMembersController) Handle() gin.HandlerFunc {
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

		ids, err := h.UC.Execute(ctx, usecase.ListMembersInput{ChatID: chatID})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		if err := h.Member.Execute(ctx, usecase.JoinChatInput{ChatID: chatID, UserID: principal.UserID}); err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"member_ids": ids, "count": len(ids)})
	}
}
