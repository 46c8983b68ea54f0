package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/usecase"
)

// ListChatsController returns every chat the authenticated user belongs to.
type ListChatsController struct {
	UC *usecase.ListChatsUseCase
}

func NewListChatsController(uc *usecase.ListChatsUseCase) *ListChatsController {
	return &ListChatsController{UC: uc}
}

func (h *ListChatsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := auth.PrincipalFromContext(c)
		if principal == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		chats, err := h.UC.Execute(ctx, usecase.ListChatsInput{UserID: principal.UserID})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(chats))
		for _, ch := range chats {
			out = append(out, chatResponse(ch))
		}
		c.JSON(http.StatusOK, gin.H{"chats": out, "count": len(out)})
	}
}
