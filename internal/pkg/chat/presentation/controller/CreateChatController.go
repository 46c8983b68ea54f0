package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	chatdomain "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/usecase"
	useruc "github.com/johannesjahn/bun-chat/internal/pkg/user/application/usecase"
)

// CreateChatController handles the chat creation endpoint (one controller per
// endpoint). The request names participants by username; this controller
// resolves them to ids and injects the requester before invoking the use
// case, which itself never auto-adds anyone.
type CreateChatController struct {
	UC      *usecase.CreateChatUseCase
	Resolve *useruc.ResolveUsernamesUseCase
}

func NewCreateChatController(uc *usecase.CreateChatUseCase, resolve *useruc.ResolveUsernamesUseCase) *CreateChatController {
	return &CreateChatController{UC: uc, Resolve: resolve}
}

type createChatRequest struct {
	Title *string  `json:"title"`
	Users []string `json:"users" binding:"required,min=1,max=100"`
}

func chatResponse(c chatdomain.Chat) gin.H {
	return gin.H{
		"id":         c.ID,
		"title":      c.Title,
		"direct":     c.IsDirect(),
		"created_at": c.CreatedAt,
	}
}

func (h *CreateChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := auth.PrincipalFromContext(c)
		if principal == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		var req createChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		resolved, err := h.Resolve.Execute(ctx, useruc.ResolveUsernamesInput{Usernames: req.Users})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		participantIDs := lo.Values(resolved)
		if !lo.Contains(participantIDs, principal.UserID) {
			participantIDs = append(participantIDs, principal.UserID)
		}

		in := usecase.CreateChatInput{
			RequesterID:    principal.UserID,
			ParticipantIDs: participantIDs,
			Title:          req.Title,
		}
		created, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, chatResponse(*created))
	}
}
