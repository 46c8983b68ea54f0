package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johannesjahn/bun-chat/internal/pkg/user/application/usecase"
)

// RegisterController creates a new account.
type RegisterController struct {
	UC *usecase.RegisterUserUseCase
}

func NewRegisterController(uc *usecase.RegisterUserUseCase) *RegisterController {
	return &RegisterController{UC: uc}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func (h *RegisterController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		created, err := h.UC.Execute(ctx, usecase.RegisterUserInput{
			Username: req.Username,
			Password: req.Password,
			Name:     req.Name,
		})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, userResponse(*created))
	}
}
