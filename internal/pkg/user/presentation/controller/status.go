package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	user "github.com/johannesjahn/bun-chat/internal/pkg/user/application/domain"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, user.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, user.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func userResponse(u user.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"name":       u.Name,
		"created_at": u.CreatedAt.Format(time.RFC3339),
	}
}
