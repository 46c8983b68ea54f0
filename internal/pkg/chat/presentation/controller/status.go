package controller

import (
	"errors"
	"net/http"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	user "github.com/johannesjahn/bun-chat/internal/pkg/user/application/domain"
)

// statusForError maps core errors to HTTP status codes. The controllers are
// the only layer doing this translation; use cases never see HTTP.
func statusForError(err error) int {
	switch {
	case errors.Is(err, chat.ErrValidation), errors.Is(err, user.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, chat.ErrNotMember):
		return http.StatusForbidden
	case errors.Is(err, chat.ErrChatNotFound), errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, chat.ErrDirectChatExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
