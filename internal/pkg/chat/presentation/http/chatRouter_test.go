package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	chatadapter "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/adapter"
	chathttp "github.com/johannesjahn/bun-chat/internal/pkg/chat/presentation/http"
	useruc "github.com/johannesjahn/bun-chat/internal/pkg/user/application/usecase"
	useradapter "github.com/johannesjahn/bun-chat/internal/pkg/user/persistence/repository/adapter"
)

type chatAPI struct {
	r      *gin.Engine
	tokens map[string]string // username -> bearer token
}

// newChatAPI spins up the chat endpoints on in-memory repositories with the
// given users registered and logged in.
func newChatAPI(t *testing.T, usernames ...string) *chatAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := useradapter.NewMemoryUserRepository()
	tokenSvc := auth.NewTokenService("test-secret", time.Hour)

	api := &chatAPI{tokens: make(map[string]string)}
	for _, name := range usernames {
		u, err := useruc.NewRegisterUserUseCase(userRepo).Execute(context.Background(), useruc.RegisterUserInput{
			Username: name, Password: "a long password", Name: name,
		})
		require.NoError(t, err)
		token, err := tokenSvc.Issue(u.ID, u.Username)
		require.NoError(t, err)
		api.tokens[name] = token
	}

	r := gin.New()
	chathttp.RegisterRoutes(r.Group("/api/v1"), chathttp.Deps{
		ChatRepo: chatadapter.NewMemoryChatRepository(),
		UserRepo: userRepo,
		Tokens:   tokenSvc,
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	api.r = r
	return api
}

func (a *chatAPI) do(t *testing.T, method, path, body, username string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if username != "" {
		req.Header.Set("Authorization", "Bearer "+a.tokens[username])
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

func (a *chatAPI) createChat(t *testing.T, username, body string) int64 {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/v1/chats", body, username)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func Test_ChatAPI_requires_authentication(t *testing.T) {
	api := newChatAPI(t, "alice")

	w := api.do(t, http.MethodGet, "/api/v1/chats", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_ChatAPI_direct_chat_lifecycle(t *testing.T) {
	api := newChatAPI(t, "alice", "bob")

	chatID := api.createChat(t, "alice", `{"users":["bob"]}`)

	// Same pair again, from the other side, conflicts.
	w := api.do(t, http.MethodPost, "/api/v1/chats", `{"users":["alice"]}`, "bob")
	assert.Equal(t, http.StatusConflict, w.Code)

	path := fmt.Sprintf("/api/v1/chats/%d/messages", chatID)
	for _, content := range []string{"hi bob", "you there?"} {
		w = api.do(t, http.MethodPost, path, fmt.Sprintf(`{"content":%q}`, content), "alice")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodGet, path, "", "bob")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count    int `json:"count"`
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "hi bob", resp.Messages[0].Content)
	assert.Equal(t, "you there?", resp.Messages[1].Content)

	// Both members see the chat in their listings.
	for _, name := range []string{"alice", "bob"} {
		w = api.do(t, http.MethodGet, "/api/v1/chats", "", name)
		require.Equal(t, http.StatusOK, w.Code)
		var chats struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chats))
		assert.Equal(t, 1, chats.Count, name)
	}
}

func Test_ChatAPI_group_chat_requires_title(t *testing.T) {
	api := newChatAPI(t, "alice", "bob", "carol")

	w := api.do(t, http.MethodPost, "/api/v1/chats", `{"users":["bob","carol"]}`, "alice")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	chatID := api.createChat(t, "alice", `{"title":"trio","users":["bob","carol"]}`)

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/chats/%d/members", chatID), "", "carol")
	require.Equal(t, http.StatusOK, w.Code)
	var members struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	assert.Equal(t, 3, members.Count)
}

func Test_ChatAPI_rejects_unknown_participants(t *testing.T) {
	api := newChatAPI(t, "alice")

	w := api.do(t, http.MethodPost, "/api/v1/chats", `{"users":["ghost"]}`, "alice")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ghost")
}

func Test_ChatAPI_outsiders_cannot_read_or_write(t *testing.T) {
	api := newChatAPI(t, "alice", "bob", "mallory")

	chatID := api.createChat(t, "alice", `{"users":["bob"]}`)
	path := fmt.Sprintf("/api/v1/chats/%d/messages", chatID)

	w := api.do(t, http.MethodPost, path, `{"content":"intruding"}`, "mallory")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodGet, path, "", "mallory")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_ChatAPI_missing_chat_is_not_found(t *testing.T) {
	api := newChatAPI(t, "alice")

	w := api.do(t, http.MethodGet, "/api/v1/chats/404/messages", "", "alice")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodPost, "/api/v1/chats/404/messages", `{"content":"hello"}`, "alice")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_ChatAPI_rejects_blank_message(t *testing.T) {
	api := newChatAPI(t, "alice", "bob")

	chatID := api.createChat(t, "alice", `{"users":["bob"]}`)
	w := api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/chats/%d/messages", chatID), `{"content":"   "}`, "alice")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
