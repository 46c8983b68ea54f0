package controller

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	"github.com/johannesjahn/bun-chat/internal/infrastructure/realtime"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/usecase"
)

// ChatSocketController upgrades the request to a websocket and lets the
// client subscribe to rooms of chats it is a member of. Messages arrive on
// the socket when other members post while the session is subscribed.
type ChatSocketController struct {
	Hub    *realtime.Hub
	Member *usecase.JoinChatUseCase
	Log    *slog.Logger

	upgrader websocket.Upgrader
}

func NewChatSocketController(hub *realtime.Hub, member *usecase.JoinChatUseCase, log *slog.Logger) *ChatSocketController {
	return &ChatSocketController{
		Hub:    hub,
		Member: member,
		Log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// socketCommand is the client-to-server frame: join or leave a chat room.
type socketCommand struct {
	Action string `json:"action"`
	ChatID int64  `json:"chat_id"`
}

func (h *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := auth.PrincipalFromContext(c)
		if principal == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the error response.
			return
		}

		conn := realtime.NewConnection(principal.UserID, ws)
		conn.Start()
		h.Hub.Attach(conn)
		defer h.Hub.Detach(conn.ID())

		for {
			_, payload, err := ws.ReadMessage()
			if err != nil {
				return
			}

			var cmd socketCommand
			if err := json.Unmarshal(payload, &cmd); err != nil {
				continue
			}

			switch cmd.Action {
			case "join":
				in := usecase.JoinChatInput{ChatID: cmd.ChatID, UserID: principal.UserID}
				if err := h.Member.Execute(c.Request.Context(), in); err != nil {
					h.Log.Debug("socket join rejected", "chat_id", cmd.ChatID, "user_id", principal.UserID, "error", err)
					continue
				}
				h.Hub.Join(cmd.ChatID, conn)
			case "leave":
				h.Hub.Leave(cmd.ChatID, conn.ID())
			}
		}
	}
}
