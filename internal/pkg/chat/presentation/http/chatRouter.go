package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	cacheport "github.com/johannesjahn/bun-chat/internal/infrastructure/cache/port"
	qport "github.com/johannesjahn/bun-chat/internal/infrastructure/queue/port"
	"github.com/johannesjahn/bun-chat/internal/infrastructure/realtime"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/usecase"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/presentation/controller"
	userrepo "github.com/johannesjahn/bun-chat/internal/pkg/user/persistence/repository/port"

	chatrepo "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/port"
	useruc "github.com/johannesjahn/bun-chat/internal/pkg/user/application/usecase"
)

// Deps bundles what the chat endpoints need. Queue, Cache and Hub are
// optional; endpoints degrade to the persisted-only path when they are nil.
type Deps struct {
	ChatRepo chatrepo.ChatRepository
	UserRepo userrepo.UserRepository
	Tokens   *auth.TokenService
	Cache    cacheport.Cache
	Queue    qport.Client
	Hub      *realtime.Hub
	Log      *slog.Logger

	MaxMessageLength int
}

// RegisterRoutes registers chat-related HTTP endpoints under the given router
// group. Every use case is constructed here with its dependencies passed in
// explicitly, so tests and tenants can build isolated instances the same way.
func RegisterRoutes(g *gin.RouterGroup, d Deps) {
	member := usecase.NewJoinChatUseCase(d.ChatRepo)
	counters := usecase.NewUnreadCounterUseCase(d.Cache)

	createCtl := controller.NewCreateChatController(
		usecase.NewCreateChatUseCase(d.ChatRepo),
		useruc.NewResolveUsernamesUseCase(d.UserRepo),
	)
	sendCtl := controller.NewSendMessageController(
		usecase.NewSendMessageUseCase(d.ChatRepo, d.MaxMessageLength),
		d.Queue, d.Hub, d.Log,
	)
	getCtl := controller.NewGetMessagesController(
		usecase.NewGetMessagesUseCase(d.ChatRepo), member, countersOrNil(counters, d.Cache), d.Log,
	)
	listCtl := controller.NewListChatsController(usecase.NewListChatsUseCase(d.ChatRepo))
	membersCtl := controller.NewListMembersController(usecase.NewListMembersUseCase(d.ChatRepo), member)

	authed := g.Group("", auth.RequireAuth(d.Tokens))

	authed.POST("/chats", createCtl.Handle())
	authed.GET("/chats", listCtl.Handle())
	authed.POST("/chats/:chatId/messages", sendCtl.Handle())
	authed.GET("/chats/:chatId/messages", getCtl.Handle())
	authed.GET("/chats/:chatId/members", membersCtl.Handle())

	if d.Cache != nil {
		unreadCtl := controller.NewUnreadCountController(counters, member)
		authed.GET("/chats/:chatId/unread", unreadCtl.Handle())
	}
	if d.Hub != nil {
		socketCtl := controller.NewChatSocketController(d.Hub, member, d.Log)
		authed.GET("/chats/ws", socketCtl.Handle())
	}
}

func countersOrNil(counters *usecase.UnreadCounterUseCase, cache cacheport.Cache) *usecase.UnreadCounterUseCase {
	if cache == nil {
		return nil
	}
	return counters
}
