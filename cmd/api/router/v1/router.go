package v1

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	cacheport "github.com/johannesjahn/bun-chat/internal/infrastructure/cache/port"
	qport "github.com/johannesjahn/bun-chat/internal/infrastructure/queue/port"
	"github.com/johannesjahn/bun-chat/internal/infrastructure/realtime"
	chatadapter "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/adapter"
	chathttp "github.com/johannesjahn/bun-chat/internal/pkg/chat/presentation/http"
	useradapter "github.com/johannesjahn/bun-chat/internal/pkg/user/persistence/repository/adapter"
	userhttp "github.com/johannesjahn/bun-chat/internal/pkg/user/presentation/http"
)

// Deps carries everything the version 1 API needs. Queue, Cache and Hub may
// be nil when the corresponding backing service is not configured.
type Deps struct {
	Pool   *pgxpool.Pool
	Tokens *auth.TokenService
	Cache  cacheport.Cache
	Queue  qport.Client
	Hub    *realtime.Hub
	Log    *slog.Logger

	MaxMessageLength int
}

// RegisterRoutes mounts all version 1 API routes under /api/v1.
func RegisterRoutes(r *gin.Engine, d Deps) {
	chatRepo := chatadapter.NewPgChatRepository(d.Pool)
	userRepo := useradapter.NewPgUserRepository(d.Pool)

	v1 := r.Group("/api/v1")

	userhttp.RegisterRoutes(v1, userhttp.Deps{
		Repo:   userRepo,
		Tokens: d.Tokens,
	})
	chathttp.RegisterRoutes(v1, chathttp.Deps{
		ChatRepo:         chatRepo,
		UserRepo:         userRepo,
		Tokens:           d.Tokens,
		Cache:            d.Cache,
		Queue:            d.Queue,
		Hub:              d.Hub,
		Log:              d.Log,
		MaxMessageLength: d.MaxMessageLength,
	})
}
