package http

import (
	"github.com/gin-gonic/gin"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	"github.com/johannesjahn/bun-chat/internal/pkg/user/application/usecase"
	"github.com/johannesjahn/bun-chat/internal/pkg/user/persistence/repository/port"
	"github.com/johannesjahn/bun-chat/internal/pkg/user/presentation/controller"
)

// Deps bundles what the user endpoints need.
type Deps struct {
	Repo   repository.UserRepository
	Tokens *auth.TokenService
}

// RegisterRoutes registers the user directory endpoints. Registration and
// login are public; the directory listing requires a valid token.
func RegisterRoutes(g *gin.RouterGroup, d Deps) {
	registerCtl := controller.NewRegisterController(usecase.NewRegisterUserUseCase(d.Repo))
	loginCtl := controller.NewLoginController(usecase.NewLoginUseCase(d.Repo, d.Tokens))
	listCtl := controller.NewListUsersController(usecase.NewListUsersUseCase(d.Repo))

	g.POST("/users", registerCtl.Handle())
	g.POST("/login", loginCtl.Handle())

	authed := g.Group("", auth.RequireAuth(d.Tokens))
	authed.GET("/users", listCtl.Handle())
}
