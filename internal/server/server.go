package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taha-arar/blog/internal/auth"
	"github.com/taha-arar/blog/internal/middleware"
	"github.com/taha-arar/blog/internal/repository"
)

// Dependencies holds everything the HTTP layer needs
type Dependencies struct {
	Config   auth.Config
	Users    repository.Users
	Authors  repository.Authors
	Articles repository.Articles
	Logger   auth.Logger
}

// New assembles the fiber application: error boundary, request-id and
// authentication middleware, then the routed controllers.
func New(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "blog",
		ErrorHandler: ErrorHandler,
	})

	tokens := auth.NewTokenService(deps.Config, deps.Logger)
	cookies := auth.NewCookieTransport(deps.Config)
	authenticator := auth.NewAuthenticator(deps.Users, tokens).WithLogger(deps.Logger)

	app.Use(middleware.RequestID())
	app.Use(middleware.Authenticate(cookies, tokens, deps.Users, deps.Logger))

	registerRoutes(app, controllers{
		auth: &AuthController{
			Auth:    authenticator,
			Cookies: cookies,
			Users:   deps.Users,
			Logger:  deps.Logger,
		},
		articles: &ArticleController{
			Articles: deps.Articles,
			Authors:  deps.Authors,
			Logger:   deps.Logger,
		},
		authors: &AuthorController{
			Authors: deps.Authors,
			Logger:  deps.Logger,
		},
		users: &UserController{
			Users:  deps.Users,
			Logger: deps.Logger,
		},
	})

	return app
}
