package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taha-arar/blog/internal/auth"
	"github.com/taha-arar/blog/internal/middleware"
	"github.com/taha-arar/blog/internal/model"
)

type controllers struct {
	auth     *AuthController
	articles *ArticleController
	authors  *AuthorController
	users    *UserController
}

// registerRoutes mounts every route under /api/v1 behind its
// authorization requirement. Fixed segments are registered before the
// :id catch-alls so /articles/page never parses as an id.
func registerRoutes(app *fiber.App, ctrl controllers) {
	api := app.Group("/api/v1")

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", middleware.Require(auth.Public()), ctrl.auth.Register)
	authRoutes.Post("/login", middleware.Require(auth.Public()), ctrl.auth.Login)
	authRoutes.Post("/logout", middleware.Require(auth.Public()), ctrl.auth.Logout)
	authRoutes.Get("/me", middleware.Require(auth.Authenticated()), ctrl.auth.Me)

	writers := middleware.Require(auth.AnyOf(model.RoleSuperAdmin, model.RoleAdmin, model.RoleAuthor))
	admins := middleware.Require(auth.AnyOf(model.RoleSuperAdmin, model.RoleAdmin))
	superadmins := middleware.Require(auth.AnyOf(model.RoleSuperAdmin))
	public := middleware.Require(auth.Public())

	articles := api.Group("/articles")
	articles.Post("/", writers, ctrl.articles.Create)
	articles.Get("/page", public, ctrl.articles.Page)
	articles.Get("/page-search", public, ctrl.articles.PageSearch)
	articles.Patch("/active/:id", admins, ctrl.articles.SetActive)
	articles.Patch("/:id/author", admins, ctrl.articles.AssignAuthor)
	articles.Put("/:id", writers, ctrl.articles.Update)
	articles.Get("/:id", middleware.Require(auth.Authenticated()), ctrl.articles.Get)
	articles.Get("/", public, ctrl.articles.List)

	authors := api.Group("/authors")
	authors.Post("/", superadmins, ctrl.authors.Create)
	authors.Get("/page", public, ctrl.authors.Page)
	authors.Get("/page-search", public, ctrl.authors.PageSearch)
	authors.Patch("/active/:id", admins, ctrl.authors.SetActive)
	authors.Put("/:id", superadmins, ctrl.authors.Update)
	authors.Delete("/:id", admins, ctrl.authors.Delete)
	authors.Get("/:id", middleware.Require(auth.SelfOrAny(model.RoleSuperAdmin, model.RoleAdmin)), ctrl.authors.Get)
	authors.Get("/", public, ctrl.authors.List)

	users := api.Group("/users")
	users.Post("/", superadmins, ctrl.users.Create)
	users.Get("/page-search", admins, ctrl.users.PageSearch)
	users.Put("/:id", superadmins, ctrl.users.Update)
	users.Delete("/:id", superadmins, ctrl.users.Delete)
	users.Get("/", admins, ctrl.users.List)
}
