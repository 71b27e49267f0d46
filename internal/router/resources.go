package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogful/internal/handler"
)

func registerResourceRoutes(api *echo.Group, h *handler.Handlers) {
	h.Articles.Register(api.Group("/articles"))
	h.Comments.Register(api.Group("/comments"))
	h.Users.Register(api.Group("/users"))
}
