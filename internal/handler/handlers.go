// Package handler is the HTTP layer, the first entry point after the
// router.
//
// It binds and validates requests through the validation package,
// sanitizes free text and calls the service layer.
package handler

import (
	"github.com/deppfellow/blogful/internal/model"
	"github.com/deppfellow/blogful/internal/sanitize"
	"github.com/deppfellow/blogful/internal/server"
	"github.com/deppfellow/blogful/internal/service"
)

type (
	ArticleHandler = ResourceHandler[model.Article, *model.CreateArticleRequest, *model.UpdateArticleRequest]
	CommentHandler = ResourceHandler[model.Comment, *model.CreateCommentRequest, *model.UpdateCommentRequest]
	UserHandler    = ResourceHandler[model.User, *model.CreateUserRequest, *model.UpdateUserRequest]
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health   *HealthHandler
	Articles *ArticleHandler
	Comments *CommentHandler
	Users    *UserHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	h := NewHandler(s, sanitize.New())

	return &Handlers{
		Health: NewHealthHandler(h),
		Articles: NewResourceHandler[model.Article](h, services.Articles,
			func() *model.CreateArticleRequest { return &model.CreateArticleRequest{} },
			func() *model.UpdateArticleRequest { return &model.UpdateArticleRequest{} }),
		Comments: NewResourceHandler[model.Comment](h, services.Comments,
			func() *model.CreateCommentRequest { return &model.CreateCommentRequest{} },
			func() *model.UpdateCommentRequest { return &model.UpdateCommentRequest{} }),
		Users: NewResourceHandler[model.User](h, services.Users,
			func() *model.CreateUserRequest { return &model.CreateUserRequest{} },
			func() *model.UpdateUserRequest { return &model.UpdateUserRequest{} }),
	}
}
