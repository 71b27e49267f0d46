// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, performs the operation against the
// repository and maps missing rows to not-found errors.
package service

import (
	"github.com/deppfellow/blogful/internal/model"
	"github.com/deppfellow/blogful/internal/repository"
	"github.com/deppfellow/blogful/internal/server"
)

type Services struct {
	Articles *ResourceService[model.Article]
	Comments *ResourceService[model.Comment]
	Users    *ResourceService[model.User]
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	s.Logger.Debug().Msg("wiring resource services")

	return &Services{
		Articles: NewResourceService[model.Article](repos.Articles, "article"),
		Comments: NewResourceService[model.Comment](repos.Comments, "comment"),
		Users:    NewResourceService[model.User](repos.Users, "user"),
	}
}
