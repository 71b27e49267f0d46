// Package repository handles all interactions with the database.
//
// It contains the SQL for each resource table and hides it from the
// service layer. Every method runs exactly one statement.
package repository

import (
	"github.com/deppfellow/blogful/internal/model"
	"github.com/deppfellow/blogful/internal/server"
)

// Repositories groups the stores of every resource.
type Repositories struct {
	Articles *Table[model.Article]
	Comments *Table[model.Comment]
	Users    *Table[model.User]
}

// NewRepositories builds the stores on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds the stores on top of db.
func New(db DBTX) *Repositories {
	return &Repositories{
		Articles: NewTable[model.Article](db, model.ArticlesTable, model.ArticleColumns),
		Comments: NewTable[model.Comment](db, model.CommentsTable, model.CommentColumns),
		Users:    NewTable[model.User](db, model.UsersTable, model.UserColumns),
	}
}
