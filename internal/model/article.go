package model

import (
	"time"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/sanitize"
	"github.com/deppfellow/blogful/internal/validation"
)

// ArticlesTable is the table articles are stored in.
const ArticlesTable = "blogful_articles"

// ArticleColumns lists the columns of ArticlesTable in response order.
var ArticleColumns = []string{"id", "title", "content", "style", "date_published", "author"}

const articleFieldsMessage = `must include valid field of "title", "content", "style"`

type Article struct {
	ID            int64      `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Content       string     `json:"content" db:"content"`
	Style         string     `json:"style" db:"style"`
	DatePublished *time.Time `json:"date_published" db:"date_published"`
	Author        *int64     `json:"author" db:"author"`
}

func (a Article) GetID() int64 { return a.ID }

// CreateArticleRequest is the body of POST /api/articles.
type CreateArticleRequest struct {
	Title         *string    `json:"title" validate:"required"`
	Content       *string    `json:"content" validate:"required"`
	Style         *string    `json:"style" validate:"required"`
	DatePublished *time.Time `json:"date_published"`
	Author        *int64     `json:"author"`
}

func (r *CreateArticleRequest) Validate() error {
	if r.Title == nil && r.Content == nil && r.Style == nil && r.DatePublished == nil {
		return errs.NewBadRequestError(articleFieldsMessage, nil, nil)
	}
	return validation.Struct(r)
}

func (r *CreateArticleRequest) Sanitize(s *sanitize.Sanitizer) {
	r.Title = s.StringPtr(r.Title)
	r.Content = s.StringPtr(r.Content)
	r.Style = s.StringPtr(r.Style)
}

func (r *CreateArticleRequest) Columns() map[string]any {
	cols := make(map[string]any, 5)
	setValue(cols, "title", r.Title)
	setValue(cols, "content", r.Content)
	setValue(cols, "style", r.Style)
	setValue(cols, "date_published", r.DatePublished)
	setValue(cols, "author", r.Author)
	return cols
}

// UpdateArticleRequest is the body of PATCH /api/articles/:id.
type UpdateArticleRequest struct {
	Title         *string    `json:"title"`
	Content       *string    `json:"content"`
	Style         *string    `json:"style"`
	DatePublished *time.Time `json:"date_published"`
	Author        *int64     `json:"author"`
}

func (r *UpdateArticleRequest) Validate() error {
	if validation.HasText(r.Title) || validation.HasText(r.Content) || validation.HasText(r.Style) ||
		r.DatePublished != nil || r.Author != nil {
		return nil
	}
	return errs.NewBadRequestError(articleFieldsMessage, nil, nil)
}

func (r *UpdateArticleRequest) Sanitize(s *sanitize.Sanitizer) {
	r.Title = s.StringPtr(r.Title)
	r.Content = s.StringPtr(r.Content)
	r.Style = s.StringPtr(r.Style)
}

func (r *UpdateArticleRequest) Columns() map[string]any {
	cols := make(map[string]any, 5)
	setValue(cols, "title", r.Title)
	setValue(cols, "content", r.Content)
	setValue(cols, "style", r.Style)
	setValue(cols, "date_published", r.DatePublished)
	setValue(cols, "author", r.Author)
	return cols
}
