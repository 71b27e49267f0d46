package model

import (
	"time"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/sanitize"
	"github.com/deppfellow/blogful/internal/validation"
)

const CommentsTable = "blogful_comments"

var CommentColumns = []string{"id", "text", "date_commented", "article_id", "user_id"}

type Comment struct {
	ID            int64      `json:"id" db:"id"`
	Text          string     `json:"text" db:"text"`
	DateCommented *time.Time `json:"date_commented" db:"date_commented"`
	ArticleID     int64      `json:"article_id" db:"article_id"`
	UserID        int64      `json:"user_id" db:"user_id"`
}

func (c Comment) GetID() int64 { return c.ID }

// CreateCommentRequest is the body of POST /api/comments. date_commented
// falls back to the column default when omitted.
type CreateCommentRequest struct {
	Text          *string    `json:"text" validate:"required"`
	ArticleID     *int64     `json:"article_id" validate:"required"`
	UserID        *int64     `json:"user_id" validate:"required"`
	DateCommented *time.Time `json:"date_commented"`
}

func (r *CreateCommentRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateCommentRequest) Sanitize(s *sanitize.Sanitizer) {
	r.Text = s.StringPtr(r.Text)
}

func (r *CreateCommentRequest) Columns() map[string]any {
	cols := make(map[string]any, 4)
	setValue(cols, "text", r.Text)
	setValue(cols, "article_id", r.ArticleID)
	setValue(cols, "user_id", r.UserID)
	setValue(cols, "date_commented", r.DateCommented)
	return cols
}

// UpdateCommentRequest is the body of PATCH /api/comments/:id. A comment
// cannot be moved to another article or user.
type UpdateCommentRequest struct {
	Text          *string    `json:"text"`
	DateCommented *time.Time `json:"date_commented"`
}

func (r *UpdateCommentRequest) Validate() error {
	if validation.HasText(r.Text) || r.DateCommented != nil {
		return nil
	}
	return errs.NewBadRequestError("Request body must contain either 'text' or 'date_commented'", nil, nil)
}

func (r *UpdateCommentRequest) Sanitize(s *sanitize.Sanitizer) {
	r.Text = s.StringPtr(r.Text)
}

func (r *UpdateCommentRequest) Columns() map[string]any {
	cols := make(map[string]any, 2)
	setValue(cols, "text", r.Text)
	setValue(cols, "date_commented", r.DateCommented)
	return cols
}
