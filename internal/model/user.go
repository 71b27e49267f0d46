package model

import (
	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/sanitize"
	"github.com/deppfellow/blogful/internal/validation"
)

const UsersTable = "blogful_users"

var UserColumns = []string{"id", "fullname", "username", "nickname", "password"}

// User is an author or commenter. Password is stored exactly as given.
type User struct {
	ID       int64   `json:"id" db:"id"`
	Fullname string  `json:"fullname" db:"fullname"`
	Username string  `json:"username" db:"username"`
	Nickname *string `json:"nickname" db:"nickname"`
	Password *string `json:"password" db:"password"`
}

func (u User) GetID() int64 { return u.ID }

type CreateUserRequest struct {
	Fullname *string `json:"fullname" validate:"required"`
	Username *string `json:"username" validate:"required"`
	Nickname *string `json:"nickname"`
	Password *string `json:"password"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateUserRequest) Sanitize(s *sanitize.Sanitizer) {
	r.Fullname = s.StringPtr(r.Fullname)
	r.Username = s.StringPtr(r.Username)
	r.Nickname = s.StringPtr(r.Nickname)
	r.Password = s.StringPtr(r.Password)
}

func (r *CreateUserRequest) Columns() map[string]any {
	cols := make(map[string]any, 4)
	setValue(cols, "fullname", r.Fullname)
	setValue(cols, "username", r.Username)
	setValue(cols, "nickname", r.Nickname)
	setValue(cols, "password", r.Password)
	return cols
}

type UpdateUserRequest struct {
	Fullname *string `json:"fullname"`
	Username *string `json:"username"`
	Nickname *string `json:"nickname"`
	Password *string `json:"password"`
}

func (r *UpdateUserRequest) Validate() error {
	if validation.HasText(r.Fullname) || validation.HasText(r.Username) ||
		validation.HasText(r.Nickname) || validation.HasText(r.Password) {
		return nil
	}
	return errs.NewBadRequestError(
		"Request body must contain either 'fullname', 'username', 'password' or 'nickname'", nil, nil)
}

func (r *UpdateUserRequest) Sanitize(s *sanitize.Sanitizer) {
	r.Fullname = s.StringPtr(r.Fullname)
	r.Username = s.StringPtr(r.Username)
	r.Nickname = s.StringPtr(r.Nickname)
	r.Password = s.StringPtr(r.Password)
}

func (r *UpdateUserRequest) Columns() map[string]any {
	cols := make(map[string]any, 4)
	setValue(cols, "fullname", r.Fullname)
	setValue(cols, "username", r.Username)
	setValue(cols, "nickname", r.Nickname)
	setValue(cols, "password", r.Password)
	return cols
}
