package handler

import (
	"context"
	"net/http"
	"path"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogful/internal/model"
	"github.com/deppfellow/blogful/internal/validation"
)

const (
	memberIDKey  = "member_id"
	memberRowKey = "member"
)

// Resource is the business layer behind a ResourceHandler. It is
// satisfied by *service.ResourceService.
type Resource[T model.Entity] interface {
	Noun() string
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, payload model.Payload) (*T, error)
	Update(ctx context.Context, id int64, payload model.Payload) error
	Delete(ctx context.Context, id int64) error
}

// ResourceHandler serves the collection and member routes of one
// resource. C and U are the create and update payloads.
type ResourceHandler[T model.Entity, C model.Payload, U model.Payload] struct {
	Handler
	resource  Resource[T]
	newCreate func() C
	newUpdate func() U
}

func NewResourceHandler[T model.Entity, C model.Payload, U model.Payload](
	h Handler,
	resource Resource[T],
	newCreate func() C,
	newUpdate func() U,
) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{
		Handler:   h,
		resource:  resource,
		newCreate: newCreate,
		newUpdate: newUpdate,
	}
}

// Register mounts the routes on g:
//
//	GET    ""     list
//	POST   ""     create
//	GET    "/:id" fetch
//	PATCH  "/:id" update
//	DELETE "/:id" delete
//
// Member routes resolve the id first and stop with 400 or 404.
func (h *ResourceHandler[T, C, U]) Register(g *echo.Group) {
	g.GET("", Handle(h.Handler, h.list, http.StatusOK, NewEmptyRequest))
	g.POST("", Handle(h.Handler, h.create, http.StatusCreated, h.newCreate))

	exists := h.EnsureExists()
	g.GET("/:id", Handle(h.Handler, h.get, http.StatusOK, NewEmptyRequest), exists)
	g.PATCH("/:id", HandleNoContent(h.Handler, h.update, http.StatusNoContent, h.newUpdate), exists)
	g.DELETE("/:id", HandleNoContent(h.Handler, h.delete, http.StatusNoContent, NewEmptyRequest), exists)
}

// EnsureExists parses :id and loads the row before the member handler
// runs. The row and id are stored on the echo context.
func (h *ResourceHandler[T, C, U]) EnsureExists() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := validation.ParseID(c.Param("id"), h.resource.Noun())
			if err != nil {
				return err
			}

			item, err := h.resource.Get(c.Request().Context(), id)
			if err != nil {
				return err
			}

			c.Set(memberIDKey, id)
			c.Set(memberRowKey, item)
			return next(c)
		}
	}
}

func (h *ResourceHandler[T, C, U]) list(c echo.Context, _ *EmptyRequest) ([]T, error) {
	return h.resource.List(c.Request().Context())
}

func (h *ResourceHandler[T, C, U]) create(c echo.Context, req C) (*T, error) {
	item, err := h.resource.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	location := path.Join(c.Request().URL.Path, strconv.FormatInt((*item).GetID(), 10))
	c.Response().Header().Set(echo.HeaderLocation, location)

	return item, nil
}

func (h *ResourceHandler[T, C, U]) get(c echo.Context, _ *EmptyRequest) (*T, error) {
	return c.Get(memberRowKey).(*T), nil
}

func (h *ResourceHandler[T, C, U]) update(c echo.Context, req U) error {
	return h.resource.Update(c.Request().Context(), c.Get(memberIDKey).(int64), req)
}

func (h *ResourceHandler[T, C, U]) delete(c echo.Context, _ *EmptyRequest) error {
	return h.resource.Delete(c.Request().Context(), c.Get(memberIDKey).(int64))
}
