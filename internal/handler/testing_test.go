package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/blogful/internal/config"
	"github.com/deppfellow/blogful/internal/middleware"
	"github.com/deppfellow/blogful/internal/model"
	"github.com/deppfellow/blogful/internal/server"
	"github.com/deppfellow/blogful/internal/service"
)

// memStore is an in-memory service.Store. Rows are kept as column maps and
// decoded into T through their JSON tags, which match the column names.
type memStore[T model.Entity] struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]map[string]any
	lookups int
}

func newMemStore[T model.Entity]() *memStore[T] {
	return &memStore[T]{rows: make(map[int64]map[string]any)}
}

func (m *memStore[T]) decode(row map[string]any) (*T, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (m *memStore[T]) List(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := []T{}
	for _, id := range ids {
		item, err := m.decode(m.rows[id])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (m *memStore[T]) FindByID(_ context.Context, id int64) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lookups++
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return m.decode(row)
}

func (m *memStore[T]) Insert(_ context.Context, fields map[string]any) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	row := map[string]any{"id": m.nextID}
	for k, v := range fields {
		row[k] = v
	}
	m.rows[m.nextID] = row
	return m.decode(row)
}

func (m *memStore[T]) Update(_ context.Context, id int64, fields map[string]any) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		row[k] = v
	}
	return m.decode(row)
}

func (m *memStore[T]) Delete(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Pre(echomw.RemoveTrailingSlash())
	return e
}

type testAPI struct {
	echo     *echo.Echo
	articles *memStore[model.Article]
	comments *memStore[model.Comment]
	users    *memStore[model.User]
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	s := newTestServer()
	api := &testAPI{
		echo:     newTestEcho(s),
		articles: newMemStore[model.Article](),
		comments: newMemStore[model.Comment](),
		users:    newMemStore[model.User](),
	}

	handlers := NewHandlers(s, &service.Services{
		Articles: service.NewResourceService[model.Article](api.articles, "article"),
		Comments: service.NewResourceService[model.Comment](api.comments, "comment"),
		Users:    service.NewResourceService[model.User](api.users, "user"),
	})

	g := api.echo.Group("/api")
	handlers.Articles.Register(g.Group("/articles"))
	handlers.Comments.Register(g.Group("/comments"))
	handlers.Users.Register(g.Group("/users"))

	return api
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
