package database

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/blogful/internal/config"
)

type fakeClock struct {
	times []time.Time
}

func (c *fakeClock) now() time.Time {
	t := c.times[0]
	c.times = c.times[1:]
	return t
}

func newTracer(buf *bytes.Buffer, elapsed time.Duration) *slowQueryTracer {
	log := zerolog.New(buf)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := &fakeClock{times: []time.Time{start, start.Add(elapsed)}}
	return &slowQueryTracer{threshold: 100 * time.Millisecond, log: &log, now: clock.now}
}

func TestSlowQueryTracer_LogsSlowQuery(t *testing.T) {
	var buf bytes.Buffer
	tracer := newTracer(&buf, 250*time.Millisecond)

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{
		SQL:  "SELECT id FROM blogful_articles",
		Args: []any{"secret"},
	})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	out := buf.String()
	assert.Contains(t, out, `"message":"slow query"`)
	assert.Contains(t, out, "SELECT id FROM blogful_articles")
	assert.NotContains(t, out, "secret")
}

func TestSlowQueryTracer_IgnoresFastQuery(t *testing.T) {
	var buf bytes.Buffer
	tracer := newTracer(&buf, 5*time.Millisecond)

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Empty(t, buf.String())
}

type countingTracer struct {
	starts, ends int
}

func (c *countingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	c.starts++
	return ctx
}

func (c *countingTracer) TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData) {
	c.ends++
}

func TestMultiTracer_CallsEveryTracer(t *testing.T) {
	a, b := &countingTracer{}, &countingTracer{}
	mt := &multiTracer{tracers: []pgx.QueryTracer{a, b}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Equal(t, 1, a.starts)
	assert.Equal(t, 1, b.ends)
}

func TestPoolConfig(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		URL:             "postgres://dunder-mifflin@localhost:5432/blogful",
		MaxConns:        12,
		ConnMaxLifetime: 60,
	}}

	poolCfg, err := PoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(12), poolCfg.MaxConns)
	assert.Equal(t, time.Minute, poolCfg.MaxConnLifetime)
	assert.Equal(t, "blogful", poolCfg.ConnConfig.Database)
	assert.Equal(t, "dunder-mifflin", poolCfg.ConnConfig.User)
}

func TestPoolConfig_InvalidURL(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{URL: "postgres://%zz"}}

	_, err := PoolConfig(cfg)
	assert.Error(t, err)
}
