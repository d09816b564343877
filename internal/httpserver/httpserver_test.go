package httpserver

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insight-srv/internal/catalog"
	"insight-srv/internal/classifier"
	"insight-srv/internal/middleware"
	"insight-srv/pkg/log"
	"insight-srv/pkg/youtube"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubYouTube struct{}

func (stubYouTube) GetVideo(context.Context, string, string) (youtube.Video, error) {
	return youtube.Video{}, youtube.ErrNotFound
}

func (stubYouTube) ListComments(context.Context, string, string, int) ([]youtube.Comment, error) {
	return nil, nil
}

type stubRedis struct{ pingErr error }

func (stubRedis) Set(context.Context, string, any, time.Duration) error { return nil }
func (stubRedis) Get(context.Context, string) (string, error)           { return "", nil }
func (stubRedis) Delete(context.Context, ...string) error               { return nil }
func (stubRedis) Exists(context.Context, string) (bool, error)          { return false, nil }
func (stubRedis) TTL(context.Context, string) (time.Duration, error)    { return 0, nil }
func (stubRedis) Close() error                                          { return nil }
func (s stubRedis) Ping(context.Context) error                          { return s.pingErr }

type stubProducer struct{ healthErr error }

func (stubProducer) Publish([]byte, []byte) error              { return nil }
func (stubProducer) PublishEvent(string, []byte, []byte) error { return nil }
func (stubProducer) Close() error                              { return nil }
func (s stubProducer) HealthCheck() error                      { return s.healthErr }

func testConfig(t *testing.T) Config {
	t.Helper()
	cat, err := catalog.DefaultCatalog()
	require.NoError(t, err)

	return Config{
		Logger:        log.NewNop(),
		Port:          8080,
		Mode:          gin.TestMode,
		Environment:   "test",
		MaxComments:   50,
		Lexicon:       classifier.DefaultLexicon(),
		Catalog:       cat,
		YouTubeClient: stubYouTube{},
	}
}

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers(context.Background()))
	return srv
}

func serve(srv *HTTPServer, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNewValidates(t *testing.T) {
	tcs := map[string]func(*Config){
		"missing port":    func(c *Config) { c.Port = 0 },
		"missing mode":    func(c *Config) { c.Mode = "" },
		"missing youtube": func(c *Config) { c.YouTubeClient = nil },
		"empty catalog":   func(c *Config) { c.Catalog = catalog.Catalog{} },
	}

	for name, mutate := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t)
			mutate(&cfg)
			_, err := New(cfg.Logger, cfg)
			assert.Error(t, err)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, testConfig(t))

	for _, path := range []string{"/health", "/live", "/ready"} {
		w := serve(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), path)
	}
}

func TestReadyCheckReportsDependencies(t *testing.T) {
	t.Run("redis down", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.RedisClient = stubRedis{pingErr: errors.New("connection refused")}
		w := serve(newTestServer(t, cfg), http.MethodGet, "/ready", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "Redis connection failed")
	})

	t.Run("kafka down", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.RedisClient = stubRedis{}
		cfg.KafkaProducer = stubProducer{healthErr: errors.New("no brokers")}
		w := serve(newTestServer(t, cfg), http.MethodGet, "/ready", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "Kafka producer unavailable")
	})

	t.Run("all connected", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.RedisClient = stubRedis{}
		cfg.KafkaProducer = stubProducer{}
		w := serve(newTestServer(t, cfg), http.MethodGet, "/ready", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"kafka":"connected"`)
		assert.Contains(t, w.Body.String(), `"redis":"connected"`)
	})
}

func TestDomainRoutesAreMapped(t *testing.T) {
	srv := newTestServer(t, testConfig(t))

	w := serve(srv, http.MethodPost, "/api/v1/comments/classify", `{"text":"I love this video"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(srv, http.MethodGet, "/api/v1/tools/popular", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(srv, http.MethodGet, "/api/v1/courses/free", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// No key configured or supplied.
	w = serve(srv, http.MethodPost, "/api/v1/comparisons", `{"url1":"https://youtu.be/aaa","url2":"https://youtu.be/bbb"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(srv, http.MethodPost, "/api/v1/analyses", `{"url":"https://youtu.be/aaa"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
