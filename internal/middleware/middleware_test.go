package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"insight-srv/pkg/log"
	"insight-srv/pkg/youtube"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Middleware{}.Recovery())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(New(log.NewNop(), nil, []string{"https://app.example"}).CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/x", map[string]string{"Origin": "https://app.example"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/x", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSAllowAll(t *testing.T) {
	r := gin.New()
	r.Use(Middleware{}.CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/x", map[string]string{"Origin": "https://any.example"})
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(Middleware{}.RequestID())
	r.GET("/x", func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/x", nil)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))

	given := uuid.NewString()
	serve(r, http.MethodGet, "/x", map[string]string{HeaderRequestID: given})
	assert.Equal(t, given, seen)

	serve(r, http.MethodGet, "/x", map[string]string{HeaderRequestID: "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", seen)
}

func TestYouTubeKey(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(Middleware{}.YouTubeKey())
	r.GET("/x", func(c *gin.Context) {
		seen = youtube.APIKeyFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	serve(r, http.MethodGet, "/x", map[string]string{HeaderYouTubeAPIKey: " k1 "})
	assert.Equal(t, "k1", seen)

	serve(r, http.MethodGet, "/x", nil)
	assert.Empty(t, seen)
}
