package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insight-srv/internal/comparison"
	"insight-srv/internal/middleware"
	"insight-srv/internal/model"
	"insight-srv/internal/video"
	"insight-srv/pkg/log"
	"insight-srv/pkg/youtube"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	result comparison.ComparisonResult
	err    error
	apiKey string
}

func (f *fakeUseCase) Compare(ctx context.Context, _ comparison.CompareInput) (comparison.ComparisonResult, error) {
	f.apiKey = youtube.APIKeyFromContext(ctx)
	return f.result, f.err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newRouter(uc comparison.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.Middleware{}
	r.Use(mw.Recovery())
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group(""), mw)
	return r
}

func doCompare(r *gin.Engine, body string, header map[string]string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparisons", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestCompareHandlerOK(t *testing.T) {
	uc := &fakeUseCase{result: comparison.ComparisonResult{
		ID: "cmp-1",
		Item1: comparison.Item{
			Video: model.VideoStats{ID: "aaa", Title: "A", Duration: "PT4M5S"},
			Score: comparison.Score{Composite: 99.999},
			Pros:  []string{comparison.ProHighViewership},
			Cons:  []string{comparison.ConFallback},
		},
		Verdict:    comparison.Verdict{Winner: comparison.WinnerItem1, Reason: "r", Summary: "s"},
		ComparedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}}
	r := newRouter(uc)

	w, env := doCompare(r, `{"url1":"https://youtu.be/aaa","url2":"https://youtu.be/bbb"}`,
		map[string]string{"X-YouTube-Api-Key": "user-key"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-key", uc.apiKey)

	var got compareResp
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "item1", got.Verdict.Winner)
	assert.Equal(t, 100.0, got.Item1.Score.Composite)
	assert.Equal(t, "4:05", got.Item1.Video.Duration)
	assert.Equal(t, "2024-06-15T12:00:00Z", got.ComparedAt)
}

func TestCompareHandlerMissingURL(t *testing.T) {
	w, env := doCompare(newRouter(&fakeUseCase{}), `{"url1":"https://youtu.be/aaa"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestCompareHandlerErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: %w", comparison.ErrInvalidURL, video.ErrInvalidURL), http.StatusBadRequest},
		{fmt.Errorf("%w: %w", comparison.ErrDataUnavailable, video.ErrVideoNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: %w", comparison.ErrDataUnavailable, video.ErrQuotaExceeded), http.StatusTooManyRequests},
		{fmt.Errorf("%w: %w", comparison.ErrDataUnavailable, video.ErrAccessDenied), http.StatusForbidden},
		{fmt.Errorf("%w: %w", comparison.ErrDataUnavailable, video.ErrAPINotEnabled), http.StatusForbidden},
		{fmt.Errorf("%w: %w", comparison.ErrDataUnavailable, video.ErrAPIKeyMissing), http.StatusUnauthorized},
		{fmt.Errorf("%w: %w", comparison.ErrDataUnavailable, video.ErrProviderFailed), http.StatusBadGateway},
	}
	for _, tt := range tests {
		w, env := doCompare(newRouter(&fakeUseCase{err: tt.err}), `{"url1":"a","url2":"b"}`, nil)
		assert.Equal(t, tt.code, w.Code, tt.err.Error())
		assert.Empty(t, env.Data)
	}
}
