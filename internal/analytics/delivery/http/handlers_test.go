package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"insight-srv/internal/analytics"
	"insight-srv/internal/engagement"
	"insight-srv/internal/middleware"
	"insight-srv/internal/model"
	"insight-srv/internal/video"
	"insight-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	out   analytics.AnalyzeOutput
	err   error
	input analytics.AnalyzeInput
}

func (f *fakeUseCase) AnalyzeVideo(_ context.Context, in analytics.AnalyzeInput) (analytics.AnalyzeOutput, error) {
	f.input = in
	return f.out, f.err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newRouter(uc analytics.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.Middleware{}
	r.Use(mw.Recovery(), mw.RequestID())
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group(""), mw)
	return r
}

func doAnalyze(r *gin.Engine, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestAnalyzeHandlerOK(t *testing.T) {
	uc := &fakeUseCase{out: analytics.AnalyzeOutput{
		ID:      "req",
		Video:   model.VideoStats{ID: "abc", Title: "T"},
		Metrics: engagement.Metrics{EngagementRate: 1.23456, TotalComments: 1, PositiveComments: 1},
		Comments: []model.Comment{
			{ID: "1", Text: "great", Sentiment: model.SentimentPositive, EmotionScore: 0.3333},
		},
		Insights: analytics.Insights{SentimentLabel: engagement.LabelVeryPositive},
	}}
	r := newRouter(uc)

	w, env := doAnalyze(r, `{"url":"https://youtu.be/abc","max_comments":20}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, uc.input.MaxComments)
	assert.Equal(t, w.Header().Get(middleware.HeaderRequestID), uc.input.RequestID)

	var got analyzeResp
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 1.23, got.Metrics.EngagementRate)
	assert.Equal(t, "Very Positive", got.Insights.SentimentLabel)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "positive", got.Comments[0].Sentiment)
	assert.Equal(t, 0.33, got.Comments[0].EmotionScore)
}

func TestAnalyzeHandlerBadBody(t *testing.T) {
	r := newRouter(&fakeUseCase{})

	w, _ := doAnalyze(r, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doAnalyze(r, `{"url":"https://youtu.be/abc","max_comments":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeHandlerErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: %w", analytics.ErrInvalidURL, video.ErrInvalidURL), http.StatusBadRequest},
		{fmt.Errorf("%w: %w", analytics.ErrDataUnavailable, video.ErrVideoNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: %w", analytics.ErrDataUnavailable, video.ErrAPINotEnabled), http.StatusForbidden},
		{fmt.Errorf("%w: %w", analytics.ErrDataUnavailable, video.ErrProviderFailed), http.StatusBadGateway},
	}
	for _, tt := range tests {
		w, _ := doAnalyze(newRouter(&fakeUseCase{err: tt.err}), `{"url":"x"}`)
		assert.Equal(t, tt.code, w.Code, tt.err.Error())
	}
}
