package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/audira/music-metrics/internal/apisrv/metrics"
	"github.com/audira/music-metrics/internal/dependency/mocks"
	"github.com/audira/music-metrics/internal/entity"
	"github.com/audira/music-metrics/internal/observability"
	"github.com/audira/music-metrics/internal/ratelimit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestHandler(t *testing.T) (http.Handler, *mocks.Metrics, *mocks.Repository) {
	reg := prometheus.NewRegistry()
	m := mocks.NewMetrics(t)
	repo := mocks.NewRepository(t)
	s := New(&Config{AllowedOrigins: []string{"https://dashboard.example.com"}})
	return s.Handler(metrics.New(m), repo, observability.NewMetrics(reg), reg), m, repo
}

func TestHealth(t *testing.T) {
	h, _, repo := newTestHandler(t)

	repo.EXPECT().Ping(mock.Anything).Return(nil).Once()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	repo.EXPECT().Ping(mock.Anything).Return(errors.New("db down")).Once()
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsRoutesMounted(t *testing.T) {
	h, m, _ := newTestHandler(t)

	m.EXPECT().SongMetrics(mock.Anything, int64(3)).Return(&entity.SongMetrics{SongID: 3, Rank: 1}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics/songs/3", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/metrics/songs/{songId}"`)
}

func TestCORS(t *testing.T) {
	h, _, _ := newTestHandler(t)

	for origin, allowed := range map[string]bool{
		"https://dashboard.example.com": true,
		"http://localhost:3000":         true,
		"https://evil.example.com":      false,
	} {
		req := httptest.NewRequest(http.MethodOptions, "/api/metrics/songs/3", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if allowed {
			assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		} else {
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		}
	}
}

func TestIsOriginAllowed(t *testing.T) {
	assert.True(t, isOriginAllowed("https://localhost:8443", nil))
	assert.True(t, isOriginAllowed("https://a.example", []string{"https://a.example"}))
	assert.False(t, isOriginAllowed("https://b.example", []string{"https://a.example"}))
}

func TestReportRateLimit(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := mocks.NewMetrics(t)
	s := New(&Config{RateLimit: ratelimit.Config{Window: time.Minute, MaxRequests: 1}})
	h := s.Handler(metrics.New(m), mocks.NewRepository(t), observability.NewMetrics(reg), reg)

	m.EXPECT().SongMetrics(mock.Anything, int64(3)).Return(&entity.SongMetrics{SongID: 3}, nil).Once()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics/songs/3", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics/songs/3", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
