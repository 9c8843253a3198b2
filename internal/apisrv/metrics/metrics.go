package metrics

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/audira/music-metrics/internal/dependency"
	"github.com/audira/music-metrics/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/status"
)

const (
	defaultTopSongsLimit = 10
	defaultRangeDays     = 30
)

// Server implements handlers for metrics requests.
type Server struct {
	metrics dependency.Metrics
	now     func() time.Time
}

// New creates a new server with metrics handlers.
func New(m dependency.Metrics) *Server {
	return &Server{
		metrics: m,
		now:     time.Now,
	}
}

// Routes returns the metrics routes, relative to their mount point.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/artists/{artistId}/summary", s.GetArtistSummary)
	r.Get("/artists/{artistId}/detailed", s.GetArtistDetailed)
	r.Get("/artists/{artistId}/top-songs", s.GetArtistTopSongs)
	r.Get("/songs/{songId}", s.GetSongMetrics)
	return r
}

func (s *Server) GetArtistSummary(w http.ResponseWriter, r *http.Request) {
	artistID, err := pathID(r, "artistId")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	req := &artistRequest{ArtistID: artistID}
	if err := req.Validate(); err != nil {
		respondStatus(w, r, "invalid artist summary request", err)
		return
	}

	summary, err := s.metrics.ArtistSummary(r.Context(), req.ArtistID)
	if err != nil {
		respondStatus(w, r, "can't get artist metrics summary", err)
		return
	}
	respondJSON(w, r, http.StatusOK, dto.ConvertEntityMetricsSummary(summary))
}

// GetArtistDetailed serves the day by day report. Without dates it covers the 30 days
// ending today (UTC).
func (s *Server) GetArtistDetailed(w http.ResponseWriter, r *http.Request) {
	artistID, err := pathID(r, "artistId")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	q := r.URL.Query()
	req := &detailedRequest{
		ArtistID:  artistID,
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
	if err := req.Validate(); err != nil {
		respondStatus(w, r, "invalid artist detailed request", err)
		return
	}

	start, end, err := req.dateRange(s.now())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	detailed, err := s.metrics.ArtistDetailed(r.Context(), req.ArtistID, start, end)
	if err != nil {
		respondStatus(w, r, "can't get artist detailed metrics", err)
		return
	}
	respondJSON(w, r, http.StatusOK, dto.ConvertEntityMetricsDetailed(detailed))
}

func (s *Server) GetArtistTopSongs(w http.ResponseWriter, r *http.Request) {
	artistID, err := pathID(r, "artistId")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	req := &topSongsRequest{ArtistID: artistID, Limit: defaultTopSongsLimit}
	if v := r.URL.Query().Get("limit"); v != "" {
		if req.Limit, err = strconv.Atoi(v); err != nil {
			respondError(w, r, http.StatusBadRequest, "invalid limit")
			return
		}
	}
	if err := req.Validate(); err != nil {
		respondStatus(w, r, "invalid artist top songs request", err)
		return
	}

	top, err := s.metrics.ArtistTopSongs(r.Context(), req.ArtistID, req.Limit)
	if err != nil {
		respondStatus(w, r, "can't get artist top songs", err)
		return
	}
	respondJSON(w, r, http.StatusOK, dto.ConvertEntitySongMetricsList(top))
}

func (s *Server) GetSongMetrics(w http.ResponseWriter, r *http.Request) {
	songID, err := pathID(r, "songId")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	req := &songRequest{SongID: songID}
	if err := req.Validate(); err != nil {
		respondStatus(w, r, "invalid song metrics request", err)
		return
	}

	m, err := s.metrics.SongMetrics(r.Context(), req.SongID)
	if err != nil {
		respondStatus(w, r, "can't get song metrics", err)
		return
	}
	respondJSON(w, r, http.StatusOK, dto.ConvertEntitySongMetrics(m))
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// respondStatus maps err to an HTTP status through its gRPC code. Server side
// failures are logged and answered with the bare status text.
func respondStatus(w http.ResponseWriter, r *http.Request, msg string, err error) {
	code := runtime.HTTPStatusFromCode(status.Code(err))
	if code >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), msg,
			slog.String("err", err.Error()),
		)
		respondError(w, r, code, http.StatusText(code))
		return
	}
	var se interface{ GRPCStatus() *status.Status }
	if errors.As(err, &se) {
		respondError(w, r, code, se.GRPCStatus().Message())
		return
	}
	respondError(w, r, code, err.Error())
}

func respondJSON(w http.ResponseWriter, r *http.Request, code int, data any) {
	render.Status(r, code)
	render.JSON(w, r, data)
}

func respondError(w http.ResponseWriter, r *http.Request, code int, message string) {
	respondJSON(w, r, code, map[string]string{"error": message})
}
