// Package metrics builds the artist and song reports from the catalog and the
// user, rating and commerce services.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/audira/music-metrics/internal/dependency"
	"github.com/audira/music-metrics/internal/entity"
	gerr "github.com/audira/music-metrics/internal/errors"
	"github.com/audira/music-metrics/internal/stats"
	"golang.org/x/sync/errgroup"
)

const (
	reportSummary  = "summary"
	reportDetailed = "detailed"
	reportTopSongs = "top_songs"
	reportSong     = "song"

	upstreamCatalog  = "catalog"
	upstreamUsers    = "users"
	upstreamRatings  = "ratings"
	upstreamCommerce = "commerce"

	noSongTitle = "N/A"

	defaultRatingFanout = 8
)

// Config holds the tunables of the report builder.
type Config struct {
	DistributionSeed int64 `mapstructure:"distribution_seed"`
	RatingFanout     int   `mapstructure:"rating_fanout"` // concurrent per-song rating lookups
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		DistributionSeed: stats.DefaultSeed,
		RatingFanout:     defaultRatingFanout,
	}
}

// Service implements dependency.Metrics.
type Service struct {
	catalog  dependency.Catalog
	users    dependency.Users
	ratings  dependency.Ratings
	commerce dependency.Commerce
	obs      dependency.Observer
	c        Config
	now      func() time.Time
}

type Option func(*Service)

// WithClock replaces the wall clock used for the trailing 30 day sales window.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithSeed pins the seed of the synthesized daily series.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.c.DistributionSeed = seed
	}
}

func WithObserver(obs dependency.Observer) Option {
	return func(s *Service) {
		if obs != nil {
			s.obs = obs
		}
	}
}

// New creates a new report builder. A nil config means DefaultConfig.
func New(
	catalog dependency.Catalog,
	users dependency.Users,
	ratings dependency.Ratings,
	commerce dependency.Commerce,
	c *Config,
	opts ...Option,
) *Service {
	cfg := DefaultConfig()
	if c != nil {
		cfg = *c
	}
	if cfg.RatingFanout <= 0 {
		cfg.RatingFanout = defaultRatingFanout
	}
	s := &Service{
		catalog:  catalog,
		users:    users,
		ratings:  ratings,
		commerce: commerce,
		obs:      nopObserver{},
		c:        cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ArtistSummary builds the dashboard report of an artist.
//
// PlaysLast30Days is totalPlays/4 and CommentsLast30Days is totalComments/6: neither
// is measured. Sales and revenue use the real order dates.
func (s *Service) ArtistSummary(ctx context.Context, artistID int64) (_ *entity.MetricsSummary, err error) {
	defer s.track(ctx, reportSummary, time.Now(), &err)

	user, err := s.users.GetUser(ctx, artistID)
	if err != nil {
		return nil, s.fail(ctx, upstreamUsers, err)
	}
	songs, err := s.catalog.SongsByArtist(ctx, artistID)
	if err != nil {
		return nil, s.fail(ctx, upstreamCatalog, err)
	}
	albums, err := s.catalog.AlbumsByArtist(ctx, artistID)
	if err != nil {
		return nil, s.fail(ctx, upstreamCatalog, err)
	}
	collabs, err := s.catalog.AcceptedCollaborations(ctx, artistID)
	if err != nil {
		return nil, s.fail(ctx, upstreamCatalog, err)
	}
	artistRating, err := s.ratings.ArtistRatingStats(ctx, artistID)
	if err != nil {
		return nil, s.fail(ctx, upstreamRatings, err)
	}
	orders, err := s.commerce.AllOrders(ctx)
	if err != nil {
		return nil, s.fail(ctx, upstreamCommerce, err)
	}
	songRatings, err := s.songRatings(ctx, songs)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sales := stats.ArtistSales(songs, orders, now)
	s.obs.SalesAggregated(ctx, artistID, sales)

	totalPlays := stats.TotalPlays(songs)
	totalComments := stats.TotalEstimatedComments(songRatings)
	salesGrowth := stats.EstimateGrowth(sales.TotalSales)

	summary := &entity.MetricsSummary{
		ArtistID:    artistID,
		ArtistName:  user.DisplayName(),
		GeneratedAt: now.UTC(),

		TotalPlays:      totalPlays,
		PlaysLast30Days: totalPlays / 4,
		PlaysGrowthPct:  stats.EstimateGrowth(totalPlays),

		AverageRating:    artistRating.Average(),
		TotalRatings:     artistRating.Total(),
		RatingsGrowthPct: stats.EstimateGrowth(artistRating.Total()),

		TotalSales:        sales.TotalSales,
		TotalRevenue:      sales.TotalRevenue,
		SalesLast30Days:   sales.SalesLast30Days,
		RevenueLast30Days: sales.RevenueLast30Days,
		SalesGrowthPct:    salesGrowth,
		RevenueGrowthPct:  salesGrowth,

		TotalComments:      totalComments,
		CommentsLast30Days: totalComments / 6,
		CommentsGrowthPct:  stats.EstimateGrowth(totalComments),

		TotalSongs:          int64(len(songs)),
		TotalAlbums:         int64(len(albums)),
		TotalCollaborations: int64(len(collabs)),

		MostPlayedSongName: noSongTitle,
	}
	if top, ok := stats.MostPlayed(songs); ok {
		summary.MostPlayedSongID = &top.ID
		summary.MostPlayedSongName = top.Title
		summary.MostPlayedSongPlays = top.Plays
	}
	return summary, nil
}

// ArtistDetailed builds the day by day report of an artist over [startDate, endDate].
// Only the calendar dates of the bounds are used. Totals are all time figures that the
// daily series reconciles to exactly.
func (s *Service) ArtistDetailed(ctx context.Context, artistID int64, startDate, endDate time.Time) (_ *entity.MetricsDetailed, err error) {
	defer s.track(ctx, reportDetailed, time.Now(), &err)

	start, end := stats.Day(startDate), stats.Day(endDate)
	if start.After(end) {
		return nil, gerr.InvalidRange
	}
	if stats.DaysInRange(start, end) > stats.MaxRangeDays {
		return nil, gerr.RangeTooLong
	}

	user, err := s.users.GetUser(ctx, artistID)
	if err != nil {
		return nil, s.fail(ctx, upstreamUsers, err)
	}
	songs, err := s.catalog.SongsByArtist(ctx, artistID)
	if err != nil {
		return nil, s.fail(ctx, upstreamCatalog, err)
	}
	orders, err := s.commerce.AllOrders(ctx)
	if err != nil {
		return nil, s.fail(ctx, upstreamCommerce, err)
	}
	songRatings, err := s.songRatings(ctx, songs)
	if err != nil {
		return nil, err
	}

	sales := stats.ArtistSales(songs, orders, s.now())
	s.obs.SalesAggregated(ctx, artistID, sales)

	totalPlays := stats.TotalPlays(songs)
	avgRating := stats.AverageRating(songRatings)
	days, err := stats.Distribute(stats.DistributionInput{
		TotalPlays:    totalPlays,
		TotalSales:    sales.TotalSales,
		Start:         start,
		End:           end,
		AverageRating: avgRating,
		Seed:          s.c.DistributionSeed,
	})
	if err != nil {
		return nil, err
	}
	s.obs.DailyMetricsSynthesized(ctx, artistID, days)

	var comments int64
	for _, d := range days {
		comments += d.Comments
	}

	return &entity.MetricsDetailed{
		ArtistID:      artistID,
		ArtistName:    user.DisplayName(),
		StartDate:     start,
		EndDate:       end,
		DailyMetrics:  days,
		TotalPlays:    totalPlays,
		TotalSales:    sales.TotalSales,
		TotalRevenue:  sales.TotalRevenue,
		TotalComments: comments,
		AverageRating: avgRating,
	}, nil
}

// ArtistTopSongs returns the metrics of the limit most played songs of an artist,
// most played first. Ties keep catalog order.
func (s *Service) ArtistTopSongs(ctx context.Context, artistID int64, limit int) (_ []entity.SongMetrics, err error) {
	defer s.track(ctx, reportTopSongs, time.Now(), &err)

	if limit <= 0 {
		return nil, gerr.InvalidLimit
	}

	songs, err := s.catalog.SongsByArtist(ctx, artistID)
	if err != nil {
		return nil, s.fail(ctx, upstreamCatalog, err)
	}
	sorted := stats.SortByPlays(songs)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	if len(sorted) == 0 {
		return []entity.SongMetrics{}, nil
	}

	user, err := s.users.GetUser(ctx, artistID)
	if err != nil {
		return nil, s.fail(ctx, upstreamUsers, err)
	}
	orders, err := s.commerce.AllOrders(ctx)
	if err != nil {
		return nil, s.fail(ctx, upstreamCommerce, err)
	}
	songRatings, err := s.songRatings(ctx, sorted)
	if err != nil {
		return nil, err
	}

	out := make([]entity.SongMetrics, 0, len(sorted))
	for i, song := range sorted {
		out = append(out, songMetrics(song, user, songRatings[i], orders, i+1))
	}
	return out, nil
}

// SongMetrics returns the metrics of a single song, gerr.SongNotFound if it does not exist.
func (s *Service) SongMetrics(ctx context.Context, songID int64) (_ *entity.SongMetrics, err error) {
	defer s.track(ctx, reportSong, time.Now(), &err)

	song, err := s.catalog.SongByID(ctx, songID)
	if err != nil {
		return nil, s.fail(ctx, upstreamCatalog, err)
	}
	user, err := s.users.GetUser(ctx, song.ArtistID)
	if err != nil {
		return nil, s.fail(ctx, upstreamUsers, err)
	}
	catalog, err := s.catalog.SongsByArtist(ctx, song.ArtistID)
	if err != nil {
		return nil, s.fail(ctx, upstreamCatalog, err)
	}
	rating, err := s.ratings.EntityRatingStats(ctx, entity.ItemTypeSong, songID)
	if err != nil {
		return nil, s.fail(ctx, upstreamRatings, err)
	}
	orders, err := s.commerce.AllOrders(ctx)
	if err != nil {
		return nil, s.fail(ctx, upstreamCommerce, err)
	}

	m := songMetrics(*song, user, rating, orders, stats.Rank(songID, stats.SortByPlays(catalog)))
	return &m, nil
}

func songMetrics(song entity.Song, user *entity.User, rating entity.RatingStats, orders []entity.Order, rank int) entity.SongMetrics {
	sales := stats.SongSales(song.ID, orders)
	return entity.SongMetrics{
		SongID:        song.ID,
		SongName:      song.Title,
		ArtistName:    user.DisplayName(),
		TotalPlays:    song.Plays,
		AverageRating: rating.Average(),
		TotalRatings:  rating.Total(),
		TotalComments: stats.EstimatedComments(rating),
		TotalSales:    sales.TotalSales,
		TotalRevenue:  sales.TotalRevenue,
		Rank:          rank,
	}
}

// songRatings fetches the rating stats of every song. Results are indexed like songs.
func (s *Service) songRatings(ctx context.Context, songs []entity.Song) ([]entity.RatingStats, error) {
	out := make([]entity.RatingStats, len(songs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.c.RatingFanout)
	for i := range songs {
		i := i
		g.Go(func() error {
			rs, err := s.ratings.EntityRatingStats(gctx, entity.ItemTypeSong, songs[i].ID)
			if err != nil {
				return fmt.Errorf("song %d: %w", songs[i].ID, err)
			}
			out[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, upstreamRatings, err)
	}
	return out, nil
}

// fail reports a collaborator error. Catalog errors other than a missing song are
// tagged as upstream failures.
func (s *Service) fail(ctx context.Context, upstream string, err error) error {
	if upstream == upstreamCatalog && !errors.Is(err, gerr.SongNotFound) && !errors.Is(err, gerr.UpstreamUnavailable) {
		err = fmt.Errorf("%s: %w: %w", upstream, gerr.UpstreamUnavailable, err)
	}
	if errors.Is(err, gerr.UpstreamUnavailable) {
		s.obs.UpstreamFailed(ctx, upstream, err)
	}
	return err
}

func (s *Service) track(ctx context.Context, report string, started time.Time, err *error) {
	s.obs.ReportGenerated(ctx, report, time.Since(started), *err)
}

type nopObserver struct{}

func (nopObserver) SalesAggregated(context.Context, int64, entity.SalesStats) {}
func (nopObserver) DailyMetricsSynthesized(context.Context, int64, []entity.DailyMetric) {}
func (nopObserver) UpstreamFailed(context.Context, string, error) {}
func (nopObserver) ReportGenerated(context.Context, string, time.Duration, error) {}

var _ dependency.Metrics = (*Service)(nil)
