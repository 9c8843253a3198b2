package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/audira/music-metrics/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	// Catalog reads songs, albums and collaborations owned by the catalog store.
	Catalog interface {
		// SongsByArtist returns the songs of an artist in catalog order.
		SongsByArtist(ctx context.Context, artistID int64) ([]entity.Song, error)
		// SongByID returns a song or gerr.SongNotFound.
		SongByID(ctx context.Context, id int64) (*entity.Song, error)
		AlbumsByArtist(ctx context.Context, artistID int64) ([]entity.Album, error)
		AcceptedCollaborations(ctx context.Context, artistID int64) ([]entity.Collaboration, error)
	}

	Users interface {
		GetUser(ctx context.Context, id int64) (*entity.User, error)
	}

	Ratings interface {
		EntityRatingStats(ctx context.Context, itemType entity.ItemType, id int64) (entity.RatingStats, error)
		ArtistRatingStats(ctx context.Context, artistID int64) (entity.RatingStats, error)
	}

	Commerce interface {
		// AllOrders returns every order known to the commerce service, unfiltered.
		AllOrders(ctx context.Context) ([]entity.Order, error)
	}

	// Observer receives diagnostics produced while building reports.
	Observer interface {
		SalesAggregated(ctx context.Context, artistID int64, stats entity.SalesStats)
		DailyMetricsSynthesized(ctx context.Context, artistID int64, days []entity.DailyMetric)
		UpstreamFailed(ctx context.Context, upstream string, err error)
		ReportGenerated(ctx context.Context, report string, took time.Duration, err error)
	}

	Metrics interface {
		ArtistSummary(ctx context.Context, artistID int64) (*entity.MetricsSummary, error)
		ArtistDetailed(ctx context.Context, artistID int64, startDate, endDate time.Time) (*entity.MetricsDetailed, error)
		ArtistTopSongs(ctx context.Context, artistID int64, limit int) ([]entity.SongMetrics, error)
		SongMetrics(ctx context.Context, songID int64) (*entity.SongMetrics, error)
	}

	Repository interface {
		Catalog() Catalog
		Ping(ctx context.Context) error
		Close()
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
		PingContext(ctx context.Context) error

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
