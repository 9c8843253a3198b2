// Package store is the MySQL backed music catalog.
package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/audira/music-metrics/internal/dependency"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
)

const (
	defaultConnMaxLifetime = 2 * time.Minute
	defaultConnMaxIdleTime = 30 * time.Second

	connectTimeout = 10 * time.Second
	migrateTimeout = 5 * time.Minute
	pingTimeout    = 5 * time.Second
)

// Config defines the catalog database connection.
type Config struct {
	DSN                string        `mapstructure:"dsn"`
	Automigrate        bool          `mapstructure:"automigrate"`
	MaxOpenConnections int           `mapstructure:"max_open_connections"`
	MaxIdleConnections int           `mapstructure:"max_idle_connections"`
	ConnMaxLifetime    time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime    time.Duration `mapstructure:"conn_max_idle_time"`
}

// MYSQLStore serves catalog reads from MySQL.
type MYSQLStore struct {
	db  dependency.DB
	raw *sqlx.DB
}

// New opens the catalog database, checks it is reachable and, when configured,
// brings the schema up to date.
func New(ctx context.Context, cfg Config) (*MYSQLStore, error) {
	d, err := sqlx.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("couldn't open catalog database: %w", err)
	}
	configurePool(d, cfg)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := d.PingContext(connectCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf("catalog database unreachable: %w", err)
	}

	if cfg.Automigrate {
		migrateCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
		defer cancel()
		if err := MigrateWithContext(migrateCtx, d.DB); err != nil {
			d.Close()
			return nil, err
		}
	}

	return &MYSQLStore{db: d, raw: d}, nil
}

func configurePool(d *sqlx.DB, cfg Config) {
	if cfg.MaxOpenConnections > 0 {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	lifetime := cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = defaultConnMaxLifetime
	}
	idle := cfg.ConnMaxIdleTime
	if idle <= 0 {
		idle = defaultConnMaxIdleTime
	}
	d.SetConnMaxLifetime(lifetime)
	d.SetConnMaxIdleTime(idle)
}

//go:embed sql
var migrations embed.FS

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "sql",
	}
}

// Migrate applies every pending catalog migration.
func Migrate(db *sql.DB) error {
	return MigrateWithContext(context.Background(), db)
}

// MigrateWithContext applies pending migrations, giving up when ctx is done.
// An abandoned run keeps going in the background until the driver returns.
func MigrateWithContext(ctx context.Context, db *sql.DB) error {
	slog.Default().InfoContext(ctx, "applying catalog migrations")

	errc := make(chan error, 1)
	var applied int
	go func() {
		n, err := migrate.Exec(db, "mysql", migrationSource(), migrate.Up)
		applied = n
		errc <- err
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("catalog migrations timed out: %w", ctx.Err())
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("catalog migrations failed: %w", err)
		}
	}
	slog.Default().InfoContext(ctx, "applied catalog migrations",
		slog.Int("count", applied),
	)
	return nil
}

// Close releases the connection pool. It is safe on a zero store.
func (ms *MYSQLStore) Close() {
	if ms.raw == nil {
		return
	}
	if err := ms.raw.Close(); err != nil {
		slog.Default().Error("couldn't close catalog database",
			slog.String("err", err.Error()),
		)
	}
}

// Ping checks database connectivity by executing a trivial query.
func (ms *MYSQLStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	var one int
	if err := ms.db.QueryRowxContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("catalog database ping failed: %w", err)
	}
	return nil
}

var _ dependency.Repository = (*MYSQLStore)(nil)
