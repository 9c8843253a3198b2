package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/audira/music-metrics/config"
	httpapi "github.com/audira/music-metrics/internal/api/http"
	apimetrics "github.com/audira/music-metrics/internal/apisrv/metrics"
	"github.com/audira/music-metrics/internal/client"
	"github.com/audira/music-metrics/internal/dependency"
	"github.com/audira/music-metrics/internal/metrics"
	"github.com/audira/music-metrics/internal/observability"
	"github.com/audira/music-metrics/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 10 * time.Second

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	once sync.Once
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting music metrics")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	om := observability.NewMetrics(reg)

	svc := metrics.New(
		a.db.Catalog(),
		client.NewUsers(&a.c.UserService),
		client.NewRatings(&a.c.RatingService),
		client.NewCommerce(&a.c.CommerceService),
		&a.c.Metrics,
		metrics.WithObserver(observability.NewObserver(om)),
	)

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	handler := a.hs.Handler(apimetrics.New(svc), a.db, om, reg)
	if err = a.hs.Start(ctx, handler); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		select {
		case <-a.hs.Done():
			a.Stop(context.Background())
		case <-a.done:
		}
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	a.once.Do(func() { a.stop(ctx) })
}

func (a *App) stop(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
