// Package observability turns report diagnostics into logs and Prometheus metrics.
package observability

import (
	"context"
	"log/slog"
	"time"

	"github.com/audira/music-metrics/internal/entity"
	"google.golang.org/grpc/status"
)

// Observer implements dependency.Observer.
type Observer struct {
	m *Metrics
}

func NewObserver(m *Metrics) *Observer {
	return &Observer{m: m}
}

func (o *Observer) SalesAggregated(ctx context.Context, artistID int64, s entity.SalesStats) {
	o.m.OrdersScannedTotal.WithLabelValues("delivered").Add(float64(s.DeliveredOrders))
	o.m.OrdersScannedTotal.WithLabelValues("skipped").Add(float64(s.SkippedOrders))

	slog.Default().DebugContext(ctx, "sales aggregated",
		slog.Int64("artist_id", artistID),
		slog.Int("orders_seen", s.OrdersSeen),
		slog.Int("delivered_orders", s.DeliveredOrders),
		slog.Int("skipped_orders", s.SkippedOrders),
		slog.Int("matched_items", s.MatchedItems),
		slog.Int64("total_sales", s.TotalSales),
		slog.String("total_revenue", s.TotalRevenue.StringFixed(2)),
		slog.Int64("sales_last_30_days", s.SalesLast30Days),
	)
}

func (o *Observer) DailyMetricsSynthesized(ctx context.Context, artistID int64, days []entity.DailyMetric) {
	o.m.SynthesizedDaysTotal.Add(float64(len(days)))

	var active int
	for _, d := range days {
		if d.Plays > 0 || d.Sales > 0 {
			active++
		}
	}
	slog.Default().DebugContext(ctx, "daily metrics synthesized",
		slog.Int64("artist_id", artistID),
		slog.Int("days", len(days)),
		slog.Int("active_days", active),
	)
}

func (o *Observer) UpstreamFailed(ctx context.Context, upstream string, err error) {
	o.m.UpstreamFailuresTotal.WithLabelValues(upstream).Inc()
	slog.Default().ErrorContext(ctx, "upstream call failed",
		slog.String("upstream", upstream),
		slog.String("err", err.Error()),
	)
}

func (o *Observer) ReportGenerated(ctx context.Context, report string, took time.Duration, err error) {
	o.m.ReportsTotal.WithLabelValues(report, status.Code(err).String()).Inc()
	o.m.ReportDuration.WithLabelValues(report).Observe(took.Seconds())

	if err != nil {
		slog.Default().WarnContext(ctx, "report failed",
			slog.String("report", report),
			slog.Duration("took", took),
			slog.String("err", err.Error()),
		)
		return
	}
	slog.Default().InfoContext(ctx, "report generated",
		slog.String("report", report),
		slog.Duration("took", took),
	)
}
