package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesStats is the result of folding orders for one catalog selection.
type SalesStats struct {
	TotalSales        int64
	TotalRevenue      decimal.Decimal
	SalesLast30Days   int64
	RevenueLast30Days decimal.Decimal

	// diagnostics
	OrdersSeen      int
	DeliveredOrders int
	SkippedOrders   int
	MatchedItems    int
}

// MetricsSummary is the dashboard report of an artist.
//
// Growth percentages are estimates derived from current totals, not period-over-period
// deltas. PlaysLast30Days and CommentsLast30Days are fixed fractions of the totals,
// while the sales and revenue 30 day figures come from a real order date filter.
type MetricsSummary struct {
	ArtistID    int64
	ArtistName  string
	GeneratedAt time.Time

	TotalPlays      int64
	PlaysLast30Days int64
	PlaysGrowthPct  float64

	AverageRating    float64
	TotalRatings     int64
	RatingsGrowthPct float64

	TotalSales        int64
	TotalRevenue      decimal.Decimal
	SalesLast30Days   int64
	RevenueLast30Days decimal.Decimal
	SalesGrowthPct    float64
	RevenueGrowthPct  float64

	// comments are not tracked; they are inferred from rating volume
	TotalComments      int64
	CommentsLast30Days int64
	CommentsGrowthPct  float64

	TotalSongs          int64
	TotalAlbums         int64
	TotalCollaborations int64

	MostPlayedSongID    *int64
	MostPlayedSongName  string
	MostPlayedSongPlays int64
}

// DailyMetric is one synthesized day of a detailed report.
type DailyMetric struct {
	Date          time.Time
	Plays         int64
	Sales         int64
	Revenue       decimal.Decimal
	Comments      int64
	AverageRating float64
}

// MetricsDetailed is the day by day report of an artist over an inclusive date range.
type MetricsDetailed struct {
	ArtistID      int64
	ArtistName    string
	StartDate     time.Time
	EndDate       time.Time
	DailyMetrics  []DailyMetric
	TotalPlays    int64
	TotalSales    int64
	TotalRevenue  decimal.Decimal
	TotalComments int64
	AverageRating float64
}

// SongMetrics is the performance of a single song.
type SongMetrics struct {
	SongID        int64
	SongName      string
	ArtistName    string
	TotalPlays    int64
	AverageRating float64
	TotalRatings  int64
	TotalComments int64
	TotalSales    int64
	TotalRevenue  decimal.Decimal
	Rank          int
}
