package dto

import (
	"encoding/json"
	"time"

	"github.com/audira/music-metrics/internal/entity"
	"github.com/shopspring/decimal"
)

const dateLayout = time.DateOnly

type MetricsSummary struct {
	ArtistID    int64     `json:"artistId"`
	ArtistName  string    `json:"artistName"`
	GeneratedAt time.Time `json:"generatedAt"`

	TotalPlays            int64   `json:"totalPlays"`
	PlaysLast30Days       int64   `json:"playsLast30Days"`
	PlaysGrowthPercentage float64 `json:"playsGrowthPercentage"`

	AverageRating           float64 `json:"averageRating"`
	TotalRatings            int64   `json:"totalRatings"`
	RatingsGrowthPercentage float64 `json:"ratingsGrowthPercentage"`

	TotalSales              int64       `json:"totalSales"`
	TotalRevenue            json.Number `json:"totalRevenue"`
	SalesLast30Days         int64       `json:"salesLast30Days"`
	RevenueLast30Days       json.Number `json:"revenueLast30Days"`
	SalesGrowthPercentage   float64     `json:"salesGrowthPercentage"`
	RevenueGrowthPercentage float64     `json:"revenueGrowthPercentage"`

	TotalComments            int64   `json:"totalComments"`
	CommentsLast30Days       int64   `json:"commentsLast30Days"`
	CommentsGrowthPercentage float64 `json:"commentsGrowthPercentage"`

	TotalSongs          int64 `json:"totalSongs"`
	TotalAlbums         int64 `json:"totalAlbums"`
	TotalCollaborations int64 `json:"totalCollaborations"`

	MostPlayedSongID    *int64 `json:"mostPlayedSongId"`
	MostPlayedSongName  string `json:"mostPlayedSongName"`
	MostPlayedSongPlays int64  `json:"mostPlayedSongPlays"`
}

type DailyMetric struct {
	Date          string      `json:"date"`
	Plays         int64       `json:"plays"`
	Sales         int64       `json:"sales"`
	Revenue       json.Number `json:"revenue"`
	Comments      int64       `json:"comments"`
	AverageRating float64     `json:"averageRating"`
}

type MetricsDetailed struct {
	ArtistID      int64         `json:"artistId"`
	ArtistName    string        `json:"artistName"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	DailyMetrics  []DailyMetric `json:"dailyMetrics"`
	TotalPlays    int64         `json:"totalPlays"`
	TotalSales    int64         `json:"totalSales"`
	TotalRevenue  json.Number   `json:"totalRevenue"`
	TotalComments int64         `json:"totalComments"`
	AverageRating float64       `json:"averageRating"`
}

type SongMetrics struct {
	SongID              int64       `json:"songId"`
	SongName            string      `json:"songName"`
	ArtistName          string      `json:"artistName"`
	TotalPlays          int64       `json:"totalPlays"`
	AverageRating       float64     `json:"averageRating"`
	TotalRatings        int64       `json:"totalRatings"`
	TotalComments       int64       `json:"totalComments"`
	TotalSales          int64       `json:"totalSales"`
	TotalRevenue        json.Number `json:"totalRevenue"`
	RankInArtistCatalog int         `json:"rankInArtistCatalog"`
}

// money renders d as a JSON number with two fraction digits.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func ConvertEntityMetricsSummary(m *entity.MetricsSummary) *MetricsSummary {
	if m == nil {
		return nil
	}
	return &MetricsSummary{
		ArtistID:                 m.ArtistID,
		ArtistName:               m.ArtistName,
		GeneratedAt:              m.GeneratedAt,
		TotalPlays:               m.TotalPlays,
		PlaysLast30Days:          m.PlaysLast30Days,
		PlaysGrowthPercentage:    m.PlaysGrowthPct,
		AverageRating:            m.AverageRating,
		TotalRatings:             m.TotalRatings,
		RatingsGrowthPercentage:  m.RatingsGrowthPct,
		TotalSales:               m.TotalSales,
		TotalRevenue:             money(m.TotalRevenue),
		SalesLast30Days:          m.SalesLast30Days,
		RevenueLast30Days:        money(m.RevenueLast30Days),
		SalesGrowthPercentage:    m.SalesGrowthPct,
		RevenueGrowthPercentage:  m.RevenueGrowthPct,
		TotalComments:            m.TotalComments,
		CommentsLast30Days:       m.CommentsLast30Days,
		CommentsGrowthPercentage: m.CommentsGrowthPct,
		TotalSongs:               m.TotalSongs,
		TotalAlbums:              m.TotalAlbums,
		TotalCollaborations:      m.TotalCollaborations,
		MostPlayedSongID:         m.MostPlayedSongID,
		MostPlayedSongName:       m.MostPlayedSongName,
		MostPlayedSongPlays:      m.MostPlayedSongPlays,
	}
}

func ConvertEntityMetricsDetailed(m *entity.MetricsDetailed) *MetricsDetailed {
	if m == nil {
		return nil
	}
	days := make([]DailyMetric, 0, len(m.DailyMetrics))
	for _, d := range m.DailyMetrics {
		days = append(days, DailyMetric{
			Date:          d.Date.Format(dateLayout),
			Plays:         d.Plays,
			Sales:         d.Sales,
			Revenue:       money(d.Revenue),
			Comments:      d.Comments,
			AverageRating: d.AverageRating,
		})
	}
	return &MetricsDetailed{
		ArtistID:      m.ArtistID,
		ArtistName:    m.ArtistName,
		StartDate:     m.StartDate.Format(dateLayout),
		EndDate:       m.EndDate.Format(dateLayout),
		DailyMetrics:  days,
		TotalPlays:    m.TotalPlays,
		TotalSales:    m.TotalSales,
		TotalRevenue:  money(m.TotalRevenue),
		TotalComments: m.TotalComments,
		AverageRating: m.AverageRating,
	}
}

func ConvertEntitySongMetrics(m *entity.SongMetrics) *SongMetrics {
	if m == nil {
		return nil
	}
	return &SongMetrics{
		SongID:              m.SongID,
		SongName:            m.SongName,
		ArtistName:          m.ArtistName,
		TotalPlays:          m.TotalPlays,
		AverageRating:       m.AverageRating,
		TotalRatings:        m.TotalRatings,
		TotalComments:       m.TotalComments,
		TotalSales:          m.TotalSales,
		TotalRevenue:        money(m.TotalRevenue),
		RankInArtistCatalog: m.Rank,
	}
}

func ConvertEntitySongMetricsList(ms []entity.SongMetrics) []SongMetrics {
	out := make([]SongMetrics, 0, len(ms))
	for i := range ms {
		out = append(out, *ConvertEntitySongMetrics(&ms[i]))
	}
	return out
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}
