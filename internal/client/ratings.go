package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/audira/music-metrics/internal/entity"
)

// Ratings talks to the rating service.
type Ratings struct {
	u *upstream
}

func NewRatings(c *Config) *Ratings {
	return &Ratings{u: newUpstream("rating service", c)}
}

type ratingStatsResponse struct {
	AverageRating *float64 `json:"averageRating"`
	TotalRatings  *int64   `json:"totalRatings"`
}

func (r *Ratings) EntityRatingStats(ctx context.Context, itemType entity.ItemType, id int64) (entity.RatingStats, error) {
	return r.stats(ctx, fmt.Sprintf("/api/ratings/entity/%s/%d/stats", url.PathEscape(string(itemType)), id))
}

func (r *Ratings) ArtistRatingStats(ctx context.Context, artistID int64) (entity.RatingStats, error) {
	return r.stats(ctx, fmt.Sprintf("/api/ratings/artist/%d/stats", artistID))
}

func (r *Ratings) stats(ctx context.Context, path string) (entity.RatingStats, error) {
	var resp ratingStatsResponse
	if err := r.u.getJSON(ctx, path, &resp); err != nil {
		return entity.RatingStats{}, r.u.unavailable(err)
	}
	return entity.RatingStats{
		AverageRating: resp.AverageRating,
		TotalRatings:  resp.TotalRatings,
	}, nil
}
