package stats

import (
	"testing"

	"github.com/audira/music-metrics/internal/entity"
	"github.com/stretchr/testify/assert"
)

func ratingStats(avg *float64, total *int64) entity.RatingStats {
	return entity.RatingStats{AverageRating: avg, TotalRatings: total}
}

func f64(v float64) *float64 { return &v }

func TestAverageRating(t *testing.T) {
	t.Run("unrated songs are ignored", func(t *testing.T) {
		avg := AverageRating([]entity.RatingStats{
			ratingStats(f64(4), qty(10)),
			ratingStats(nil, nil),
			ratingStats(f64(0), qty(0)),
			ratingStats(f64(3), qty(2)),
		})
		assert.InDelta(t, 3.5, avg, 1e-9)
	})

	t.Run("nothing rated", func(t *testing.T) {
		assert.Zero(t, AverageRating(nil))
		assert.Zero(t, AverageRating([]entity.RatingStats{ratingStats(nil, qty(3))}))
	})
}

func TestEstimatedComments(t *testing.T) {
	cases := []struct {
		total *int64
		want  int64
	}{
		{nil, 0},
		{qty(0), 0},
		{qty(3), 0},
		{qty(4), 1},
		{qty(10), 3},
		{qty(99), 29},
		{qty(1000), 300},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, EstimatedComments(ratingStats(nil, c.total)))
	}

	assert.Equal(t, int64(3+29), TotalEstimatedComments([]entity.RatingStats{
		ratingStats(nil, qty(10)),
		ratingStats(f64(2), qty(99)),
	}))
}
