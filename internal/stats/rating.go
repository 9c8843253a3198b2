package stats

import "github.com/audira/music-metrics/internal/entity"

// AverageRating averages the songs that have a strictly positive rating. Songs that
// were never rated do not pull the average down. Returns 0 when nothing qualifies.
func AverageRating(stats []entity.RatingStats) float64 {
	var (
		sum   float64
		rated int
	)
	for _, s := range stats {
		if !s.Rated() {
			continue
		}
		sum += s.Average()
		rated++
	}
	if rated == 0 {
		return 0
	}
	return sum / float64(rated)
}

// EstimatedComments infers a comment count as 30% of the rating count, rounded down.
// Comments are not stored anywhere, this is a synthetic figure.
func EstimatedComments(s entity.RatingStats) int64 {
	total := s.Total()
	if total <= 0 {
		return 0
	}
	return total * 3 / 10
}

// TotalEstimatedComments sums EstimatedComments over stats.
func TotalEstimatedComments(stats []entity.RatingStats) int64 {
	var n int64
	for _, s := range stats {
		n += EstimatedComments(s)
	}
	return n
}
