package entity

// RatingStats are the rating aggregates of an entity or an artist. Both fields are
// optional on the wire.
type RatingStats struct {
	AverageRating *float64
	TotalRatings  *int64
}

// Average returns the average rating or 0.
func (rs RatingStats) Average() float64 {
	if rs.AverageRating == nil {
		return 0
	}
	return *rs.AverageRating
}

// Total returns the number of ratings or 0.
func (rs RatingStats) Total() int64 {
	if rs.TotalRatings == nil {
		return 0
	}
	return *rs.TotalRatings
}

// Rated reports whether a strictly positive average is present.
func (rs RatingStats) Rated() bool {
	return rs.AverageRating != nil && *rs.AverageRating > 0
}
