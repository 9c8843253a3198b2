package stats

const (
	growthSaturation = 100.0
	maxGrowthPct     = 15.0
)

// EstimateGrowth maps a current total to a growth percentage in [0, 15].
//
// No historical snapshot exists, so this is not a period-over-period comparison:
// more absolute activity simply yields a higher estimate, saturating at 100.
func EstimateGrowth(current int64) float64 {
	if current <= 0 {
		return 0
	}
	factor := float64(current) / growthSaturation
	if factor > 1 {
		factor = 1
	}
	return factor * maxGrowthPct
}
