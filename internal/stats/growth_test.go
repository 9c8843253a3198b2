package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateGrowth(t *testing.T) {
	assert.Zero(t, EstimateGrowth(0))
	assert.InDelta(t, 0.15, EstimateGrowth(1), 1e-9)
	assert.InDelta(t, 7.5, EstimateGrowth(50), 1e-9)
	assert.Equal(t, 15.0, EstimateGrowth(100))
	assert.Equal(t, 15.0, EstimateGrowth(101))
	assert.Equal(t, 15.0, EstimateGrowth(1_000_000))
}

func TestEstimateGrowth_Monotonic(t *testing.T) {
	prev := EstimateGrowth(0)
	for v := int64(1); v <= 250; v++ {
		g := EstimateGrowth(v)
		assert.GreaterOrEqual(t, g, prev, "v=%d", v)
		assert.LessOrEqual(t, g, 15.0)
		prev = g
	}
}
