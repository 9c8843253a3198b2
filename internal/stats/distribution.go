package stats

import (
	"math/rand"
	"time"

	"github.com/audira/music-metrics/internal/entity"
	gerr "github.com/audira/music-metrics/internal/errors"
	"github.com/shopspring/decimal"
)

const (
	// DefaultSeed drives every synthesized series unless the caller picks another one.
	DefaultSeed int64 = 42

	maxActiveDays   = 7
	sparseThreshold = 10
	ratingJitter    = 0.2
	maxRating       = 5.0
	maxDailyComment = 3
)

// syntheticUnitPrice stands in for a real per-unit price lookup.
var syntheticUnitPrice = decimal.New(99, -2)

// DistributionInput describes the totals to spread over a date range.
type DistributionInput struct {
	TotalPlays    int64
	TotalSales    int64
	Start         time.Time
	End           time.Time
	AverageRating float64
	Seed          int64
}

// MaxRangeDays bounds the length of a synthesized daily series.
const MaxRangeDays = 3660

const secondsPerDay = 24 * 60 * 60

// DaysInRange counts the calendar days from start to end, both inclusive.
func DaysInRange(start, end time.Time) int {
	return int((Day(end).Unix()-Day(start).Unix())/secondsPerDay) + 1
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// pool tracks what is still to be handed out for one metric.
type pool struct {
	total     int64
	remaining int64
}

func (p *pool) take(activeDays int64, rnd *rand.Rand) int64 {
	if p.remaining <= 0 {
		return 0
	}
	var n int64
	if p.total < sparseThreshold {
		// low volume activity is bursty: everything lands on one day
		if rnd.Intn(2) == 1 {
			n = p.remaining
		}
	} else {
		n = p.remaining / activeDays
	}
	p.remaining -= n
	return n
}

func (p *pool) drain() int64 {
	n := p.remaining
	p.remaining = 0
	return n
}

// Distribute synthesizes one DailyMetric per day from Start to End inclusive.
//
// Only the trailing min(days, 7) days receive activity. The last day absorbs whatever
// was not handed out, so plays and sales always sum exactly to the input totals. All
// randomness comes from Seed: identical inputs produce identical series.
func Distribute(in DistributionInput) ([]entity.DailyMetric, error) {
	start, end := Day(in.Start), Day(in.End)
	if start.After(end) {
		return nil, gerr.InvalidRange
	}
	days := DaysInRange(start, end)
	if days > MaxRangeDays {
		return nil, gerr.RangeTooLong
	}
	activeDays := int64(min(days, maxActiveDays))

	rnd := rand.New(rand.NewSource(in.Seed))
	plays := &pool{total: in.TotalPlays, remaining: in.TotalPlays}
	sales := &pool{total: in.TotalSales, remaining: in.TotalSales}

	out := make([]entity.DailyMetric, 0, days)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		var dayPlays, daySales int64
		daysToEnd := int64(DaysInRange(day, end) - 1)
		if daysToEnd < activeDays {
			dayPlays = plays.take(activeDays, rnd)
			daySales = sales.take(activeDays, rnd)
		}
		if day.Equal(end) {
			dayPlays += plays.drain()
			daySales += sales.drain()
		}
		out = append(out, synthesizeDay(day, dayPlays, daySales, in.AverageRating, rnd))
	}
	return out, nil
}

func synthesizeDay(day time.Time, plays, sales int64, avgRating float64, rnd *rand.Rand) entity.DailyMetric {
	m := entity.DailyMetric{
		Date:     day,
		Plays:    plays,
		Sales:    sales,
		Revenue:  DailyRevenue(sales),
		Comments: int64(rnd.Intn(maxDailyComment)),
	}
	if avgRating > 0 {
		r := avgRating + rnd.Float64()*2*ratingJitter - ratingJitter
		m.AverageRating = max(0, min(maxRating, r))
	}
	return m
}

// DailyRevenue prices sales at the synthetic unit price, rounded half up to cents.
func DailyRevenue(sales int64) decimal.Decimal {
	return decimal.NewFromInt(sales).Mul(syntheticUnitPrice).Round(2)
}
