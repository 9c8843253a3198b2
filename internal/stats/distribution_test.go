package stats

import (
	"testing"
	"time"

	"github.com/audira/music-metrics/internal/entity"
	gerr "github.com/audira/music-metrics/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func sums(days []entity.DailyMetric) (plays, sales int64) {
	for _, d := range days {
		plays += d.Plays
		sales += d.Sales
	}
	return plays, sales
}

func TestDistribute_ReconcilesTotals(t *testing.T) {
	ranges := [][2]string{
		{"2024-03-01", "2024-03-01"},
		{"2024-03-01", "2024-03-02"},
		{"2024-03-01", "2024-03-07"},
		{"2024-03-01", "2024-03-08"},
		{"2024-02-01", "2024-03-31"},
		{"2023-12-25", "2024-01-05"},
	}
	totals := [][2]int64{{0, 0}, {1, 0}, {3, 9}, {9, 10}, {37, 5}, {1000, 3}, {123457, 999}}

	for _, r := range ranges {
		for _, tot := range totals {
			days, err := Distribute(DistributionInput{
				TotalPlays:    tot[0],
				TotalSales:    tot[1],
				Start:         date(r[0]),
				End:           date(r[1]),
				AverageRating: 4.1,
				Seed:          DefaultSeed,
			})
			require.NoError(t, err)
			require.Len(t, days, DaysInRange(date(r[0]), date(r[1])))

			plays, sales := sums(days)
			assert.Equal(t, tot[0], plays, "range %v totals %v", r, tot)
			assert.Equal(t, tot[1], sales, "range %v totals %v", r, tot)
		}
	}
}

func TestDistribute_SingleDay(t *testing.T) {
	days, err := Distribute(DistributionInput{
		TotalPlays: 37,
		TotalSales: 5,
		Start:      date("2024-06-10"),
		End:        date("2024-06-10"),
		Seed:       DefaultSeed,
	})
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, int64(37), days[0].Plays)
	assert.Equal(t, int64(5), days[0].Sales)
	assert.True(t, decimal.RequireFromString("4.95").Equal(days[0].Revenue))
	assert.Equal(t, date("2024-06-10"), days[0].Date)
}

func TestDistribute_Reproducible(t *testing.T) {
	in := DistributionInput{
		TotalPlays:    5000,
		TotalSales:    7,
		Start:         date("2024-01-01"),
		End:           date("2024-01-31"),
		AverageRating: 3.7,
		Seed:          DefaultSeed,
	}
	first, err := Distribute(in)
	require.NoError(t, err)
	second, err := Distribute(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDistribute_OnlyTrailingWeekIsActive(t *testing.T) {
	days, err := Distribute(DistributionInput{
		TotalPlays: 700,
		TotalSales: 70,
		Start:      date("2024-04-01"),
		End:        date("2024-04-30"),
		Seed:       DefaultSeed,
	})
	require.NoError(t, err)
	require.Len(t, days, 30)

	for _, d := range days[:23] {
		assert.Zero(t, d.Plays, d.Date)
		assert.Zero(t, d.Sales, d.Date)
	}
	// non sparse totals are spread evenly over the remaining active days
	assert.Equal(t, int64(100), days[23].Plays)
	assert.Equal(t, int64(10), days[23].Sales)
	assert.Equal(t, int64(85), days[24].Plays)
}

func TestDistribute_DerivedFields(t *testing.T) {
	days, err := Distribute(DistributionInput{
		TotalPlays:    300,
		TotalSales:    40,
		Start:         date("2024-04-01"),
		End:           date("2024-04-10"),
		AverageRating: 4.9,
		Seed:          7,
	})
	require.NoError(t, err)

	for _, d := range days {
		assert.True(t, DailyRevenue(d.Sales).Equal(d.Revenue))
		assert.GreaterOrEqual(t, d.Comments, int64(0))
		assert.Less(t, d.Comments, int64(3))
		assert.GreaterOrEqual(t, d.AverageRating, 4.69)
		assert.LessOrEqual(t, d.AverageRating, 5.0)
	}
}

func TestDistribute_NoRatingMeansNoJitter(t *testing.T) {
	days, err := Distribute(DistributionInput{
		TotalPlays: 20,
		Start:      date("2024-04-01"),
		End:        date("2024-04-05"),
		Seed:       DefaultSeed,
	})
	require.NoError(t, err)
	for _, d := range days {
		assert.Zero(t, d.AverageRating)
	}
}

func TestDistribute_InvalidRange(t *testing.T) {
	_, err := Distribute(DistributionInput{
		Start: date("2024-04-02"),
		End:   date("2024-04-01"),
	})
	assert.ErrorIs(t, err, gerr.InvalidRange)
}

func TestDailyRevenue(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(DailyRevenue(0)))
	assert.Equal(t, "0.99", DailyRevenue(1).StringFixed(2))
	assert.Equal(t, "98.01", DailyRevenue(99).StringFixed(2))
}

func TestDaysInRange(t *testing.T) {
	assert.Equal(t, 1, DaysInRange(date("2024-02-28"), date("2024-02-28")))
	assert.Equal(t, 3, DaysInRange(date("2024-02-28"), date("2024-03-01")))
	assert.Equal(t, 366, DaysInRange(date("2024-01-01"), date("2024-12-31")))
	assert.Equal(t, 3652059, DaysInRange(date("0001-01-01"), date("9999-12-31")))
}

func TestDistribute_RangeTooLong(t *testing.T) {
	start := date("2020-01-01")

	days, err := Distribute(DistributionInput{
		TotalPlays: 1000,
		TotalSales: 10,
		Start:      start,
		End:        start.AddDate(0, 0, MaxRangeDays-1),
		Seed:       DefaultSeed,
	})
	require.NoError(t, err)
	assert.Len(t, days, MaxRangeDays)

	days, err = Distribute(DistributionInput{
		TotalPlays: 1000,
		TotalSales: 10,
		Start:      date("0001-01-01"),
		End:        date("9999-12-31"),
		Seed:       DefaultSeed,
	})
	assert.Nil(t, days)
	assert.ErrorIs(t, err, gerr.RangeTooLong)
}
