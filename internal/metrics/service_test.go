package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/audira/music-metrics/internal/dependency/mocks"
	"github.com/audira/music-metrics/internal/entity"
	gerr "github.com/audira/music-metrics/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type deps struct {
	catalog  *mocks.Catalog
	users    *mocks.Users
	ratings  *mocks.Ratings
	commerce *mocks.Commerce
}

func newTestService(t *testing.T, opts ...Option) (*Service, deps) {
	d := deps{
		catalog:  mocks.NewCatalog(t),
		users:    mocks.NewUsers(t),
		ratings:  mocks.NewRatings(t),
		commerce: mocks.NewCommerce(t),
	}
	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	return New(d.catalog, d.users, d.ratings, d.commerce, nil, opts...), d
}

func strPtr(s string) *string { return &s }
func i64(n int64) *int64 { return &n }
func f64(f float64) *float64 { return &f }
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func rating(avg float64, total int64) entity.RatingStats {
	return entity.RatingStats{AverageRating: f64(avg), TotalRatings: i64(total)}
}

func catalogSongs() []entity.Song {
	return []entity.Song{
		{ID: 1, ArtistID: 7, Title: "intro", Plays: 10},
		{ID: 2, ArtistID: 7, Title: "single", Plays: 50},
		{ID: 3, ArtistID: 7, Title: "b-side", Plays: 50},
		{ID: 4, ArtistID: 7, Title: "outro", Plays: 5},
	}
}

func catalogOrders() []entity.Order {
	return []entity.Order{
		{
			ID: 1, Status: entity.OrderStatusDelivered, CreatedAt: testNow.AddDate(0, 0, -2),
			Items: []entity.OrderItem{
				{ItemType: "SONG", ItemID: 2, Quantity: i64(2), Price: price("9.99")},
				{ItemType: "ALBUM", ItemID: 2, Quantity: i64(1), Price: price("20.00")},
			},
		},
		{
			ID: 2, Status: entity.OrderStatusDelivered, CreatedAt: testNow.AddDate(0, 0, -40),
			Items: []entity.OrderItem{
				{ItemType: "song", ItemID: 1, Price: price("1.50")},
				{ItemType: "SONG", ItemID: 99, Quantity: i64(4), Price: price("3.00")},
			},
		},
		{
			ID: 3, Status: "PENDING", CreatedAt: testNow.AddDate(0, 0, -1),
			Items: []entity.OrderItem{
				{ItemType: "SONG", ItemID: 2, Quantity: i64(100), Price: price("9.99")},
			},
		},
	}
}

func expectSongRatings(d deps) {
	d.ratings.EXPECT().EntityRatingStats(mock.Anything, entity.ItemTypeSong, int64(1)).Return(rating(4.0, 10), nil)
	d.ratings.EXPECT().EntityRatingStats(mock.Anything, entity.ItemTypeSong, int64(2)).Return(rating(5.0, 25), nil)
	d.ratings.EXPECT().EntityRatingStats(mock.Anything, entity.ItemTypeSong, int64(3)).Return(entity.RatingStats{}, nil)
	d.ratings.EXPECT().EntityRatingStats(mock.Anything, entity.ItemTypeSong, int64(4)).Return(rating(0, 0), nil)
}

func TestArtistSummary(t *testing.T) {
	svc, d := newTestService(t)
	ctx := context.Background()

	d.users.EXPECT().GetUser(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "lena"}, nil)
	d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(catalogSongs(), nil)
	d.catalog.EXPECT().AlbumsByArtist(ctx, int64(7)).Return([]entity.Album{{ID: 1}, {ID: 2}}, nil)
	d.catalog.EXPECT().AcceptedCollaborations(ctx, int64(7)).Return([]entity.Collaboration{{ID: 1}}, nil)
	d.ratings.EXPECT().ArtistRatingStats(ctx, int64(7)).Return(rating(4.2, 120), nil)
	d.commerce.EXPECT().AllOrders(ctx).Return(catalogOrders(), nil)
	expectSongRatings(d)

	s, err := svc.ArtistSummary(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, "lena", s.ArtistName)
	assert.Equal(t, testNow, s.GeneratedAt)

	assert.Equal(t, int64(115), s.TotalPlays)
	assert.Equal(t, int64(28), s.PlaysLast30Days)
	assert.Equal(t, 15.0, s.PlaysGrowthPct)

	assert.Equal(t, 4.2, s.AverageRating)
	assert.Equal(t, int64(120), s.TotalRatings)
	assert.Equal(t, 15.0, s.RatingsGrowthPct)

	assert.Equal(t, int64(3), s.TotalSales)
	assert.True(t, dec("21.48").Equal(s.TotalRevenue), s.TotalRevenue.String())
	assert.Equal(t, int64(2), s.SalesLast30Days)
	assert.True(t, dec("19.98").Equal(s.RevenueLast30Days), s.RevenueLast30Days.String())
	assert.InDelta(t, 0.45, s.SalesGrowthPct, 1e-9)
	assert.Equal(t, s.SalesGrowthPct, s.RevenueGrowthPct)

	// 10*0.3 + 25*0.3 rounded down per song
	assert.Equal(t, int64(10), s.TotalComments)
	assert.Equal(t, int64(1), s.CommentsLast30Days)
	assert.InDelta(t, 1.5, s.CommentsGrowthPct, 1e-9)

	assert.Equal(t, int64(4), s.TotalSongs)
	assert.Equal(t, int64(2), s.TotalAlbums)
	assert.Equal(t, int64(1), s.TotalCollaborations)

	require.NotNil(t, s.MostPlayedSongID)
	assert.Equal(t, int64(2), *s.MostPlayedSongID)
	assert.Equal(t, "single", s.MostPlayedSongName)
	assert.Equal(t, int64(50), s.MostPlayedSongPlays)
}

func TestArtistSummary_EmptyCatalog(t *testing.T) {
	svc, d := newTestService(t)
	ctx := context.Background()

	d.users.EXPECT().GetUser(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "lena", ArtistName: strPtr("Lena Waves")}, nil)
	d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(nil, nil)
	d.catalog.EXPECT().AlbumsByArtist(ctx, int64(7)).Return(nil, nil)
	d.catalog.EXPECT().AcceptedCollaborations(ctx, int64(7)).Return(nil, nil)
	d.ratings.EXPECT().ArtistRatingStats(ctx, int64(7)).Return(entity.RatingStats{}, nil)
	d.commerce.EXPECT().AllOrders(ctx).Return(catalogOrders(), nil)

	s, err := svc.ArtistSummary(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, "Lena Waves", s.ArtistName)
	assert.Zero(t, s.TotalPlays)
	assert.Zero(t, s.PlaysGrowthPct)
	assert.Zero(t, s.TotalSales)
	assert.True(t, s.TotalRevenue.IsZero())
	assert.Nil(t, s.MostPlayedSongID)
	assert.Equal(t, "N/A", s.MostPlayedSongName)
	assert.Zero(t, s.MostPlayedSongPlays)
}

func TestArtistSummary_ArtistNotFound(t *testing.T) {
	svc, d := newTestService(t)
	ctx := context.Background()

	d.users.EXPECT().GetUser(ctx, int64(404)).Return(nil, fmt.Errorf("user 404: %w", gerr.ArtistNotFound))

	_, err := svc.ArtistSummary(ctx, 404)
	assert.ErrorIs(t, err, gerr.ArtistNotFound)
}

func TestArtistSummary_UpstreamFailure(t *testing.T) {
	obs := mocks.NewObserver(t)
	svc, d := newTestService(t, WithObserver(obs))
	ctx := context.Background()

	down := fmt.Errorf("commerce service: %w: %w", gerr.UpstreamUnavailable, errors.New("connection refused"))

	d.users.EXPECT().GetUser(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "lena"}, nil)
	d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(catalogSongs(), nil)
	d.catalog.EXPECT().AlbumsByArtist(ctx, int64(7)).Return(nil, nil)
	d.catalog.EXPECT().AcceptedCollaborations(ctx, int64(7)).Return(nil, nil)
	d.ratings.EXPECT().ArtistRatingStats(ctx, int64(7)).Return(entity.RatingStats{}, nil)
	d.commerce.EXPECT().AllOrders(ctx).Return(nil, down)

	obs.EXPECT().UpstreamFailed(ctx, "commerce", down).Return()
	obs.EXPECT().ReportGenerated(ctx, "summary", mock.Anything, down).Return()

	s, err := svc.ArtistSummary(ctx, 7)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, gerr.UpstreamUnavailable)
}

func TestArtistSummary_CatalogFailure(t *testing.T) {
	svc, d := newTestService(t)
	ctx := context.Background()

	d.users.EXPECT().GetUser(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "lena"}, nil)
	d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(nil, errors.New("bad connection"))

	_, err := svc.ArtistSummary(ctx, 7)
	assert.ErrorIs(t, err, gerr.UpstreamUnavailable)
	assert.ErrorContains(t, err, "bad connection")
}

func TestArtistSummary_SongRatingFailure(t *testing.T) {
	svc, d := newTestService(t)
	ctx := context.Background()

	down := fmt.Errorf("rating service: %w", gerr.UpstreamUnavailable)

	d.users.EXPECT().GetUser(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "lena"}, nil)
	d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(catalogSongs()[:1], nil)
	d.catalog.EXPECT().AlbumsByArtist(ctx, int64(7)).Return(nil, nil)
	d.catalog.EXPECT().AcceptedCollaborations(ctx, int64(7)).Return(nil, nil)
	d.ratings.EXPECT().ArtistRatingStats(ctx, int64(7)).Return(entity.RatingStats{}, nil)
	d.commerce.EXPECT().AllOrders(ctx).Return(nil, nil)
	d.ratings.EXPECT().EntityRatingStats(mock.Anything, entity.ItemTypeSong, int64(1)).Return(entity.RatingStats{}, down)

	_, err := svc.ArtistSummary(ctx, 7)
	assert.ErrorIs(t, err, gerr.UpstreamUnavailable)
	assert.ErrorContains(t, err, "song 1")
}

func TestArtistDetailed(t *testing.T) {
	svc, d := newTestService(t)
	ctx := context.Background()

	d.users.EXPECT().GetUser(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "lena"}, nil)
	d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(catalogSongs(), nil)
	d.commerce.EXPECT().AllOrders(ctx).Return(catalogOrders(), nil)
	expectSongRatings(d)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	r, err := svc.ArtistDetailed(ctx, 7, start, end)
	require.NoError(t, err)

	assert.Equal(t, "lena", r.ArtistName)
	assert.Equal(t, start, r.StartDate)
	assert.Equal(t, end, r.EndDate)
	require.Len(t, r.DailyMetrics, 10)

	var plays, sales, comments int64
	for i, m := range r.DailyMetrics {
		assert.Equal(t, start.AddDate(0, 0, i), m.Date)
		plays += m.Plays
		sales += m.Sales
		comments += m.Comments
		if i < 3 {
			assert.Zero(t, m.Plays, "day %d is outside the active window", i)
		}
	}
	assert.Equal(t, int64(115), r.TotalPlays)
	assert.Equal(t, r.TotalPlays, plays)
	assert.Equal(t, int64(3), r.TotalSales)
	assert.Equal(t, r.TotalSales, sales)
	assert.Equal(t, comments, r.TotalComments)
	assert.True(t, dec("21.48").Equal(r.TotalRevenue))
	assert.InDelta(t, 4.5, r.AverageRating, 1e-9)
}

func TestArtistDetailed_Reproducible(t *testing.T) {
	run := func() *entity.MetricsDetailed {
		svc, d := newTestService(t)
		ctx := context.Background()
		d.users.EXPECT().GetUser(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "lena"}, nil)
		d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(catalogSongs(), nil)
		d.commerce.EXPECT().AllOrders(ctx).Return(catalogOrders(), nil)
		expectSongRatings(d)

		r, err := svc.ArtistDetailed(ctx, 7, testNow.AddDate(0, 0, -29), testNow)
		require.NoError(t, err)
		return r
	}

	assert.Equal(t, run(), run())
}

func TestArtistDetailed_SingleDay(t *testing.T) {
	svc, d := newTestService(t, WithSeed(7))
	ctx := context.Background()

	d.users.EXPECT().GetUser(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "lena"}, nil)
	d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(catalogSongs(), nil)
	d.commerce.EXPECT().AllOrders(ctx).Return(catalogOrders(), nil)
	expectSongRatings(d)

	// same calendar date, end earlier in the day than start
	start := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	r, err := svc.ArtistDetailed(ctx, 7, start, end)
	require.NoError(t, err)
	require.Len(t, r.DailyMetrics, 1)
	assert.Equal(t, int64(115), r.DailyMetrics[0].Plays)
	assert.Equal(t, int64(3), r.DailyMetrics[0].Sales)
	assert.True(t, dec("2.97").Equal(r.DailyMetrics[0].Revenue))
}

func TestArtistDetailed_InvalidRange(t *testing.T) {
	obs := mocks.NewObserver(t)
	svc, _ := newTestService(t, WithObserver(obs))
	ctx := context.Background()

	obs.EXPECT().ReportGenerated(ctx, "detailed", mock.Anything, gerr.InvalidRange).Return()

	start := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	r, err := svc.ArtistDetailed(ctx, 7, start, end)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, gerr.InvalidRange)
}

func TestArtistDetailed_RangeTooLong(t *testing.T) {
	obs := mocks.NewObserver(t)
	svc, _ := newTestService(t, WithObserver(obs))
	ctx := context.Background()

	obs.EXPECT().ReportGenerated(ctx, "detailed", mock.Anything, gerr.RangeTooLong).Return()

	start := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	r, err := svc.ArtistDetailed(ctx, 7, start, end)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, gerr.RangeTooLong)
}

func TestArtistTopSongs(t *testing.T) {
	svc, d := newTestService(t)
	ctx := context.Background()

	d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(catalogSongs(), nil)
	d.users.EXPECT().GetUser(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "lena"}, nil).Once()
	d.commerce.EXPECT().AllOrders(ctx).Return(catalogOrders(), nil).Once()
	d.ratings.EXPECT().EntityRatingStats(mock.Anything, entity.ItemTypeSong, int64(2)).Return(rating(5.0, 25), nil)
	d.ratings.EXPECT().EntityRatingStats(mock.Anything, entity.ItemTypeSong, int64(3)).Return(entity.RatingStats{}, nil)

	top, err := svc.ArtistTopSongs(ctx, 7, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, int64(2), top[0].SongID)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, int64(2), top[0].TotalSales)
	assert.True(t, dec("19.98").Equal(top[0].TotalRevenue))
	assert.Equal(t, int64(7), top[0].TotalComments)
	assert.Equal(t, "lena", top[0].ArtistName)

	assert.Equal(t, int64(3), top[1].SongID)
	assert.Equal(t, 2, top[1].Rank)
	assert.Zero(t, top[1].TotalSales)
	assert.Zero(t, top[1].AverageRating)
}

func TestArtistTopSongs_LimitAboveCatalog(t *testing.T) {
	svc, d := newTestService(t)
	ctx := context.Background()

	d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(catalogSongs(), nil)
	d.users.EXPECT().GetUser(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "lena"}, nil)
	d.commerce.EXPECT().AllOrders(ctx).Return(nil, nil)
	expectSongRatings(d)

	top, err := svc.ArtistTopSongs(ctx, 7, 10)
	require.NoError(t, err)
	require.Len(t, top, 4)

	ids := make([]int64, 0, len(top))
	for i, m := range top {
		ids = append(ids, m.SongID)
		assert.Equal(t, i+1, m.Rank)
	}
	assert.Equal(t, []int64{2, 3, 1, 4}, ids)
}

func TestArtistTopSongs_EmptyCatalog(t *testing.T) {
	svc, d := newTestService(t)
	ctx := context.Background()

	d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(nil, nil)

	top, err := svc.ArtistTopSongs(ctx, 7, 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestArtistTopSongs_InvalidLimit(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ArtistTopSongs(context.Background(), 7, 0)
	assert.ErrorIs(t, err, gerr.InvalidLimit)
}

func TestSongMetrics(t *testing.T) {
	svc, d := newTestService(t)
	ctx := context.Background()

	songs := catalogSongs()
	d.catalog.EXPECT().SongByID(ctx, int64(1)).Return(&songs[0], nil)
	d.users.EXPECT().GetUser(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "lena", ArtistName: strPtr("Lena Waves")}, nil)
	d.catalog.EXPECT().SongsByArtist(ctx, int64(7)).Return(songs, nil)
	d.ratings.EXPECT().EntityRatingStats(ctx, entity.ItemTypeSong, int64(1)).Return(rating(4.0, 10), nil)
	d.commerce.EXPECT().AllOrders(ctx).Return(catalogOrders(), nil)

	m, err := svc.SongMetrics(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "intro", m.SongName)
	assert.Equal(t, "Lena Waves", m.ArtistName)
	assert.Equal(t, int64(10), m.TotalPlays)
	assert.Equal(t, 4.0, m.AverageRating)
	assert.Equal(t, int64(10), m.TotalRatings)
	assert.Equal(t, int64(3), m.TotalComments)
	// the 40 day old order still counts: song metrics have no window
	assert.Equal(t, int64(1), m.TotalSales)
	assert.True(t, dec("1.50").Equal(m.TotalRevenue))
	assert.Equal(t, 3, m.Rank)
}

func TestSongMetrics_NotFound(t *testing.T) {
	svc, d := newTestService(t)
	ctx := context.Background()

	d.catalog.EXPECT().SongByID(ctx, int64(404)).Return(nil, gerr.SongNotFound)

	m, err := svc.SongMetrics(ctx, 404)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, gerr.SongNotFound)
	assert.NotErrorIs(t, err, gerr.UpstreamUnavailable)
}

func TestNew_Defaults(t *testing.T) {
	svc := New(nil, nil, nil, nil, &Config{DistributionSeed: 3})
	assert.Equal(t, int64(3), svc.c.DistributionSeed)
	assert.Equal(t, defaultRatingFanout, svc.c.RatingFanout)

	svc = New(nil, nil, nil, nil, nil)
	assert.Equal(t, DefaultConfig(), svc.c)
}
