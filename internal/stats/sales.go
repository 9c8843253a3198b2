package stats

import (
	"time"

	"github.com/audira/music-metrics/internal/entity"
	"github.com/shopspring/decimal"
)

// ItemMatcher reports whether an order line belongs to the selection being aggregated.
type ItemMatcher func(item *entity.OrderItem) bool

// MatchSongs matches song lines whose id is one of songs.
func MatchSongs(songs []entity.Song) ItemMatcher {
	ids := make(map[int64]struct{}, len(songs))
	for _, s := range songs {
		ids[s.ID] = struct{}{}
	}
	return func(item *entity.OrderItem) bool {
		if !item.IsType(entity.ItemTypeSong) {
			return false
		}
		_, ok := ids[item.ItemID]
		return ok
	}
}

// MatchSong matches song lines referencing songID.
func MatchSong(songID int64) ItemMatcher {
	return func(item *entity.OrderItem) bool {
		return item.IsType(entity.ItemTypeSong) && item.ItemID == songID
	}
}

// AggregateSales folds delivered orders into sales totals. Lines of orders created
// strictly after windowStart are also counted into the 30 day figures; a zero
// windowStart disables the window. orders is not modified.
func AggregateSales(orders []entity.Order, match ItemMatcher, windowStart time.Time) entity.SalesStats {
	acc := entity.SalesStats{
		TotalRevenue:      decimal.Zero,
		RevenueLast30Days: decimal.Zero,
	}
	for i := range orders {
		acc = foldOrder(acc, &orders[i], match, windowStart)
	}
	return acc
}

// ArtistSales aggregates the sales of an artist catalog with the trailing 30 day
// window ending at now.
func ArtistSales(songs []entity.Song, orders []entity.Order, now time.Time) entity.SalesStats {
	return AggregateSales(orders, MatchSongs(songs), now.AddDate(0, 0, -30))
}

// SongSales aggregates the all time sales of a single song.
func SongSales(songID int64, orders []entity.Order) entity.SalesStats {
	return AggregateSales(orders, MatchSong(songID), time.Time{})
}

func foldOrder(acc entity.SalesStats, o *entity.Order, match ItemMatcher, windowStart time.Time) entity.SalesStats {
	acc.OrdersSeen++
	if !o.Delivered() {
		acc.SkippedOrders++
		return acc
	}
	acc.DeliveredOrders++

	inWindow := !windowStart.IsZero() && !o.CreatedAt.IsZero() && o.CreatedAt.After(windowStart)
	for i := range o.Items {
		item := &o.Items[i]
		if !match(item) {
			continue
		}
		acc.MatchedItems++

		units := item.Units()
		revenue := item.Revenue()
		acc.TotalSales += units
		acc.TotalRevenue = acc.TotalRevenue.Add(revenue)
		if inWindow {
			acc.SalesLast30Days += units
			acc.RevenueLast30Days = acc.RevenueLast30Days.Add(revenue)
		}
	}
	return acc
}
