package stats

import (
	"cmp"

	"github.com/audira/music-metrics/internal/entity"
	"golang.org/x/exp/slices"
)

// SortByPlays returns a copy of songs ordered by plays descending. Equal play counts
// keep their catalog order.
func SortByPlays(songs []entity.Song) []entity.Song {
	sorted := slices.Clone(songs)
	slices.SortStableFunc(sorted, func(a, b entity.Song) int {
		return cmp.Compare(b.Plays, a.Plays)
	})
	return sorted
}

// Rank returns the 1-based position of songID in sorted, or 0 when absent.
func Rank(songID int64, sorted []entity.Song) int {
	i := slices.IndexFunc(sorted, func(s entity.Song) bool { return s.ID == songID })
	return i + 1
}

// MostPlayed returns the song with the most plays, the earliest one on ties.
func MostPlayed(songs []entity.Song) (entity.Song, bool) {
	if len(songs) == 0 {
		return entity.Song{}, false
	}
	best := songs[0]
	for _, s := range songs[1:] {
		if s.Plays > best.Plays {
			best = s
		}
	}
	return best, true
}

// TotalPlays sums the plays of songs.
func TotalPlays(songs []entity.Song) int64 {
	var n int64
	for _, s := range songs {
		n += s.Plays
	}
	return n
}
