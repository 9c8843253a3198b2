package entity

import "database/sql"

// ItemType tags the kind of catalog entity referenced by ratings and order lines.
type ItemType string

const (
	ItemTypeSong  ItemType = "SONG"
	ItemTypeAlbum ItemType = "ALBUM"
)

// Song represents the song table
type Song struct {
	ID            int64          `db:"id"`
	ArtistID      int64          `db:"artist_id"`
	Title         string         `db:"title"`
	Plays         int64          `db:"plays"`
	Published     bool           `db:"published"`
	CoverImageURL sql.NullString `db:"cover_image_url"`
}

// Album represents the album table
type Album struct {
	ID            int64          `db:"id"`
	ArtistID      int64          `db:"artist_id"`
	Title         string         `db:"title"`
	Published     bool           `db:"published"`
	CoverImageURL sql.NullString `db:"cover_image_url"`
}

type CollaborationStatus string

const (
	CollaborationPending  CollaborationStatus = "PENDING"
	CollaborationAccepted CollaborationStatus = "ACCEPTED"
	CollaborationRejected CollaborationStatus = "REJECTED"
)

// Collaboration represents the collaborator table
type Collaboration struct {
	ID       int64               `db:"id"`
	SongID   sql.NullInt64       `db:"song_id"`
	AlbumID  sql.NullInt64       `db:"album_id"`
	ArtistID int64               `db:"artist_id"`
	Role     string              `db:"role"`
	Status   CollaborationStatus `db:"status"`
}

// User is the identity of a creator as returned by the user service.
type User struct {
	ID         int64
	Username   string
	ArtistName *string
}

// DisplayName prefers the artist name and falls back to the username.
func (u *User) DisplayName() string {
	if u.ArtistName != nil && *u.ArtistName != "" {
		return *u.ArtistName
	}
	return u.Username
}
