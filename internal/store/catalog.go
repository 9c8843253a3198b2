package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/audira/music-metrics/internal/dependency"
	"github.com/audira/music-metrics/internal/entity"
	gerr "github.com/audira/music-metrics/internal/errors"
)

const songColumns = `id, artist_id, title, plays, published, cover_image_url`

type catalogStore struct {
	*MYSQLStore
}

// Catalog returns an object implementing Catalog interface
func (ms *MYSQLStore) Catalog() dependency.Catalog {
	return &catalogStore{
		MYSQLStore: ms,
	}
}

func (cs *catalogStore) SongsByArtist(ctx context.Context, artistID int64) ([]entity.Song, error) {
	query := `SELECT ` + songColumns + ` FROM song WHERE artist_id = :artistId ORDER BY id`
	songs, err := QueryListNamed[entity.Song](ctx, cs.DB(), query, map[string]any{
		"artistId": artistID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get songs by artist: %w", err)
	}
	return songs, nil
}

func (cs *catalogStore) SongByID(ctx context.Context, id int64) (*entity.Song, error) {
	query := `SELECT ` + songColumns + ` FROM song WHERE id = :id`
	song, err := QueryNamedOne[entity.Song](ctx, cs.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.SongNotFound
		}
		return nil, fmt.Errorf("failed to get song by id: %w", err)
	}
	return &song, nil
}

func (cs *catalogStore) AlbumsByArtist(ctx context.Context, artistID int64) ([]entity.Album, error) {
	query := `
	SELECT id, artist_id, title, published, cover_image_url
	FROM album
	WHERE artist_id = :artistId
	ORDER BY id`
	albums, err := QueryListNamed[entity.Album](ctx, cs.DB(), query, map[string]any{
		"artistId": artistID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get albums by artist: %w", err)
	}
	return albums, nil
}

func (cs *catalogStore) AcceptedCollaborations(ctx context.Context, artistID int64) ([]entity.Collaboration, error) {
	query := `
	SELECT id, song_id, album_id, artist_id, role, status
	FROM collaborator
	WHERE artist_id = :artistId AND status = :status
	ORDER BY id`
	collabs, err := QueryListNamed[entity.Collaboration](ctx, cs.DB(), query, map[string]any{
		"artistId": artistID,
		"status":   entity.CollaborationAccepted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get accepted collaborations: %w", err)
	}
	return collabs, nil
}
