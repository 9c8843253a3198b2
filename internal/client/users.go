package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/audira/music-metrics/internal/entity"
	gerr "github.com/audira/music-metrics/internal/errors"
)

// Users talks to the user service.
type Users struct {
	u *upstream
}

func NewUsers(c *Config) *Users {
	return &Users{u: newUpstream("user service", c)}
}

type userResponse struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	ArtistName *string `json:"artistName"`
}

// GetUser returns gerr.ArtistNotFound when the user service answers 404.
func (us *Users) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	var resp userResponse
	err := us.u.getJSON(ctx, fmt.Sprintf("/api/users/%d", id), &resp)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return nil, fmt.Errorf("user %d: %w", id, gerr.ArtistNotFound)
		}
		return nil, us.u.unavailable(err)
	}
	return &entity.User{
		ID:         resp.ID,
		Username:   resp.Username,
		ArtistName: resp.ArtistName,
	}, nil
}
