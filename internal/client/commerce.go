package client

import (
	"context"
	"fmt"
	"time"

	"github.com/audira/music-metrics/internal/entity"
	"github.com/shopspring/decimal"
)

// localDateTime is the zone-less timestamp layout some commerce deployments emit.
const localDateTime = "2006-01-02T15:04:05.999999999"

// Commerce talks to the commerce service.
type Commerce struct {
	u *upstream
}

func NewCommerce(c *Config) *Commerce {
	return &Commerce{u: newUpstream("commerce service", c)}
}

type orderResponse struct {
	ID        int64               `json:"id"`
	Status    string              `json:"status"`
	CreatedAt *string             `json:"createdAt"`
	Items     []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	ItemType string              `json:"itemType"`
	ItemID   int64               `json:"itemId"`
	Quantity *int64              `json:"quantity"`
	Price    decimal.NullDecimal `json:"price"`
}

// AllOrders returns every order in the order the commerce service lists them.
func (c *Commerce) AllOrders(ctx context.Context) ([]entity.Order, error) {
	var resp []orderResponse
	if err := c.u.getJSON(ctx, "/api/orders", &resp); err != nil {
		return nil, c.u.unavailable(err)
	}

	orders := make([]entity.Order, 0, len(resp))
	for _, o := range resp {
		createdAt, err := parseCreatedAt(o.CreatedAt)
		if err != nil {
			return nil, c.u.unavailable(fmt.Errorf("order %d: %w", o.ID, err))
		}
		items := make([]entity.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, entity.OrderItem{
				ItemType: it.ItemType,
				ItemID:   it.ItemID,
				Quantity: it.Quantity,
				Price:    it.Price,
			})
		}
		orders = append(orders, entity.Order{
			ID:        o.ID,
			Status:    entity.OrderStatus(o.Status),
			CreatedAt: createdAt,
			Items:     items,
		})
	}
	return orders, nil
}

// parseCreatedAt accepts RFC 3339 or a zone-less local date-time read as UTC.
// A missing value yields the zero time.
func parseCreatedAt(s *string) (time.Time, error) {
	if s == nil || *s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, *s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(localDateTime, *s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid createdAt %q: %w", *s, err)
	}
	return t, nil
}
