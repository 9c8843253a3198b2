package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

// OrderStatusDelivered is the only status that counts towards sales and revenue.
const OrderStatusDelivered OrderStatus = "DELIVERED"

// Order is a commerce order as returned by the commerce service.
type Order struct {
	ID        int64
	Status    OrderStatus
	CreatedAt time.Time // zero when the commerce service did not report it
	Items     []OrderItem
}

// Delivered reports whether the order is revenue eligible. The match is case sensitive.
func (o *Order) Delivered() bool {
	return o.Status == OrderStatusDelivered
}

// OrderItem is a single order line.
type OrderItem struct {
	ItemType string
	ItemID   int64
	Quantity *int64
	Price    decimal.NullDecimal
}

// IsType compares the item type tag ignoring case.
func (oi *OrderItem) IsType(t ItemType) bool {
	return strings.EqualFold(oi.ItemType, string(t))
}

// Units returns the ordered quantity, 1 when absent.
func (oi *OrderItem) Units() int64 {
	if oi.Quantity == nil {
		return 1
	}
	return *oi.Quantity
}

// UnitPrice returns the price, zero when absent.
func (oi *OrderItem) UnitPrice() decimal.Decimal {
	if !oi.Price.Valid {
		return decimal.Zero
	}
	return oi.Price.Decimal
}

// Revenue is price × quantity.
func (oi *OrderItem) Revenue() decimal.Decimal {
	return oi.UnitPrice().Mul(decimal.NewFromInt(oi.Units()))
}
