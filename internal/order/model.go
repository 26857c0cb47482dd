package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	Items           []Item `json:"items"`
	// Expected to equal the sum of item price*quantity; carried from the
	// seed as-is, never recomputed here.
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Status            Status          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
}

// Item is an embedded line: name and price are snapshots taken at order
// time, deliberately decoupled from the live product record.
type Item struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    float64         `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
}

func (o Order) clone() Order {
	out := o
	out.Items = make([]Item, len(o.Items))
	copy(out.Items, o.Items)
	if o.EstimatedDelivery != nil {
		t := *o.EstimatedDelivery
		out.EstimatedDelivery = &t
	}
	return out
}
