// Package analytics aggregates the order and product collections into the
// dashboard report. It owns no data of its own; it reads both stores through
// narrow lister interfaces.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/catalog"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/order"
)

// Products with 0 < stock < lowStockThreshold count as low stock;
// stock == 0 counts as out of stock, never both.
const lowStockThreshold = 10

type OrderLister interface {
	Orders(ctx context.Context) ([]order.Order, error)
}

type ProductLister interface {
	Products(ctx context.Context) ([]catalog.Product, error)
}

type Service struct {
	orders   OrderLister
	products ProductLister
	now      func() time.Time
	loc      *time.Location
}

func NewService(orders OrderLister, products ProductLister) *Service {
	return &Service{
		orders:   orders,
		products: products,
		now:      time.Now,
		loc:      time.Local,
	}
}

// WithClock pins the service clock and timezone, for tests.
func (s *Service) WithClock(now func() time.Time, loc *time.Location) *Service {
	s.now = now
	s.loc = loc
	return s
}

// Report partitions orders by calendar day and calendar month around now,
// in the service's location. Days compare by date equality, not a rolling
// 24h window; months compare by (year, month) and the previous month is
// taken from the first of the current month, so January rolls back into
// December of the prior year.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	orders, err := s.orders.Orders(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.Products(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	yesterday := now.AddDate(0, 0, -1)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	prevMonth := firstOfMonth.AddDate(0, -1, 0)

	var rep Report
	rep.Revenue = Revenue{
		Today:     decimal.Zero,
		Yesterday: decimal.Zero,
		ThisMonth: decimal.Zero,
		LastMonth: decimal.Zero,
	}

	var todayOrders []order.Order
	for _, o := range orders {
		created := o.CreatedAt.In(s.loc)
		if sameDay(created, now) {
			rep.Orders.Today++
			rep.Revenue.Today = rep.Revenue.Today.Add(o.TotalAmount)
			todayOrders = append(todayOrders, o)
		}
		if sameDay(created, yesterday) {
			rep.Orders.Yesterday++
			rep.Revenue.Yesterday = rep.Revenue.Yesterday.Add(o.TotalAmount)
		}
		if sameMonth(created, now) {
			rep.Orders.ThisMonth++
			rep.Revenue.ThisMonth = rep.Revenue.ThisMonth.Add(o.TotalAmount)
		}
		if sameMonth(created, prevMonth) {
			rep.Orders.LastMonth++
			rep.Revenue.LastMonth = rep.Revenue.LastMonth.Add(o.TotalAmount)
		}
	}

	rep.Products.Total = len(products)
	for _, p := range products {
		switch {
		case p.Stock == 0:
			rep.Products.OutOfStock++
		case p.Stock < lowStockThreshold:
			rep.Products.LowStock++
		}
	}

	// A phone number is the de facto customer identity; there is no
	// customer entity. "New" approximates first-time buyers with today's
	// order count, matching the dashboard's definition.
	phones := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		phones[o.CustomerPhone] = struct{}{}
	}
	rep.Customers.Total = len(phones)
	rep.Customers.New = len(todayOrders)
	for _, o := range todayOrders {
		if hasEarlierOrder(orders, o) {
			rep.Customers.Returning++
		}
	}

	return &rep, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func hasEarlierOrder(orders []order.Order, cur order.Order) bool {
	for _, prev := range orders {
		if prev.CustomerPhone == cur.CustomerPhone && prev.CreatedAt.Before(cur.CreatedAt) {
			return true
		}
	}
	return false
}
