package analytics

import "github.com/shopspring/decimal"

// Report is the dashboard aggregate. Every field is always present; the
// shape is fixed rather than an open map so callers get guaranteed types.
type Report struct {
	Revenue   Revenue   `json:"revenue"`
	Orders    Orders    `json:"orders"`
	Products  Products  `json:"products"`
	Customers Customers `json:"customers"`
}

type Revenue struct {
	Today     decimal.Decimal `json:"today"`
	Yesterday decimal.Decimal `json:"yesterday"`
	ThisMonth decimal.Decimal `json:"this_month"`
	LastMonth decimal.Decimal `json:"last_month"`
}

type Orders struct {
	Today     int `json:"today"`
	Yesterday int `json:"yesterday"`
	ThisMonth int `json:"this_month"`
	LastMonth int `json:"last_month"`
}

type Products struct {
	Total      int `json:"total"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}

type Customers struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Returning int `json:"returning"`
}
