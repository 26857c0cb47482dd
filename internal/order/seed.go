package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixtures returns the demo orders, timed relative to now so the dashboard
// day and month partitions are populated whenever the app starts: four
// orders earlier today in various states, one delivered yesterday evening.
func Fixtures(now time.Time) []Order {
	amount := func(v string) decimal.Decimal { return decimal.RequireFromString(v) }
	at := func(hoursAgo int, min int) time.Time {
		return now.Add(-time.Duration(hoursAgo)*time.Hour - time.Duration(min)*time.Minute)
	}
	eta := func(t time.Time) *time.Time { return &t }

	return []Order{
		{
			ID:              "1",
			CustomerName:    "Rahul Sharma",
			CustomerPhone:   "+91 9876543210",
			CustomerAddress: "123 MG Road, Koramangala, Bangalore - 560034",
			Items: []Item{
				{ProductID: "1", ProductName: "Tomatoes", Quantity: 2, Price: amount("40"), Unit: "kg"},
				{ProductID: "2", ProductName: "Onions", Quantity: 1, Price: amount("30"), Unit: "kg"},
			},
			TotalAmount:       amount("110"),
			Status:            StatusPending,
			CreatedAt:         at(0, 30),
			UpdatedAt:         at(0, 30),
			EstimatedDelivery: eta(now.Add(7 * time.Hour)),
		},
		{
			ID:              "2",
			CustomerName:    "Priya Patel",
			CustomerPhone:   "+91 8765432109",
			CustomerAddress: "456 Brigade Road, Commercial Street, Bangalore - 560025",
			Items: []Item{
				{ProductID: "3", ProductName: "Carrots", Quantity: 1.5, Price: amount("45"), Unit: "kg"},
				{ProductID: "4", ProductName: "Potatoes", Quantity: 3, Price: amount("25"), Unit: "kg"},
			},
			TotalAmount:       amount("142.5"),
			Status:            StatusAccepted,
			CreatedAt:         at(1, 0),
			UpdatedAt:         at(0, 45),
			EstimatedDelivery: eta(now.Add(8 * time.Hour)),
		},
		{
			ID:              "3",
			CustomerName:    "Amit Kumar",
			CustomerPhone:   "+91 7654321098",
			CustomerAddress: "789 Commercial Street, Shivaji Nagar, Bangalore - 560001",
			Items: []Item{
				{ProductID: "7", ProductName: "Spinach", Quantity: 2, Price: amount("25"), Unit: "bunch"},
				{ProductID: "5", ProductName: "Bananas", Quantity: 1, Price: amount("60"), Unit: "dozen"},
			},
			TotalAmount:       amount("110"),
			Status:            StatusInTransit,
			CreatedAt:         at(2, 15),
			UpdatedAt:         at(1, 30),
			EstimatedDelivery: eta(now.Add(4 * time.Hour)),
		},
		{
			ID:              "4",
			CustomerName:    "Sneha Reddy",
			CustomerPhone:   "+91 6543210987",
			CustomerAddress: "321 Indiranagar, 100 Feet Road, Bangalore - 560038",
			Items: []Item{
				{ProductID: "6", ProductName: "Apples", Quantity: 2, Price: amount("120"), Unit: "kg"},
			},
			TotalAmount:       amount("240"),
			Status:            StatusOutForDelivery,
			CreatedAt:         at(3, 40),
			UpdatedAt:         at(0, 15),
			EstimatedDelivery: eta(now.Add(2 * time.Hour)),
		},
		{
			ID:              "5",
			CustomerName:    "Vikram Singh",
			CustomerPhone:   "+91 5432109876",
			CustomerAddress: "654 Whitefield, ITPL Main Road, Bangalore - 560066",
			Items: []Item{
				{ProductID: "1", ProductName: "Tomatoes", Quantity: 3, Price: amount("40"), Unit: "kg"},
				{ProductID: "8", ProductName: "Lettuce", Quantity: 1, Price: amount("30"), Unit: "piece"},
			},
			TotalAmount:       amount("150"),
			Status:            StatusDelivered,
			CreatedAt:         now.AddDate(0, 0, -1).Add(-4 * time.Hour),
			UpdatedAt:         at(5, 0),
			EstimatedDelivery: eta(now.Add(-20 * time.Hour)),
		},
	}
}
