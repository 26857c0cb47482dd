package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixtures returns the demo catalog the app ships with until the real
// backend is wired up. Timestamps are relative to now so the records look
// recent on any day.
func Fixtures(now time.Time) ([]Product, []Category) {
	categories := []Category{
		{ID: "1", Name: "Vegetables", Description: "Fresh vegetables"},
		{ID: "2", Name: "Fruits", Description: "Fresh fruits"},
		{ID: "3", Name: "Leafy Greens", Description: "Spinach, lettuce, etc."},
		{ID: "4", Name: "Herbs", Description: "Fresh herbs and spices"},
	}

	created := now.AddDate(0, 0, -5)
	updated := now.AddDate(0, 0, -1)
	product := func(id, name, category string, price int64, stock int, unit, image string) Product {
		return Product{
			ID:        id,
			Name:      name,
			Category:  category,
			Price:     decimal.NewFromInt(price),
			Stock:     stock,
			Unit:      unit,
			Image:     image,
			CreatedAt: created,
			UpdatedAt: updated,
		}
	}

	products := []Product{
		product("1", "Tomatoes", "Vegetables", 40, 50, "kg",
			"https://images.pexels.com/photos/533280/pexels-photo-533280.jpeg?auto=compress&cs=tinysrgb&w=400"),
		product("2", "Onions", "Vegetables", 30, 75, "kg",
			"https://images.pexels.com/photos/144248/onions-food-vegetables-healthy-144248.jpeg?auto=compress&cs=tinysrgb&w=400"),
		product("3", "Carrots", "Vegetables", 45, 35, "kg",
			"https://images.pexels.com/photos/143133/pexels-photo-143133.jpeg?auto=compress&cs=tinysrgb&w=400"),
		product("4", "Potatoes", "Vegetables", 25, 100, "kg",
			"https://images.pexels.com/photos/144248/potatoes-vegetables-erdfrucht-bio-144248.jpeg?auto=compress&cs=tinysrgb&w=400"),
		product("5", "Bananas", "Fruits", 60, 30, "dozen",
			"https://images.pexels.com/photos/2872755/pexels-photo-2872755.jpeg?auto=compress&cs=tinysrgb&w=400"),
		product("6", "Apples", "Fruits", 120, 25, "kg",
			"https://images.pexels.com/photos/102104/pexels-photo-102104.jpeg?auto=compress&cs=tinysrgb&w=400"),
		product("7", "Spinach", "Leafy Greens", 25, 20, "bunch",
			"https://images.pexels.com/photos/2255935/pexels-photo-2255935.jpeg?auto=compress&cs=tinysrgb&w=400"),
		product("8", "Lettuce", "Leafy Greens", 30, 15, "piece",
			"https://images.pexels.com/photos/1656663/pexels-photo-1656663.jpeg?auto=compress&cs=tinysrgb&w=400"),
	}

	return products, categories
}
