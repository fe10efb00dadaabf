package seeders

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shashiranjanraj/dinein/app/models"
	"github.com/shashiranjanraj/dinein/config"
)

func init() {
	Register("menu", SeedMenu)
}

// DefaultMenu is used when SEED_FILE is unset.
var DefaultMenu = []models.MenuItem{
	{FoodName: "Masala Dosa", Price: 120},
	{FoodName: "Idli Sambar", Price: 80},
	{FoodName: "Paneer Butter Masala", Price: 240},
	{FoodName: "Veg Biryani", Price: 220},
	{FoodName: "Chicken Biryani", Price: 280},
	{FoodName: "Butter Naan", Price: 45},
	{FoodName: "Gulab Jamun", Price: 90},
	{FoodName: "Mango Lassi", Price: 110},
}

// SeedMenu upserts the menu by food name, so reruns update prices in place.
func SeedMenu(ctx context.Context, t Target) error {
	items := DefaultMenu
	if path := config.SeedFile(); path != "" {
		loaded, err := LoadMenu(path)
		if err != nil {
			return err
		}
		items = loaded
	}

	for i := range items {
		item := items[i]
		if err := t.Menu.Upsert(ctx, &item); err != nil {
			return fmt.Errorf("upsert %q: %w", item.FoodName, err)
		}
	}
	return nil
}

// LoadMenu reads a JSON array of {"foodName", "price"} objects.
func LoadMenu(path string) ([]models.MenuItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	var items []models.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse menu file %s: %w", path, err)
	}
	for i, item := range items {
		if strings.TrimSpace(item.FoodName) == "" {
			return nil, fmt.Errorf("menu file %s: item %d has no foodName", path, i)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("menu file %s: %q has a negative price", path, item.FoodName)
		}
	}
	return items, nil
}
