package repo

import (
	"ShopFront/internal/model"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// SampleItems - стартовый каталог для пустой БД.
func SampleItems() []model.Item {
	mk := func(name, desc, price, category string, stock int) model.Item {
		return model.Item{
			Name:        name,
			Description: desc,
			Price:       decimal.RequireFromString(price),
			Category:    category,
			Stock:       stock,
		}
	}
	return []model.Item{
		mk("Laptop", "High-performance laptop", "999.99", "Electronics", 10),
		mk("Smartphone", "Latest smartphone", "699.99", "Electronics", 15),
		mk("Coffee Mug", "Premium ceramic mug", "19.99", "Home", 25),
		mk("Book", "Best-selling novel", "14.99", "Books", 30),
		mk("Headphones", "Wireless headphones", "149.99", "Electronics", 20),
		mk("T-Shirt", "Cotton t-shirt", "24.99", "Clothing", 40),
	}
}

// SeedItems заполняет каталог, только если в нём ещё нет товаров.
// Возвращает число добавленных записей.
func SeedItems(ctx context.Context, r ItemRepository) (int, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	items := SampleItems()
	if err := r.CreateBatch(ctx, items); err != nil {
		return 0, fmt.Errorf("seed items: %w", err)
	}
	return len(items), nil
}
