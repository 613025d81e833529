package repo

import (
	"ShopFront/internal/cli/model"
	"context"
)

// LocalCartRepository определяет порт доступа к анонимной корзине на клиенте.
// Строки уникальны по item_id.
type LocalCartRepository interface {
	// Add увеличивает количество существующей строки или создаёт новую.
	Add(ctx context.Context, itemID int64, qty int) (*model.LocalCartLine, error)

	// SetQuantity выставляет количество; false, если строки с таким item_id нет.
	SetQuantity(ctx context.Context, itemID int64, qty int) (bool, error)

	// Remove удаляет строку; false, если её не было.
	Remove(ctx context.Context, itemID int64) (bool, error)

	// List возвращает строки в порядке добавления.
	List(ctx context.Context) ([]model.LocalCartLine, error)
}
