package service

import (
	"ShopFront/internal/cli/api"
	"ShopFront/internal/cli/repo"
	"context"
	"fmt"
	"net/http"
)

// MergeResult - итог переноса анонимной корзины на сервер.
type MergeResult struct {
	Merged  int     // строк перенесено
	Skipped []int64 // товары, которых больше нет в каталоге
	Left    int     // строк осталось локально после ошибки
}

// MergeLocalCart переносит каждую строку локальной корзины в серверную через POST /api/cart
// (сервер сам суммирует дубликаты). Перенесённая строка сразу удаляется локально,
// поэтому после ошибки в локальной корзине остаются только непереданные строки.
func MergeLocalCart(ctx context.Context, shop *ShopService, local repo.LocalCartRepository) (MergeResult, error) {
	var res MergeResult
	lines, err := local.List(ctx)
	if err != nil {
		return res, fmt.Errorf("read local cart: %w", err)
	}
	for i, l := range lines {
		_, err := shop.AddToCart(ctx, l.ItemID, l.Quantity)
		switch {
		case err == nil:
			res.Merged++
		case api.IsStatus(err, http.StatusNotFound):
			res.Skipped = append(res.Skipped, l.ItemID)
		default:
			res.Left = len(lines) - i
			return res, fmt.Errorf("merge item %d: %w", l.ItemID, err)
		}
		if _, err := local.Remove(ctx, l.ItemID); err != nil {
			res.Left = len(lines) - i
			return res, fmt.Errorf("clear merged line: %w", err)
		}
	}
	return res, nil
}
