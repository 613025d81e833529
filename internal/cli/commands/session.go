package commands

import (
	"ShopFront/internal/cli/api"
	"ShopFront/internal/cli/bootstrap"
	"ShopFront/internal/cli/repo"
	fsrepo "ShopFront/internal/cli/repo/fs"
	"ShopFront/internal/cli/service"
	"ShopFront/internal/config"
	"context"
	"fmt"
	"strconv"
)

// authStore - файловое хранилище сессии по настройкам клиента
func authStore(cfg *config.Config) fsrepo.AuthFSStore {
	return fsrepo.AuthFSStore{TokenFile: cfg.TokenFile}
}

// authService - вход/выход через сервер с сохранением сессии в файлах
func authService(cfg *config.Config) service.AuthService {
	store := authStore(cfg)
	return service.NewAuthService(api.NewClient(cfg.ServerURL, ""), store, store)
}

// shopClient создаёт сервис магазина с сохранённым токеном (если он есть)
func shopClient(cfg *config.Config) *service.ShopService {
	token, _ := authStore(cfg).Load()
	return service.NewShopService(api.NewClient(cfg.ServerURL, token))
}

// withLocalCart открывает анонимную корзину на время fn
func withLocalCart(cfg *config.Config, fn func(r repo.LocalCartRepository) error) error {
	r, done, err := bootstrap.OpenLocalCart(cfg)
	if err != nil {
		return err
	}
	defer done()
	return fn(r)
}

// mergeAfterLogin переносит анонимную корзину в аккаунт; ошибки только печатаются,
// вход при этом считается успешным
func mergeAfterLogin(ctx context.Context, cfg *config.Config) {
	err := withLocalCart(cfg, func(r repo.LocalCartRepository) error {
		res, err := service.MergeLocalCart(ctx, shopClient(cfg), r)
		if res.Merged > 0 {
			fmt.Fprintf(Out, "Cart items merged successfully (%d)\n", res.Merged)
		}
		for _, id := range res.Skipped {
			fmt.Fprintf(Out, "Item %d is no longer available, dropped from local cart\n", id)
		}
		if err != nil {
			return fmt.Errorf("%w; %d line(s) kept locally", err, res.Left)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(Out, "Cart merge failed: %v\n", err)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

func parseQty(s string) (int, error) {
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrUsage
	}
	return q, nil
}
