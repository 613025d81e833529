package bootstrap

import (
	"fmt"

	"ShopFront/internal/cli/repo"
	reposqlite "ShopFront/internal/cli/repo/sqlite"
	"ShopFront/internal/config"
)

// OpenLocalCart открывает локальную анонимную корзину по cfg.ClientDBPath,
// выполняет миграции и возвращает (repo, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединение с БД.
func OpenLocalCart(cfg *config.Config) (repo.LocalCartRepository, func() error, error) {
	if cfg == nil || cfg.ClientDBPath == "" {
		return nil, nil, fmt.Errorf("client db path is not configured")
	}
	r, err := reposqlite.Open(cfg.ClientDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open local cart: %w", err)
	}
	if err := r.Migrate(); err != nil {
		_ = r.Close()
		return nil, nil, fmt.Errorf("migrate local cart: %w", err)
	}
	cleanup := func() error { return r.Close() }
	return r, cleanup, nil
}
