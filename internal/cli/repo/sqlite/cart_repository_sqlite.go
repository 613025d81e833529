package sqlite

import (
	"ShopFront/internal/cli/model"
	"ShopFront/internal/cli/repo"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// CartRepositorySQLite - анонимная корзина CLI в локальной БД SQLite.
type CartRepositorySQLite struct {
	db  *sql.DB
	now func() time.Time
}

var _ repo.LocalCartRepository = (*CartRepositorySQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД корзины.
func Open(dbPath string) (*CartRepositorySQLite, error) {
	if dbPath == "" {
		return nil, errors.New("empty client db path")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// SQLite: одно соединение на файл
	db.SetMaxOpenConns(1)
	return &CartRepositorySQLite{db: db, now: time.Now}, nil
}

// Close закрывает соединение с БД.
func (r *CartRepositorySQLite) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Migrate гарантирует наличие схемы.
func (r *CartRepositorySQLite) Migrate() error {
	return runMigrations(r.db)
}

// Add добавляет товар; повторное добавление увеличивает количество.
func (r *CartRepositorySQLite) Add(ctx context.Context, itemID int64, qty int) (*model.LocalCartLine, error) {
	now := r.now().Unix()
	_, err := r.db.ExecContext(ctx, `INSERT INTO cart_lines(id, item_id, quantity, created_at, updated_at)
        VALUES(?, ?, ?, ?, ?)
        ON CONFLICT(item_id) DO UPDATE SET quantity = quantity + excluded.quantity, updated_at = excluded.updated_at`,
		uuid.NewString(), itemID, qty, now, now,
	)
	if err != nil {
		return nil, err
	}
	var l model.LocalCartLine
	err = r.db.QueryRowContext(ctx, `SELECT id, item_id, quantity, created_at, updated_at
        FROM cart_lines WHERE item_id = ?`, itemID).
		Scan(&l.ID, &l.ItemID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// SetQuantity выставляет количество строки.
func (r *CartRepositorySQLite) SetQuantity(ctx context.Context, itemID int64, qty int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE cart_lines SET quantity = ?, updated_at = ? WHERE item_id = ?`,
		qty, r.now().Unix(), itemID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Remove удаляет строку по item_id.
func (r *CartRepositorySQLite) Remove(ctx context.Context, itemID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_lines WHERE item_id = ?`, itemID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List возвращает строки в порядке добавления.
func (r *CartRepositorySQLite) List(ctx context.Context) ([]model.LocalCartLine, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, item_id, quantity, created_at, updated_at
        FROM cart_lines ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []model.LocalCartLine{}
	for rows.Next() {
		var l model.LocalCartLine
		if err := rows.Scan(&l.ID, &l.ItemID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	return res, rows.Err()
}
