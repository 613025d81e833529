package repo

import (
	"ShopFront/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// CartRepository - доступ к строкам корзины.
// Все выборки по id строки дополнительно ограничены владельцем (user_id):
// чужая строка для вызывающего выглядит так же, как несуществующая.
type CartRepository interface {
	// ListByUser возвращает строки корзины пользователя с подгруженным Item.
	ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error)

	// GetForUser находит строку по id и владельцу.
	GetForUser(ctx context.Context, userID, id int64) (*model.CartItem, error)

	// AddOrIncrement увеличивает quantity существующей строки (user, item)
	// либо создаёт новую. Возвращает итоговую строку с Item.
	AddOrIncrement(ctx context.Context, userID, itemID int64, qty int) (*model.CartItem, error)

	// SetQuantity выставляет абсолютное значение quantity.
	SetQuantity(ctx context.Context, userID, id int64, qty int) (*model.CartItem, error)

	// Delete удаляет строку; deleted=false если строки нет или она чужая.
	Delete(ctx context.Context, userID, id int64) (deleted bool, err error)
}

type cartRepo struct {
	db *gorm.DB
}

// NewCartRepository создаёт реализацию репозитория корзины.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	rows := []model.CartItem{}
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("user_id = ?", userID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *cartRepo) GetForUser(ctx context.Context, userID, id int64) (*model.CartItem, error) {
	return loadCartItem(r.db.WithContext(ctx), userID, id)
}

func (r *cartRepo) AddOrIncrement(ctx context.Context, userID, itemID int64, qty int) (*model.CartItem, error) {
	var out *model.CartItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.CartItem
		err := tx.Where("user_id = ? AND item_id = ?", userID, itemID).First(&existing).Error
		switch {
		case err == nil:
			// инкремент одним UPDATE, без read-modify-write в приложении
			res := tx.Model(&model.CartItem{}).
				Where("id = ?", existing.ID).
				Update("quantity", gorm.Expr("quantity + ?", qty))
			if res.Error != nil {
				return res.Error
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			existing = model.CartItem{UserID: userID, ItemID: itemID, Quantity: qty}
			if err := tx.Create(&existing).Error; err != nil {
				return err
			}
		default:
			return err
		}
		out, err = loadCartItem(tx, userID, existing.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cartRepo) SetQuantity(ctx context.Context, userID, id int64, qty int) (*model.CartItem, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&model.CartItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("quantity", qty)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return loadCartItem(db, userID, id)
}

func (r *cartRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func loadCartItem(db *gorm.DB, userID, id int64) (*model.CartItem, error) {
	var ci model.CartItem
	err := db.Preload("Item").
		Where("id = ? AND user_id = ?", id, userID).
		First(&ci).Error
	if err != nil {
		return nil, err
	}
	return &ci, nil
}
