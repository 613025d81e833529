package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem - строка корзины пользователя.
// На пару (user_id, item_id) приходится не больше одной строки: повторное
// добавление увеличивает Quantity (см. repo.CartRepository.AddOrIncrement).
type CartItem struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	UserID   int64 `gorm:"not null;index:idx_cart_user_item"`
	ItemID   int64 `gorm:"not null;index:idx_cart_user_item"`
	Quantity int   `gorm:"not null"`

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Item *Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Subtotal возвращает price × quantity, либо ноль если товар не загружен.
func (c *CartItem) Subtotal() decimal.Decimal {
	if c.Item == nil {
		return decimal.Zero
	}
	return c.Item.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// CartItemView - представление строки корзины для API.
type CartItemView struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"user_id"`
	ItemID   int64           `json:"item_id"`
	Quantity int             `json:"quantity"`
	Item     *ItemView       `json:"item"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (c *CartItem) View() CartItemView {
	v := CartItemView{
		ID:       c.ID,
		UserID:   c.UserID,
		ItemID:   c.ItemID,
		Quantity: c.Quantity,
		Subtotal: c.Subtotal(),
	}
	if c.Item != nil {
		iv := c.Item.View()
		v.Item = &iv
	}
	return v
}
