package model

import "github.com/shopspring/decimal"

// CartItem - строка серверной корзины.
type CartItem struct {
	ID       int64           `json:"id"`
	ItemID   int64           `json:"item_id"`
	Quantity int             `json:"quantity"`
	Item     *Item           `json:"item"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Cart - ответ GET /api/cart.
type Cart struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// CartItemResult - ответ POST/PUT /api/cart; CartItem равен nil, если строка удалена.
type CartItemResult struct {
	Message  string    `json:"message"`
	CartItem *CartItem `json:"cart_item"`
}

// LocalCartLine - строка анонимной корзины в локальной SQLite.
// Ключ корзины - ItemID; ID служит только идентификатором строки.
type LocalCartLine struct {
	ID        string
	ItemID    int64
	Quantity  int
	CreatedAt int64
	UpdatedAt int64
}
