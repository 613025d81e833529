package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// цены отдаём в JSON числами, как и раньше отдавал фронтенд-контракт
	decimal.MarshalJSONWithoutQuotes = true
}

// Item - товар каталога. Создаётся сидом при старте, через API только читается.
type Item struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;index"`
	Category    string          `gorm:"not null;index"`
	// Stock информационное поле, корзина его не уменьшает.
	Stock int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// ItemView - представление товара для API.
type ItemView struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	CreatedAt   string          `json:"created_at"`
}

// View собирает представление товара.
func (it *Item) View() ItemView {
	return ItemView{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Category:    it.Category,
		Stock:       it.Stock,
		CreatedAt:   formatTime(it.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
