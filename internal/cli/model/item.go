package model

import "github.com/shopspring/decimal"

// Item - товар каталога в ответе сервера.
type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
}

// User - публичные поля пользователя.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse - ответ /api/register и /api/login.
type AuthResponse struct {
	Message     string `json:"message,omitempty"`
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Session - ответ /api/session.
type Session struct {
	LoggedIn bool   `json:"logged_in"`
	UserID   *int64 `json:"user_id,omitempty"`
}
