package service

import "errors"

// Kind - класс ошибки сервисного слоя; по нему хендлеры выбирают HTTP-статус.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindAuth
	KindNotFound
)

// Error - ожидаемая ошибка бизнес-логики с сообщением для клиента.
// Всё, что не *Error, считается внутренней ошибкой.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newError(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

var (
	ErrMissingFields      = newError(KindValidation, "Missing required fields")
	ErrMissingCredentials = newError(KindValidation, "Missing username or password")
	ErrInvalidQuantity    = newError(KindValidation, "Quantity must be a positive integer")
	ErrUsernameTaken      = newError(KindConflict, "Username already exists")
	ErrEmailTaken         = newError(KindConflict, "Email already exists")
	ErrInvalidCredentials = newError(KindAuth, "Invalid credentials")
	ErrItemNotFound       = newError(KindNotFound, "Item not found")
	ErrCartItemNotFound   = newError(KindNotFound, "Cart item not found")
)

// KindOf возвращает класс ошибки; ok=false для внутренних ошибок.
func KindOf(err error) (Kind, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}
