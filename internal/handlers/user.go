package handlers

import (
	"ShopFront/internal/config"
	"ShopFront/internal/middleware"
	"ShopFront/internal/model"
	"ShopFront/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и проверку сессии.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message     string         `json:"message,omitempty"`
	AccessToken string         `json:"access_token"`
	User        model.UserView `json:"user"`
}

type SessionResponse struct {
	LoggedIn bool   `json:"logged_in"`
	UserID   *int64 `json:"user_id,omitempty"`
}

// Register регистрация пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		respondError(w, http.StatusBadRequest, service.ErrMissingFields.Msg)
		return
	}

	user, token, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, h.Logger, "Register", err, "Registration failed")
		return
	}

	h.Logger.Infow("user registered", "user_id", user.ID, "username", user.Username)
	respondJSON(w, http.StatusCreated, AuthResponse{
		Message:     "User created successfully",
		AccessToken: token,
		User:        user.View(),
	})
}

// Login вход пользователя
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		respondError(w, http.StatusBadRequest, service.ErrMissingCredentials.Msg)
		return
	}

	user, token, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, h.Logger, "Login", err, "Login failed")
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{
		AccessToken: token,
		User:        user.View(),
	})
}

// Session сообщает, авторизован ли запрос (токен необязателен)
func (h *UserHandler) Session(w http.ResponseWriter, r *http.Request) {
	resp := SessionResponse{}
	if uid, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		resp.LoggedIn = true
		resp.UserID = &uid
	}
	respondJSON(w, http.StatusOK, resp)
}
