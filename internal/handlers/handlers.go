package handlers

import (
	"ShopFront/internal/auth"
	"ShopFront/internal/config"
	"ShopFront/internal/middleware"
	"ShopFront/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	catalogService *service.CatalogService,
	cartService *service.CartService,
	tokens *auth.TokenManager,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.WithGunzip)
	r.Use(middleware.WithAuth(tokens))
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	catalogHandler := NewCatalogHandler(catalogService, logger)
	cartHandler := NewCartHandler(cartService, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// User routes
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Get("/session", userHandler.Session)

		// Catalog routes
		r.Get("/items", catalogHandler.ListItems)
		r.Get("/categories", catalogHandler.ListCategories)

		// Cart routes
		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", cartHandler.GetCart)
			r.Post("/", cartHandler.AddToCart)
			r.Put("/{id}", cartHandler.UpdateCartItem)
			r.Delete("/{id}", cartHandler.RemoveFromCart)
		})
	})

	return &Handler{Router: r}
}

// ErrorResponse - единый формат ошибок API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse - ответ с одним сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// respondServiceError переводит ошибку сервиса в HTTP-ответ.
// Неожиданные ошибки логируются, клиенту уходит fallback без деталей.
func respondServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error, fallback string) {
	kind, ok := service.KindOf(err)
	if !ok {
		logger.Errorw(op+": service error", "error", err)
		respondError(w, http.StatusInternalServerError, fallback)
		return
	}
	status := http.StatusInternalServerError
	switch kind {
	case service.KindValidation, service.KindConflict:
		status = http.StatusBadRequest
	case service.KindAuth:
		status = http.StatusUnauthorized
	case service.KindNotFound:
		status = http.StatusNotFound
	}
	respondError(w, status, err.Error())
}
