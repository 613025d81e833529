package handlers

import (
	"ShopFront/internal/middleware"
	"ShopFront/internal/model"
	"ShopFront/internal/service"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartHandler - корзина; маршруты закрыты middleware.RequireAuth.
type CartHandler struct {
	CartService *service.CartService
	Logger      *zap.SugaredLogger
}

func NewCartHandler(cartService *service.CartService, logger *zap.SugaredLogger) *CartHandler {
	return &CartHandler{CartService: cartService, Logger: logger}
}

type AddToCartRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity *int  `json:"quantity,omitempty"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

type CartResponse struct {
	Items []model.CartItemView `json:"items"`
	Total decimal.Decimal      `json:"total"`
	Count int                  `json:"count"`
}

type CartItemResponse struct {
	Message  string              `json:"message"`
	CartItem *model.CartItemView `json:"cart_item"`
}

// GetCart содержимое корзины
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	sum, err := h.CartService.GetCart(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.Logger, "GetCart", err, "Failed to fetch cart")
		return
	}

	views := make([]model.CartItemView, 0, len(sum.Items))
	for i := range sum.Items {
		views = append(views, sum.Items[i].View())
	}
	respondJSON(w, http.StatusOK, CartResponse{Items: views, Total: sum.Total, Count: sum.Count})
}

// AddToCart добавление товара (повторное добавление увеличивает количество)
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("AddToCart: invalid request body", "user_id", userID, "error", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ItemID == 0 {
		respondError(w, http.StatusBadRequest, "Missing item_id")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	ci, err := h.CartService.AddToCart(r.Context(), userID, req.ItemID, quantity)
	if err != nil {
		respondServiceError(w, h.Logger, "AddToCart", err, "Failed to add item to cart")
		return
	}

	v := ci.View()
	respondJSON(w, http.StatusCreated, CartItemResponse{Message: "Item added to cart", CartItem: &v})
}

// UpdateCartItem выставляет количество; quantity <= 0 удаляет строку
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, ok := cartItemID(r)
	if !ok {
		respondError(w, http.StatusNotFound, service.ErrCartItemNotFound.Msg)
		return
	}

	var req UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateCartItem: invalid request body", "user_id", userID, "error", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var (
		ci  *model.CartItem
		err error
	)
	if req.Quantity == nil {
		// без quantity строка не меняется
		ci, err = h.CartService.GetCartItem(r.Context(), userID, id)
	} else {
		ci, err = h.CartService.UpdateCartItem(r.Context(), userID, id, *req.Quantity)
	}
	if err != nil {
		respondServiceError(w, h.Logger, "UpdateCartItem", err, "Failed to update cart")
		return
	}

	resp := CartItemResponse{Message: "Cart updated"}
	if ci != nil {
		v := ci.View()
		resp.CartItem = &v
	}
	respondJSON(w, http.StatusOK, resp)
}

// RemoveFromCart удаление строки корзины
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, ok := cartItemID(r)
	if !ok {
		respondError(w, http.StatusNotFound, service.ErrCartItemNotFound.Msg)
		return
	}

	if err := h.CartService.RemoveFromCart(r.Context(), userID, id); err != nil {
		respondServiceError(w, h.Logger, "RemoveFromCart", err, "Failed to remove item from cart")
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Item removed from cart"})
}

func cartItemID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
