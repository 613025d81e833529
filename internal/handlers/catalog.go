package handlers

import (
	"ShopFront/internal/model"
	"ShopFront/internal/repo"
	"ShopFront/internal/service"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogHandler - чтение каталога, доступно без авторизации.
type CatalogHandler struct {
	CatalogService *service.CatalogService
	Logger         *zap.SugaredLogger
}

func NewCatalogHandler(catalogService *service.CatalogService, logger *zap.SugaredLogger) *CatalogHandler {
	return &CatalogHandler{CatalogService: catalogService, Logger: logger}
}

// ListItems список товаров с фильтрами category, min_price, max_price, search
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	f := parseItemFilter(r.URL.Query(), h.Logger)

	items, err := h.CatalogService.ListItems(r.Context(), f)
	if err != nil {
		respondServiceError(w, h.Logger, "ListItems", err, "Failed to fetch items")
		return
	}

	views := make([]model.ItemView, 0, len(items))
	for i := range items {
		views = append(views, items[i].View())
	}
	respondJSON(w, http.StatusOK, views)
}

// ListCategories список различных категорий
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.CatalogService.ListCategories(r.Context())
	if err != nil {
		respondServiceError(w, h.Logger, "ListCategories", err, "Failed to fetch categories")
		return
	}
	respondJSON(w, http.StatusOK, cats)
}

// parseItemFilter собирает фильтр из query. Пустые значения не фильтруют,
// нечисловые цены пропускаются.
func parseItemFilter(q url.Values, logger *zap.SugaredLogger) repo.ItemFilter {
	var f repo.ItemFilter
	if v := q.Get("category"); v != "" {
		f.Category = &v
	}
	if v := q.Get("search"); v != "" {
		f.Search = &v
	}
	f.MinPrice = parsePrice(q, "min_price", logger)
	f.MaxPrice = parsePrice(q, "max_price", logger)
	return f
}

func parsePrice(q url.Values, key string, logger *zap.SugaredLogger) *decimal.Decimal {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		logger.Debugw("ListItems: ignoring non-numeric price filter", "param", key, "value", v)
		return nil
	}
	return &d
}
