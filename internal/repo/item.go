package repo

import (
	"ShopFront/internal/model"
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemFilter - необязательные фильтры каталога. nil означает «не фильтровать».
// Все заданные условия объединяются через AND.
type ItemFilter struct {
	Category *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	// Search - подстрока (с учётом регистра) в названии ИЛИ описании.
	Search *string
}

// ItemRepository определяет контракт доступа к каталогу.
type ItemRepository interface {
	List(ctx context.Context, f ItemFilter) ([]model.Item, error)
	GetByID(ctx context.Context, id int64) (*model.Item, error)
	// Categories возвращает различные значения category.
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.Item) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) List(ctx context.Context, f ItemFilter) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Model(&model.Item{})
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Search != nil {
		// LIKE в SQLite регистронезависим, поэтому ищем позицию подстроки
		fn := "instr"
		if r.db.Dialector.Name() == "postgres" {
			fn = "strpos"
		}
		q = q.Where("("+fn+"(name, ?) > 0 OR "+fn+"(description, ?) > 0)", *f.Search, *f.Search)
	}
	items := []model.Item{}
	if err := q.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Categories(ctx context.Context) ([]string, error) {
	cats := []string{}
	err := r.db.WithContext(ctx).Model(&model.Item{}).
		Distinct("category").
		Order("category").
		Pluck("category", &cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *itemRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).Count(&n).Error
	return n, err
}

func (r *itemRepo) CreateBatch(ctx context.Context, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
