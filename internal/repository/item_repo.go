package repository

import (
	"go-erp-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *model.Item) error
	FindAll() ([]model.Item, error)
	FindByID(id uuid.UUID) (*model.Item, error)
	FindByCode(code string) (*model.Item, error)
	Update(item *model.Item) error
	FindLowStock() ([]model.Item, error)
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func (r *itemRepo) Create(item *model.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) FindAll() ([]model.Item, error) {
	var items []model.Item
	err := r.db.Order("item_code ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByID(id uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := r.db.First(&item, "id = ?", id).Error
	return &item, err
}

func (r *itemRepo) FindByCode(code string) (*model.Item, error) {
	var item model.Item
	err := r.db.First(&item, "item_code = ?", code).Error
	return &item, err
}

func (r *itemRepo) Update(item *model.Item) error {
	return r.db.Save(item).Error
}

// FindLowStock lists active items whose total balance across warehouses has
// fallen below their reorder level.
func (r *itemRepo) FindLowStock() ([]model.Item, error) {
	var items []model.Item
	err := r.db.
		Where(`is_active = ? AND reorder_level > 0 AND item_code IN (
			SELECT item_code FROM stock_balances
			GROUP BY item_code
			HAVING SUM(current_qty) < (
				SELECT reorder_level FROM items WHERE items.item_code = stock_balances.item_code LIMIT 1
			)
		)`, true).
		Find(&items).Error
	return items, err
}
