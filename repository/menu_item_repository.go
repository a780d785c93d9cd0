package repository

import (
	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) ListAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) ListByCategory(categoryID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category_id = ?", categoryID).Order("id").Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// ReferencingOrderIDs returns the distinct orders whose line items point at
// the menu item. Deletion is refused while any exist, to keep order history
// intact.
func (r *MenuItemRepository) ReferencingOrderIDs(id uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.OrderItem{}).
		Where("menu_item_id = ?", id).
		Distinct().
		Pluck("order_id", &ids).Error
	return ids, err
}
