package repository

import (
	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) SetTotal(tx *gorm.DB, orderID uint, totalCents int) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("total_cents", totalCents).Error
}

// GetMenuItemForUpdate reads the menu item inside the checkout transaction
// so the snapshotted price is the one current at commit time.
func (r *OrderRepository) GetMenuItemForUpdate(tx *gorm.DB, id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := tx.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderRepository) ListWithItems() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Order("id desc").Find(&orders).Error
	return orders, err
}
