package repository

import (
	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// ListOrdered returns categories in display order.
func (r *CategoryRepository) ListOrdered() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("position").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Update(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// AttachedMenuItemIDs lists the menu items still pointing at the category;
// a non-empty result blocks deletion.
func (r *CategoryRepository) AttachedMenuItemIDs(id uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.MenuItem{}).
		Where("category_id = ?", id).
		Pluck("id", &ids).Error
	return ids, err
}
