package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// FindByEmail returns (nil, nil) when no customer matches; the caller
// decides between create and merge.
func (r *CustomerRepository) FindByEmail(tx *gorm.DB, email string) (*entity.Customer, error) {
	var cust entity.Customer
	err := tx.Where("email = ?", email).First(&cust).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepository) Create(tx *gorm.DB, cust *entity.Customer) error {
	return tx.Create(cust).Error
}

func (r *CustomerRepository) Save(tx *gorm.DB, cust *entity.Customer) error {
	return tx.Save(cust).Error
}
