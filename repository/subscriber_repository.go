package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
)

type SubscriberRepository struct {
	DB *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{DB: db}
}

func (r *SubscriberRepository) FindByEmail(email string) (*entity.Subscriber, error) {
	var sub entity.Subscriber
	err := r.DB.Where("email = ?", email).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriberRepository) Create(sub *entity.Subscriber) error {
	return r.DB.Create(sub).Error
}
