package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// TakenTables lists the table numbers already booked at the exact slot.
func (r *ReservationRepository) TakenTables(tx *gorm.DB, slot time.Time) ([]int, error) {
	var taken []int
	err := tx.Model(&entity.Reservation{}).
		Where("time_slot = ?", slot).
		Pluck("table_number", &taken).Error
	return taken, err
}

func (r *ReservationRepository) Create(tx *gorm.DB, res *entity.Reservation) error {
	return tx.Create(res).Error
}

func (r *ReservationRepository) ListWithCustomer() ([]entity.Reservation, error) {
	var all []entity.Reservation
	err := r.DB.Preload("Customer").Order("time_slot").Find(&all).Error
	return all, err
}
