package entity

import "time"

type Customer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:128;not null" json:"name"`
	Email      string `gorm:"size:256;uniqueIndex;not null" json:"email"`
	Phone      string `gorm:"size:64" json:"phone"`
	Newsletter bool   `gorm:"default:false" json:"newsletter"`

	CreatedAt time.Time `json:"created_at"`

	Reservations []Reservation `json:"-"`
}
