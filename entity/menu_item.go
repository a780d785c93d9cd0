package entity

import "time"

type MenuItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:128;not null" json:"name"`
	Description string `gorm:"size:512" json:"description"`

	// filename inside the images directory (e.g. "latte.jpg")
	ImageFilename string `gorm:"size:256" json:"image_filename"`

	PriceCents int  `gorm:"not null;check:price_cents >= 0" json:"price_cents"`
	Available  bool `gorm:"default:true" json:"available"`

	CategoryID uint     `json:"category_id"`
	Category   Category `json:"-"`

	CreatedAt time.Time `json:"created_at"`

	OrderItems []OrderItem `json:"-"`
}
