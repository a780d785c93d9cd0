package entity

import "time"

// Promotion is part of the schema for compatibility with existing data.
// No endpoint reads or writes it yet.
type Promotion struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	MenuItemID uint `gorm:"not null" json:"menu_item_id"`
	Percent    int  `gorm:"not null;default:0;check:percent >= 0 AND percent <= 100" json:"percent"`
	Active     bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`

	MenuItem MenuItem `json:"-"`
}
