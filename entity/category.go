package entity

type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:128;not null" json:"name"`
	Position int    `gorm:"default:0" json:"position"`

	MenuItems []MenuItem `json:"-"`
}
