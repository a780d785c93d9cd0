package entity

type OrderItem struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrderID        uint `json:"order_id"`
	MenuItemID     uint `json:"menu_item_id"`
	Qty            int  `gorm:"default:1" json:"qty"`
	UnitPriceCents int  `json:"unit_price_cents"`

	MenuItem MenuItem `json:"-"`
}
