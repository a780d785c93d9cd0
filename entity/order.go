package entity

import "time"

type Order struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	CustomerName  string `gorm:"size:128" json:"customer_name"`
	CustomerEmail string `gorm:"size:128" json:"customer_email"`
	CustomerPhone string `gorm:"size:64" json:"customer_phone"`
	TotalCents    int    `json:"total_cents"`
	Status        string `gorm:"size:64;default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}
