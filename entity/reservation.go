package entity

import "time"

// Reservation holds one table for one time slot. The composite unique index
// on (time_slot, table_number) is what makes concurrent double-booking of a
// table impossible: the second writer gets a duplicate-key error and retries
// with a freshly computed set of free tables.
type Reservation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null" json:"customer_id"`
	TimeSlot    time.Time `gorm:"not null;uniqueIndex:idx_slot_table" json:"time_slot"`
	TableNumber int       `gorm:"not null;uniqueIndex:idx_slot_table" json:"table_number"`
	Guests      int       `gorm:"default:1" json:"guests"`

	CreatedAt time.Time `json:"created_at"`

	Customer Customer `json:"customer"`
}
