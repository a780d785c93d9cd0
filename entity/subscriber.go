package entity

import "time"

type Subscriber struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"size:256;uniqueIndex;not null" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
