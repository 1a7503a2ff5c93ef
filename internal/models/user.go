package models

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DisplayName string    `gorm:"not null;default:''" json:"displayName"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}
