package entity

import (
	"time"

	"gorm.io/gorm"
)

// Base is embedded by every domain table. Deletes are soft through DeletedAt.
type Base struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
