package entity

import (
	"database/sql"
	"time"
)

type Winner struct {
	Base

	TicketID string `gorm:"unique"`

	UserName     string
	UserEmail    string
	DrawnNumbers string

	PrizeID sql.NullString
	Prize   Prize `gorm:"foreignKey:PrizeID"`

	PrizeDate time.Time `gorm:"index"`
}
