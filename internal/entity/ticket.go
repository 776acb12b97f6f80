package entity

import (
	"database/sql"

	"github.com/rifa-premiada/backend/pkg/enum"
)

type TicketStatus string

var (
	TicketPending = enum.New(TicketStatus("pending"), "pending")
	TicketPaid    = enum.New(TicketStatus("paid"), "paid")
	TicketFailed  = enum.New(TicketStatus("failed"), "failed")
)

type Ticket struct {
	Base

	UserName     string
	UserEmail    string
	PurchaseDate sql.NullTime `gorm:"index"`
	Status       TicketStatus `gorm:"index"`
	DrawnNumbers string
	IsWinner     bool `gorm:"index"`

	PrizeID sql.NullString
	Prize   Prize `gorm:"foreignKey:PrizeID"`

	// Amount is the ticket price in cents at the time of purchase.
	Amount int64

	PaymentExternalID sql.NullInt64 `gorm:"unique"`
	PaymentQRCode     string        `gorm:"type:text"`
	PaymentCopyPaste  string        `gorm:"type:text"`
}
