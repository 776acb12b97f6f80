package entity

type RaffleConfig struct {
	Base

	// Amounts are in cents.
	TicketPrice int64
	PrizeValue  int64

	MaxNumber          int
	WinningNumbers     string
	AutoDrawnNumbers   int
	WinningProbability int
	IsActive           bool `gorm:"index"`
}
