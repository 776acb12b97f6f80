package model

type GetRaffleConfigRequest struct{}

type GetRaffleConfigResponse struct {
	Config RaffleConfig `json:"config"`
}

// Pointers tell a missing field apart from a zero value.
type UpdateRaffleConfigRequest struct {
	TicketPrice        *int64  `json:"ticket_price"`
	PrizeValue         *int64  `json:"prize_value"`
	MaxNumber          *int    `json:"max_number"`
	WinningNumbers     *string `json:"winning_numbers"`
	AutoDrawnNumbers   *int    `json:"auto_drawn_numbers"`
	WinningProbability *int    `json:"winning_probability"`
}

type UpdateRaffleConfigResponse struct {
	Config RaffleConfig `json:"config"`
}
