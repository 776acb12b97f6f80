package model

type PixWebhookRequest struct {
	ExternalID int64   `json:"external_id"`
	Status     int     `json:"status"`
	Amount     float64 `json:"amount"`
}

type PixWebhookResponse struct {
	TicketID string `json:"ticket_id"`
	Status   string `json:"status"`
	IsWinner bool   `json:"is_winner"`
}

type GetPixBalanceRequest struct{}

type GetPixBalanceResponse struct {
	Balance float64 `json:"balance"`
}

type GetPixDepositRequest struct {
	ID int64 `json:"id" form:"id"`
}

type GetPixDepositResponse struct {
	ID        int64   `json:"id"`
	Value     float64 `json:"value"`
	Tax       float64 `json:"tax"`
	EndToEnd  string  `json:"end_to_end"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type PixWithdrawRequest struct {
	Amount  float64 `json:"amount"`
	PixKey  string  `json:"pix_key"`
	PixType string  `json:"pix_type"`
}

type PixWithdrawResponse struct {
	ExternalID int64   `json:"external_id"`
	EndToEndID string  `json:"end_to_end_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	Message    string  `json:"message"`
}
