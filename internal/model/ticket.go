package model

type BuyTicketRequest struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

type BuyTicketResponse struct {
	TicketID string `json:"ticket_id"`
	Status   string `json:"status"`

	// Set when the ticket waits for a PIX payment.
	Payment *Payment `json:"payment,omitempty"`

	// Set when the ticket is drawn right away.
	IsWinner     bool   `json:"is_winner"`
	DrawnNumbers []int  `json:"drawn_numbers,omitempty"`
	Prize        *Prize `json:"prize,omitempty"`
	Message      string `json:"message,omitempty"`
}

type Payment struct {
	ExternalID int64  `json:"external_id"`
	QRCode     string `json:"qr_code"`
	CopyPaste  string `json:"copy_paste"`
	Amount     int64  `json:"amount"`
}

type GetTicketRequest struct {
	ID string `json:"id" form:"id"`
}

type GetTicketResponse struct {
	Ticket Ticket `json:"ticket"`
}

type GetRecentWinnersRequest struct {
	Limit int `json:"limit" form:"limit"`
}

type RecentWinner struct {
	UserName  string `json:"user_name"`
	PrizeName string `json:"prize_name,omitempty"`
	PrizeDate string `json:"prize_date"`
}

type GetRecentWinnersResponse struct {
	Winners []RecentWinner `json:"winners"`
}

type GetRaffleInfoRequest struct{}

type GetRaffleInfoResponse struct {
	TicketPrice      int64 `json:"ticket_price"`
	PrizeValue       int64 `json:"prize_value"`
	MaxNumber        int   `json:"max_number"`
	AutoDrawnNumbers int   `json:"auto_drawn_numbers"`
	PixEnabled       bool  `json:"pix_enabled"`
}

type GetListTicketRequest struct {
	Offset   int    `json:"offset" form:"offset"`
	Limit    int    `json:"limit" form:"limit"`
	Status   string `json:"status" form:"status"`
	IsWinner *bool  `json:"is_winner" form:"is_winner"`
}

type GetListTicketResponse struct {
	Tickets []Ticket `json:"tickets"`
	Total   int64    `json:"total"`
}

type GetListWinnerRequest struct {
	Offset int `json:"offset" form:"offset"`
	Limit  int `json:"limit" form:"limit"`
}

type GetListWinnerResponse struct {
	Winners []Winner `json:"winners"`
	Total   int64    `json:"total"`
}
