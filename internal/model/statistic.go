package model

type GetStatisticRequest struct {
	Days int `json:"days" form:"days"`
}

type DailyTickets struct {
	Date    string `json:"date"`
	Tickets int    `json:"tickets"`
}

type GetStatisticResponse struct {
	TotalTickets int64          `json:"total_tickets"`
	PaidTickets  int64          `json:"paid_tickets"`
	Winners      int64          `json:"winners"`
	Revenue      int64          `json:"revenue"`
	ActivePrizes int            `json:"active_prizes"`
	Daily        []DailyTickets `json:"daily"`
}
