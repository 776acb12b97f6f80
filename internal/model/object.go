package model

type AccessToken struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

const AdminRole = "admin"

type RaffleConfig struct {
	ID                 string `json:"id"`
	TicketPrice        int64  `json:"ticket_price"`
	PrizeValue         int64  `json:"prize_value"`
	MaxNumber          int    `json:"max_number"`
	WinningNumbers     string `json:"winning_numbers"`
	AutoDrawnNumbers   int    `json:"auto_drawn_numbers"`
	WinningProbability int    `json:"winning_probability"`
	IsActive           bool   `json:"is_active"`
	UpdatedAt          string `json:"updated_at"`
}

type Prize struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Value       int64  `json:"value"`
	Rarity      int    `json:"rarity"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

type Ticket struct {
	ID                string `json:"id"`
	UserName          string `json:"user_name"`
	UserEmail         string `json:"user_email,omitempty"`
	PurchaseDate      string `json:"purchase_date,omitempty"`
	Status            string `json:"status"`
	DrawnNumbers      []int  `json:"drawn_numbers"`
	IsWinner          bool   `json:"is_winner"`
	Prize             *Prize `json:"prize,omitempty"`
	Amount            int64  `json:"amount"`
	PaymentExternalID int64  `json:"payment_external_id,omitempty"`
	CreatedAt         string `json:"created_at"`
}

type Winner struct {
	ID           string `json:"id"`
	TicketID     string `json:"ticket_id"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email,omitempty"`
	DrawnNumbers []int  `json:"drawn_numbers"`
	Prize        *Prize `json:"prize,omitempty"`
	PrizeDate    string `json:"prize_date"`
}

type Banner struct {
	URL       string `json:"url"`
	MobileURL string `json:"mobile_url,omitempty"`
}
