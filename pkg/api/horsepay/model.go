package horsepay

import (
	"errors"
	"math"

	"github.com/rifa-premiada/backend/pkg/enum"
)

type DepositStatus int

var (
	DepositPending = enum.New(DepositStatus(0), "pending")
	DepositPaid    = enum.New(DepositStatus(1), "paid")
	DepositFailed  = enum.New(DepositStatus(2), "failed")
)

func (s DepositStatus) String() string {
	return enum.ToString(s)
}

type Split struct {
	User    string `json:"user"`
	Percent int    `json:"percent"`
}

type Order struct {
	CopyPaste  string `json:"copy_past"`
	ExternalID int64  `json:"external_id"`
	PayerName  string `json:"payer_name"`
	// Payment is the base64 encoded QR code image.
	Payment string `json:"payment"`
	Status  int    `json:"status"`
}

type Withdraw struct {
	Message    string  `json:"message"`
	ExternalID int64   `json:"external_id"`
	EndToEndID string  `json:"end_to_end_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

type Balance struct {
	Balance float64 `json:"balance"`
}

type OrderDetails struct {
	ID        int64   `json:"id"`
	Value     float64 `json:"value"`
	Tax       float64 `json:"tax"`
	EndToEnd  string  `json:"end_to_end"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type MedStatus struct {
	ExternalID  string `json:"external_id"`
	Status      string `json:"status"`
	Defense     bool   `json:"defense"`
	DefenseText string `json:"defense_text"`
}

// DepositCallback is the body the gateway posts to the callback url when a
// deposit changes state.
type DepositCallback struct {
	ExternalID int64         `json:"external_id"`
	Status     DepositStatus `json:"status"`
	Amount     float64       `json:"amount"`
}

func ValidateCallbackDeposit(cb DepositCallback) error {
	if cb.ExternalID <= 0 {
		return errors.New("external_id must be positive")
	}

	if enum.ToString(cb.Status) == "" {
		return errors.New("unknown deposit status")
	}

	if cb.Amount < 0 || math.IsNaN(cb.Amount) || math.IsInf(cb.Amount, 0) {
		return errors.New("invalid amount")
	}

	return nil
}

// CentsToAmount converts an amount in cents to the decimal unit the gateway
// expects.
func CentsToAmount(cents int64) float64 {
	return float64(cents) / 100
}

func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
