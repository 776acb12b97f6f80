package horsepay

import "context"

type IEndpoint interface {
	Authenticate(ctx context.Context) error
	CreateOrder(ctx context.Context, payerName string, amount float64, split []Split) (*Order, error)
	RequestWithdraw(ctx context.Context, amount float64, pixKey, pixType string) (*Withdraw, error)
	GetBalance(ctx context.Context) (*Balance, error)
	GetDepositDetails(ctx context.Context, id int64) (*OrderDetails, error)
	GetWithdrawDetails(ctx context.Context, id int64) (*OrderDetails, error)
	CheckMed(ctx context.Context, id int64) (*MedStatus, error)
}
