package horsepay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/rifa-premiada/backend/config"
	"github.com/rifa-premiada/backend/pkg/api"
	"github.com/rifa-premiada/backend/pkg/xcontext"
)

var ErrUnauthorized = errors.New("horsepay rejected the credentials")

type Endpoint struct {
	ClientKey    string
	ClientSecret string
	CallbackURL  string

	apiGenerator api.Generator

	mu          sync.Mutex
	accessToken string
}

func New(cfg config.PixConfigs) *Endpoint {
	return &Endpoint{
		ClientKey:    cfg.ClientKey,
		ClientSecret: cfg.ClientSecret,
		CallbackURL:  cfg.CallbackURL,
		apiGenerator: api.NewGenerator(cfg.Endpoint),
	}
}

func (e *Endpoint) Authenticate(ctx context.Context) error {
	resp, err := e.apiGenerator.New("/auth/token").
		Body(api.JSON{
			"client_key":    e.ClientKey,
			"client_secret": e.ClientSecret,
		}).
		POST(ctx)
	if err != nil {
		return err
	}

	if resp.Code == http.StatusUnauthorized || resp.Code == http.StatusForbidden {
		return ErrUnauthorized
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("cannot authenticate, status %d", resp.Code)
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return errors.New("invalid body type")
	}

	token, err := api.Field[string](body, "access_token")
	if err != nil {
		return err
	}

	if token == "" {
		return errors.New("empty access token")
	}

	e.mu.Lock()
	e.accessToken = token
	e.mu.Unlock()

	return nil
}

func (e *Endpoint) CreateOrder(
	ctx context.Context, payerName string, amount float64, split []Split,
) (*Order, error) {
	body := api.JSON{
		"payer_name":   payerName,
		"amount":       amount,
		"callback_url": e.CallbackURL,
	}
	if len(split) > 0 {
		body["split"] = split
	}

	var order Order
	err := e.authorized(ctx, &order, func(token string) (*api.Response, error) {
		return e.apiGenerator.New("/transaction/neworder").
			Body(body).
			POST(ctx, api.Bearer(token))
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (e *Endpoint) RequestWithdraw(
	ctx context.Context, amount float64, pixKey, pixType string,
) (*Withdraw, error) {
	var withdraw Withdraw
	err := e.authorized(ctx, &withdraw, func(token string) (*api.Response, error) {
		return e.apiGenerator.New("/transaction/withdraw").
			Body(api.JSON{
				"amount":       amount,
				"pix_key":      pixKey,
				"pix_type":     pixType,
				"callback_url": e.CallbackURL,
			}).
			POST(ctx, api.Bearer(token))
	})
	if err != nil {
		return nil, err
	}

	return &withdraw, nil
}

func (e *Endpoint) GetBalance(ctx context.Context) (*Balance, error) {
	var balance Balance
	err := e.authorized(ctx, &balance, func(token string) (*api.Response, error) {
		return e.apiGenerator.New("/user/balance").GET(ctx, api.Bearer(token))
	})
	if err != nil {
		return nil, err
	}

	return &balance, nil
}

func (e *Endpoint) GetDepositDetails(ctx context.Context, id int64) (*OrderDetails, error) {
	var details OrderDetails
	err := e.authorized(ctx, &details, func(token string) (*api.Response, error) {
		return e.apiGenerator.New("/api/orders/deposit/%d", id).GET(ctx, api.Bearer(token))
	})
	if err != nil {
		return nil, err
	}

	return &details, nil
}

func (e *Endpoint) GetWithdrawDetails(ctx context.Context, id int64) (*OrderDetails, error) {
	var details OrderDetails
	err := e.authorized(ctx, &details, func(token string) (*api.Response, error) {
		return e.apiGenerator.New("/api/orders/withdraw/%d", id).GET(ctx, api.Bearer(token))
	})
	if err != nil {
		return nil, err
	}

	return &details, nil
}

func (e *Endpoint) CheckMed(ctx context.Context, id int64) (*MedStatus, error) {
	var status MedStatus
	err := e.authorized(ctx, &status, func(token string) (*api.Response, error) {
		return e.apiGenerator.New("/api/orders/checkmed/%d", id).GET(ctx, api.Bearer(token))
	})
	if err != nil {
		return nil, err
	}

	return &status, nil
}

func (e *Endpoint) token(ctx context.Context) (string, error) {
	e.mu.Lock()
	token := e.accessToken
	e.mu.Unlock()

	if token != "" {
		return token, nil
	}

	if err := e.Authenticate(ctx); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.accessToken, nil
}

func (e *Endpoint) resetToken() {
	e.mu.Lock()
	e.accessToken = ""
	e.mu.Unlock()
}

// authorized calls fn with a valid access token and decodes the response
// into out. An expired token is refreshed once.
func (e *Endpoint) authorized(
	ctx context.Context, out any, fn func(token string) (*api.Response, error),
) error {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := e.token(ctx)
		if err != nil {
			return err
		}

		resp, err := fn(token)
		if err != nil {
			return err
		}

		if resp.Code == http.StatusUnauthorized && attempt == 0 {
			xcontext.Logger(ctx).Debugf("Horsepay access token expired, authenticate again")
			e.resetToken()
			continue
		}

		if !resp.IsSuccess() {
			return fmt.Errorf("horsepay responded with status %d: %s", resp.Code, string(resp.RawBody))
		}

		return resp.Decode(out)
	}

	return ErrUnauthorized
}
