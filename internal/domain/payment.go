package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/pkg/api/horsepay"
	"github.com/rifa-premiada/backend/pkg/crypto"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"github.com/rifa-premiada/backend/pkg/xredis"
	"gorm.io/gorm"
)

const (
	pixCallbackLockTTL = 30 * time.Second

	webhookStatusDeleted = "deleted"
)

func pixCallbackLockKey(externalID int64) string {
	return fmt.Sprintf("pix:callback:%d", externalID)
}

type PaymentDomain interface {
	HandleWebhook(context.Context, *model.PixWebhookRequest) (*model.PixWebhookResponse, error)
	GetBalance(context.Context, *model.GetPixBalanceRequest) (*model.GetPixBalanceResponse, error)
	GetDeposit(context.Context, *model.GetPixDepositRequest) (*model.GetPixDepositResponse, error)
	Withdraw(context.Context, *model.PixWithdrawRequest) (*model.PixWithdrawResponse, error)
}

type paymentDomain struct {
	ticketRepo   repository.TicketRepository
	configLoader *raffleConfigLoader
	drawer       *ticketDrawer
	pixEndpoint  horsepay.IEndpoint
	redisClient  xredis.Client
}

func NewPaymentDomain(
	ticketRepo repository.TicketRepository,
	configLoader *raffleConfigLoader,
	drawer *ticketDrawer,
	pixEndpoint horsepay.IEndpoint,
	redisClient xredis.Client,
) *paymentDomain {
	return &paymentDomain{
		ticketRepo:   ticketRepo,
		configLoader: configLoader,
		drawer:       drawer,
		pixEndpoint:  pixEndpoint,
		redisClient:  redisClient,
	}
}

func (d *paymentDomain) HandleWebhook(
	ctx context.Context, req *model.PixWebhookRequest,
) (*model.PixWebhookResponse, error) {
	if err := d.verifyWebhookToken(ctx); err != nil {
		return nil, err
	}

	callback := horsepay.DepositCallback{
		ExternalID: req.ExternalID,
		Status:     horsepay.DepositStatus(req.Status),
		Amount:     req.Amount,
	}
	if err := horsepay.ValidateCallbackDeposit(callback); err != nil {
		xcontext.Logger(ctx).Debugf("Invalid callback data: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid callback data")
	}

	lockKey := pixCallbackLockKey(callback.ExternalID)
	locked, err := d.redisClient.SetNX(ctx, lockKey, "1", pixCallbackLockTTL)
	if err != nil {
		// The conditional update below still protects the ticket.
		xcontext.Logger(ctx).Warnf("Cannot lock the pix callback %d: %v", callback.ExternalID, err)
		locked = true
	} else if !locked {
		return nil, errorx.New(errorx.TooManyRequests, "Callback is being processed")
	} else {
		defer func() {
			if err := d.redisClient.Del(ctx, lockKey); err != nil {
				xcontext.Logger(ctx).Warnf("Cannot unlock the pix callback %d: %v", callback.ExternalID, err)
			}
		}()
	}

	ticket, err := d.ticketRepo.GetByPaymentExternalID(ctx, callback.ExternalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found ticket")
		}

		xcontext.Logger(ctx).Errorf("Cannot get ticket by payment: %v", err)
		return nil, errorx.Unknown
	}

	switch callback.Status {
	case horsepay.DepositPaid:
		return d.confirmPayment(ctx, ticket, callback)
	case horsepay.DepositFailed:
		return d.cancelPayment(ctx, ticket)
	default:
		return acknowledge(ticket), nil
	}
}

func (d *paymentDomain) confirmPayment(
	ctx context.Context, ticket *entity.Ticket, callback horsepay.DepositCallback,
) (*model.PixWebhookResponse, error) {
	if ticket.Status != entity.TicketPending {
		xcontext.Logger(ctx).Infof("Ticket %s is already %s, ignore the callback", ticket.ID, ticket.Status)
		return acknowledge(ticket), nil
	}

	if paid := horsepay.AmountToCents(callback.Amount); paid < ticket.Amount {
		xcontext.Logger(ctx).Warnf("Ticket %s is paid %d cents, less than its price %d cents",
			ticket.ID, paid, ticket.Amount)
	}

	config, err := d.configLoader.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.RollbackDBTransaction(ctx)

	if err := d.ticketRepo.MarkPaid(ctx, ticket.ID, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Infof("Ticket %s was processed by another callback", ticket.ID)
			return acknowledge(ticket), nil
		}

		xcontext.Logger(ctx).Errorf("Cannot mark ticket as paid: %v", err)
		return nil, errorx.Unknown
	}

	ticket.Status = entity.TicketPaid
	outcome, err := d.drawer.Draw(ctx, config, ticket, now)
	if err != nil {
		return nil, err
	}

	if err := xcontext.CommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit the draw of ticket %s: %v", ticket.ID, err)
		return nil, errorx.Unknown
	}
	d.drawer.Notify(ctx, ticket, outcome)

	return acknowledge(ticket), nil
}

func (d *paymentDomain) cancelPayment(
	ctx context.Context, ticket *entity.Ticket,
) (*model.PixWebhookResponse, error) {
	if ticket.Status != entity.TicketPending {
		return acknowledge(ticket), nil
	}

	if err := d.ticketRepo.DeletePending(ctx, ticket.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return acknowledge(ticket), nil
		}

		xcontext.Logger(ctx).Errorf("Cannot delete ticket: %v", err)
		return nil, errorx.Unknown
	}

	return &model.PixWebhookResponse{TicketID: ticket.ID, Status: webhookStatusDeleted}, nil
}

func (d *paymentDomain) verifyWebhookToken(ctx context.Context) error {
	expected := xcontext.Configs(ctx).Pix.WebhookToken
	if expected == "" {
		return nil
	}

	token := ""
	if req := xcontext.HTTPRequest(ctx); req != nil {
		token = req.URL.Query().Get("token")
	}

	if !crypto.SecureEqual(expected, token) {
		return errorx.New(errorx.Unauthenticated, "Invalid webhook token")
	}

	return nil
}

func acknowledge(ticket *entity.Ticket) *model.PixWebhookResponse {
	return &model.PixWebhookResponse{
		TicketID: ticket.ID,
		Status:   string(ticket.Status),
		IsWinner: ticket.IsWinner,
	}
}

func (d *paymentDomain) GetBalance(
	ctx context.Context, req *model.GetPixBalanceRequest,
) (*model.GetPixBalanceResponse, error) {
	balance, err := d.pixEndpoint.GetBalance(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pix balance: %v", err)
		return nil, errorx.New(errorx.PaymentFailed, "Cannot get the balance")
	}

	return &model.GetPixBalanceResponse{Balance: balance.Balance}, nil
}

func (d *paymentDomain) GetDeposit(
	ctx context.Context, req *model.GetPixDepositRequest,
) (*model.GetPixDepositResponse, error) {
	if req.ID <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid deposit id")
	}

	details, err := d.pixEndpoint.GetDepositDetails(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pix deposit %d: %v", req.ID, err)
		return nil, errorx.New(errorx.PaymentFailed, "Cannot get the deposit")
	}

	return &model.GetPixDepositResponse{
		ID:        details.ID,
		Value:     details.Value,
		Tax:       details.Tax,
		EndToEnd:  details.EndToEnd,
		Status:    details.Status,
		CreatedAt: details.CreatedAt,
	}, nil
}

func (d *paymentDomain) Withdraw(
	ctx context.Context, req *model.PixWithdrawRequest,
) (*model.PixWithdrawResponse, error) {
	if req.Amount <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Amount must be positive")
	}

	if req.PixKey == "" || req.PixType == "" {
		return nil, errorx.New(errorx.BadRequest, "Pix key and pix type are required")
	}

	withdraw, err := d.pixEndpoint.RequestWithdraw(ctx, req.Amount, req.PixKey, req.PixType)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot request pix withdraw: %v", err)
		return nil, errorx.New(errorx.PaymentFailed, "Cannot request the withdraw")
	}

	return &model.PixWithdrawResponse{
		ExternalID: withdraw.ExternalID,
		EndToEndID: withdraw.EndToEndID,
		Amount:     withdraw.Amount,
		Status:     withdraw.Status,
		Message:    withdraw.Message,
	}, nil
}
