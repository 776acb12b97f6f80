package domain

import (
	"context"
	"database/sql"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/pkg/api/horsepay"
	"github.com/rifa-premiada/backend/pkg/enum"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	defaultRecentWinners = 3

	winnerMessage = "Parabéns, você ganhou! Entre em contato conosco para receber seu prêmio."
	loserMessage  = "Não foi dessa vez. Tente novamente!"
)

type TicketDomain interface {
	Buy(context.Context, *model.BuyTicketRequest) (*model.BuyTicketResponse, error)
	Get(context.Context, *model.GetTicketRequest) (*model.GetTicketResponse, error)
	GetRecentWinners(context.Context, *model.GetRecentWinnersRequest) (*model.GetRecentWinnersResponse, error)
	GetRaffleInfo(context.Context, *model.GetRaffleInfoRequest) (*model.GetRaffleInfoResponse, error)
	GetList(context.Context, *model.GetListTicketRequest) (*model.GetListTicketResponse, error)
	GetListWinner(context.Context, *model.GetListWinnerRequest) (*model.GetListWinnerResponse, error)
}

type ticketDomain struct {
	ticketRepo   repository.TicketRepository
	winnerRepo   repository.WinnerRepository
	configLoader *raffleConfigLoader
	drawer       *ticketDrawer
	pixEndpoint  horsepay.IEndpoint
}

func NewTicketDomain(
	ticketRepo repository.TicketRepository,
	winnerRepo repository.WinnerRepository,
	configLoader *raffleConfigLoader,
	drawer *ticketDrawer,
	pixEndpoint horsepay.IEndpoint,
) *ticketDomain {
	return &ticketDomain{
		ticketRepo:   ticketRepo,
		winnerRepo:   winnerRepo,
		configLoader: configLoader,
		drawer:       drawer,
		pixEndpoint:  pixEndpoint,
	}
}

func (d *ticketDomain) Buy(
	ctx context.Context, req *model.BuyTicketRequest,
) (*model.BuyTicketResponse, error) {
	req.UserName = strings.TrimSpace(req.UserName)
	req.UserEmail = strings.TrimSpace(req.UserEmail)

	if req.UserName == "" {
		return nil, errorx.New(errorx.BadRequest, "Name is required")
	}

	if req.UserEmail != "" {
		if _, err := mail.ParseAddress(req.UserEmail); err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid email")
		}
	}

	config, err := d.configLoader.Get(ctx)
	if err != nil {
		return nil, err
	}

	ticket := &entity.Ticket{
		Base:      entity.Base{ID: uuid.NewString()},
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Status:    entity.TicketPending,
		Amount:    config.TicketPrice,
	}

	if xcontext.Configs(ctx).Pix.Enabled {
		return d.buyWithPix(ctx, ticket)
	}

	return d.buyAndDraw(ctx, config, ticket)
}

func (d *ticketDomain) buyWithPix(
	ctx context.Context, ticket *entity.Ticket,
) (*model.BuyTicketResponse, error) {
	if err := d.ticketRepo.Create(ctx, ticket); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create ticket: %v", err)
		return nil, errorx.Unknown
	}

	order, err := d.pixEndpoint.CreateOrder(
		ctx, ticket.UserName, horsepay.CentsToAmount(ticket.Amount), nil)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create pix order of ticket %s: %v", ticket.ID, err)

		err := d.ticketRepo.UpdateByID(ctx, ticket.ID, map[string]any{"status": entity.TicketFailed})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot mark ticket %s as failed: %v", ticket.ID, err)
		}

		return nil, errorx.New(errorx.PaymentFailed, "Cannot create the payment")
	}

	err = d.ticketRepo.UpdateByID(ctx, ticket.ID, map[string]any{
		"payment_external_id": order.ExternalID,
		"payment_qr_code":     order.Payment,
		"payment_copy_paste":  order.CopyPaste,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save the pix order of ticket %s: %v", ticket.ID, err)
		return nil, errorx.Unknown
	}

	return &model.BuyTicketResponse{
		TicketID: ticket.ID,
		Status:   string(entity.TicketPending),
		Payment: &model.Payment{
			ExternalID: order.ExternalID,
			QRCode:     order.Payment,
			CopyPaste:  order.CopyPaste,
			Amount:     ticket.Amount,
		},
	}, nil
}

func (d *ticketDomain) buyAndDraw(
	ctx context.Context, config *entity.RaffleConfig, ticket *entity.Ticket,
) (*model.BuyTicketResponse, error) {
	now := time.Now()
	ticket.Status = entity.TicketPaid
	ticket.PurchaseDate = sql.NullTime{Valid: true, Time: now}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.RollbackDBTransaction(ctx)

	if err := d.ticketRepo.Create(ctx, ticket); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create ticket: %v", err)
		return nil, errorx.Unknown
	}

	outcome, err := d.drawer.Draw(ctx, config, ticket, now)
	if err != nil {
		return nil, err
	}

	if err := xcontext.CommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit the draw of ticket %s: %v", ticket.ID, err)
		return nil, errorx.Unknown
	}
	d.drawer.Notify(ctx, ticket, outcome)

	resp := &model.BuyTicketResponse{
		TicketID:     ticket.ID,
		Status:       string(ticket.Status),
		IsWinner:     outcome.result.IsWinner,
		DrawnNumbers: outcome.result.DrawnNumbers,
		Message:      loserMessage,
	}

	if outcome.result.IsWinner {
		resp.Message = winnerMessage
		resp.Prize = convertOptionalPrize(outcome.prize)
	}

	return resp, nil
}

func (d *ticketDomain) Get(
	ctx context.Context, req *model.GetTicketRequest,
) (*model.GetTicketResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Ticket id is required")
	}

	ticket, err := d.ticketRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found ticket")
		}

		xcontext.Logger(ctx).Errorf("Cannot get ticket: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetTicketResponse{Ticket: convertTicket(ticket, false)}, nil
}

func (d *ticketDomain) GetRecentWinners(
	ctx context.Context, req *model.GetRecentWinnersRequest,
) (*model.GetRecentWinnersResponse, error) {
	if req.Limit == 0 {
		req.Limit = defaultRecentWinners
	}

	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	winners, err := d.winnerRepo.GetRecent(ctx, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get recent winners: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.RecentWinner{}
	for _, w := range winners {
		result = append(result, model.RecentWinner{
			UserName:  w.UserName,
			PrizeName: w.Prize.Name,
			PrizeDate: w.PrizeDate.Format(time.RFC3339),
		})
	}

	return &model.GetRecentWinnersResponse{Winners: result}, nil
}

func (d *ticketDomain) GetRaffleInfo(
	ctx context.Context, req *model.GetRaffleInfoRequest,
) (*model.GetRaffleInfoResponse, error) {
	config, err := d.configLoader.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &model.GetRaffleInfoResponse{
		TicketPrice:      config.TicketPrice,
		PrizeValue:       config.PrizeValue,
		MaxNumber:        config.MaxNumber,
		AutoDrawnNumbers: config.AutoDrawnNumbers,
		PixEnabled:       xcontext.Configs(ctx).Pix.Enabled,
	}, nil
}

func (d *ticketDomain) GetList(
	ctx context.Context, req *model.GetListTicketRequest,
) (*model.GetListTicketResponse, error) {
	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	if req.Offset < 0 {
		return nil, errorx.New(errorx.BadRequest, "Offset must be positive")
	}

	filter := repository.TicketFilter{
		IsWinner: req.IsWinner,
		Offset:   req.Offset,
		Limit:    limit,
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.TicketStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid ticket status %s", req.Status)
		}
		filter.Status = status
	}

	tickets, err := d.ticketRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of tickets: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.ticketRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count tickets: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Ticket{}
	for _, t := range tickets {
		result = append(result, convertTicket(&t, true))
	}

	return &model.GetListTicketResponse{Tickets: result, Total: total}, nil
}

func (d *ticketDomain) GetListWinner(
	ctx context.Context, req *model.GetListWinnerRequest,
) (*model.GetListWinnerResponse, error) {
	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	if req.Offset < 0 {
		return nil, errorx.New(errorx.BadRequest, "Offset must be positive")
	}

	winners, err := d.winnerRepo.GetList(ctx, req.Offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of winners: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.winnerRepo.Count(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count winners: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Winner{}
	for _, w := range winners {
		result = append(result, convertWinner(&w))
	}

	return &model.GetListWinnerResponse{Winners: result, Total: total}, nil
}
