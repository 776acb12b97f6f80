package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rifa-premiada/backend/internal/domain/draw"
	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/pkg/email"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"github.com/rifa-premiada/backend/pkg/xredis"
	"gorm.io/gorm"
)

const (
	activeConfigCacheKey = "raffle:active_config"
	activeConfigCacheTTL = 5 * time.Minute
)

// raffleConfigLoader reads the active raffle config through the redis cache.
type raffleConfigLoader struct {
	raffleConfigRepo repository.RaffleConfigRepository
	redisClient      xredis.Client
}

func NewRaffleConfigLoader(
	raffleConfigRepo repository.RaffleConfigRepository,
	redisClient xredis.Client,
) *raffleConfigLoader {
	return &raffleConfigLoader{
		raffleConfigRepo: raffleConfigRepo,
		redisClient:      redisClient,
	}
}

func (l *raffleConfigLoader) Get(ctx context.Context) (*entity.RaffleConfig, error) {
	var cached entity.RaffleConfig
	err := l.redisClient.GetObj(ctx, activeConfigCacheKey, &cached)
	if err == nil {
		return &cached, nil
	}

	if !xredis.IsNil(err) {
		xcontext.Logger(ctx).Warnf("Cannot get the cached raffle config: %v", err)
	}

	config, err := l.raffleConfigRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found active raffle config")
		}

		xcontext.Logger(ctx).Errorf("Cannot get active raffle config: %v", err)
		return nil, errorx.Unknown
	}

	if err := l.redisClient.SetObj(ctx, activeConfigCacheKey, config, activeConfigCacheTTL); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache the raffle config: %v", err)
	}

	return config, nil
}

func (l *raffleConfigLoader) Invalidate(ctx context.Context) {
	if err := l.redisClient.Del(ctx, activeConfigCacheKey); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate the cached raffle config: %v", err)
	}
}

func toDrawConfig(config *entity.RaffleConfig) (draw.Config, error) {
	numbers, err := draw.ParseWinningNumbers(config.WinningNumbers, config.MaxNumber)
	if err != nil {
		return draw.Config{}, err
	}

	cfg := draw.Config{
		MaxNumber:          config.MaxNumber,
		WinningNumbers:     numbers,
		AutoDrawnNumbers:   config.AutoDrawnNumbers,
		WinningProbability: draw.ClampProbability(config.WinningProbability),
	}

	return cfg, cfg.Validate()
}

type drawOutcome struct {
	result draw.Result
	prize  *entity.Prize
	winner *entity.Winner
}

// ticketDrawer draws paid tickets and records the outcome.
type ticketDrawer struct {
	ticketRepo  repository.TicketRepository
	prizeRepo   repository.PrizeRepository
	winnerRepo  repository.WinnerRepository
	emailSender email.Sender
	rng         draw.RNG
}

func NewTicketDrawer(
	ticketRepo repository.TicketRepository,
	prizeRepo repository.PrizeRepository,
	winnerRepo repository.WinnerRepository,
	emailSender email.Sender,
	rng draw.RNG,
) *ticketDrawer {
	return &ticketDrawer{
		ticketRepo:  ticketRepo,
		prizeRepo:   prizeRepo,
		winnerRepo:  winnerRepo,
		emailSender: emailSender,
		rng:         rng,
	}
}

// Draw must run in the same transaction as the one marking the ticket as
// paid, so a ticket never gets two winner records.
func (d *ticketDrawer) Draw(
	ctx context.Context, config *entity.RaffleConfig, ticket *entity.Ticket, drawnAt time.Time,
) (*drawOutcome, error) {
	drawCfg, err := toDrawConfig(config)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid raffle config %s: %v", config.ID, err)
		return nil, errorx.Unknown
	}

	outcome := &drawOutcome{result: draw.Draw(drawCfg, d.rng)}
	drawnNumbers := draw.FormatNumbers(outcome.result.DrawnNumbers)

	update := map[string]any{
		"drawn_numbers": drawnNumbers,
		"is_winner":     outcome.result.IsWinner,
	}

	if outcome.result.IsWinner {
		prizes, err := d.prizeRepo.GetList(ctx, repository.PrizeFilter{OnlyActive: true})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get active prizes: %v", err)
			return nil, errorx.Unknown
		}

		if prize, ok := draw.SelectPrize(d.rng, prizes); ok {
			outcome.prize = &prize
			update["prize_id"] = prize.ID
		} else {
			xcontext.Logger(ctx).Warnf("Ticket %s won but there is no active prize", ticket.ID)
		}

		outcome.winner = &entity.Winner{
			Base:         entity.Base{ID: uuid.NewString()},
			TicketID:     ticket.ID,
			UserName:     ticket.UserName,
			UserEmail:    ticket.UserEmail,
			DrawnNumbers: drawnNumbers,
			PrizeDate:    drawnAt,
		}

		if outcome.prize != nil {
			outcome.winner.PrizeID = sql.NullString{Valid: true, String: outcome.prize.ID}
		}
	}

	if err := d.ticketRepo.UpdateByID(ctx, ticket.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update the drawn ticket: %v", err)
		return nil, errorx.Unknown
	}

	if outcome.winner != nil {
		if err := d.winnerRepo.Create(ctx, outcome.winner); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create winner: %v", err)
			return nil, errorx.Unknown
		}
	}

	ticket.DrawnNumbers = drawnNumbers
	ticket.IsWinner = outcome.result.IsWinner
	if outcome.prize != nil {
		ticket.PrizeID = sql.NullString{Valid: true, String: outcome.prize.ID}
		ticket.Prize = *outcome.prize
	}

	return outcome, nil
}

// Notify emails the winner. It must be called after the transaction is
// committed. Failures are only logged.
func (d *ticketDrawer) Notify(ctx context.Context, ticket *entity.Ticket, outcome *drawOutcome) {
	if outcome == nil || !outcome.result.IsWinner || ticket.UserEmail == "" {
		return
	}

	prizeName := "um prêmio surpresa"
	if outcome.prize != nil {
		prizeName = outcome.prize.Name
	}

	err := d.emailSender.SendWinner(ctx, email.WinnerMail{
		UserName:  ticket.UserName,
		UserEmail: ticket.UserEmail,
		PrizeName: prizeName,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot send the winner email of ticket %s: %v", ticket.ID, err)
	}
}

func checkLimit(ctx context.Context, limit int) (int, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if limit == 0 {
		limit = apiCfg.DefaultLimit
	}

	if limit < 0 {
		return 0, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if limit > apiCfg.MaxLimit {
		return 0, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	return limit, nil
}
