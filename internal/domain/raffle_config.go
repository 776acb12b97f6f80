package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rifa-premiada/backend/internal/domain/draw"
	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RaffleConfigDomain interface {
	Get(context.Context, *model.GetRaffleConfigRequest) (*model.GetRaffleConfigResponse, error)
	Update(context.Context, *model.UpdateRaffleConfigRequest) (*model.UpdateRaffleConfigResponse, error)
}

type raffleConfigDomain struct {
	raffleConfigRepo repository.RaffleConfigRepository
	configLoader     *raffleConfigLoader
}

func NewRaffleConfigDomain(
	raffleConfigRepo repository.RaffleConfigRepository,
	configLoader *raffleConfigLoader,
) *raffleConfigDomain {
	return &raffleConfigDomain{
		raffleConfigRepo: raffleConfigRepo,
		configLoader:     configLoader,
	}
}

func (d *raffleConfigDomain) Get(
	ctx context.Context, req *model.GetRaffleConfigRequest,
) (*model.GetRaffleConfigResponse, error) {
	config, err := d.raffleConfigRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found active raffle config")
		}

		xcontext.Logger(ctx).Errorf("Cannot get active raffle config: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetRaffleConfigResponse{Config: convertRaffleConfig(config)}, nil
}

func (d *raffleConfigDomain) Update(
	ctx context.Context, req *model.UpdateRaffleConfigRequest,
) (*model.UpdateRaffleConfigResponse, error) {
	if req.TicketPrice == nil || req.PrizeValue == nil || req.MaxNumber == nil ||
		req.WinningNumbers == nil || req.AutoDrawnNumbers == nil || req.WinningProbability == nil {
		return nil, errorx.New(errorx.BadRequest, "All fields are required")
	}

	if *req.TicketPrice < 0 || *req.PrizeValue < 0 {
		return nil, errorx.New(errorx.BadRequest, "Price and prize value must not be negative")
	}

	if *req.MaxNumber < 1 {
		return nil, errorx.New(errorx.BadRequest, "Max number must be at least 1")
	}

	if *req.AutoDrawnNumbers < 1 || *req.AutoDrawnNumbers > draw.MaxAutoDrawnNumbers {
		return nil, errorx.New(errorx.BadRequest,
			"Auto drawn numbers must be between 1 and %d", draw.MaxAutoDrawnNumbers)
	}

	if *req.WinningProbability < 0 || *req.WinningProbability > 100 {
		return nil, errorx.New(errorx.BadRequest, "Winning probability must be between 0 and 100")
	}

	numbers, err := draw.ParseWinningNumbers(*req.WinningNumbers, *req.MaxNumber)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Winning numbers must contain at least one number in [1, %d]", *req.MaxNumber)
	}
	winningNumbers := draw.FormatNumbers(numbers)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.RollbackDBTransaction(ctx)

	config, err := d.raffleConfigRepo.GetActive(ctx)
	switch {
	case err == nil:
		err = d.raffleConfigRepo.UpdateByID(ctx, config.ID, map[string]any{
			"ticket_price":        *req.TicketPrice,
			"prize_value":         *req.PrizeValue,
			"max_number":          *req.MaxNumber,
			"winning_numbers":     winningNumbers,
			"auto_drawn_numbers":  *req.AutoDrawnNumbers,
			"winning_probability": *req.WinningProbability,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update raffle config: %v", err)
			return nil, errorx.Unknown
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		config = &entity.RaffleConfig{
			Base:     entity.Base{ID: uuid.NewString()},
			IsActive: true,
		}
		config.TicketPrice = *req.TicketPrice
		config.PrizeValue = *req.PrizeValue
		config.MaxNumber = *req.MaxNumber
		config.WinningNumbers = winningNumbers
		config.AutoDrawnNumbers = *req.AutoDrawnNumbers
		config.WinningProbability = *req.WinningProbability

		if err := d.raffleConfigRepo.Create(ctx, config); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create raffle config: %v", err)
			return nil, errorx.Unknown
		}

	default:
		xcontext.Logger(ctx).Errorf("Cannot get active raffle config: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.raffleConfigRepo.GetActive(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated raffle config: %v", err)
		return nil, errorx.Unknown
	}

	if err := xcontext.CommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit raffle config: %v", err)
		return nil, errorx.Unknown
	}
	d.configLoader.Invalidate(ctx)

	return &model.UpdateRaffleConfigResponse{Config: convertRaffleConfig(updated)}, nil
}
