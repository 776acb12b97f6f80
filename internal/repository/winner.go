package repository

import (
	"context"

	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/pkg/xcontext"
)

type WinnerRepository interface {
	Create(ctx context.Context, data *entity.Winner) error
	GetByTicketID(ctx context.Context, ticketID string) (*entity.Winner, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Winner, error)
	Count(ctx context.Context) (int64, error)
	GetRecent(ctx context.Context, n int) ([]entity.Winner, error)
}

type winnerRepository struct{}

func NewWinnerRepository() *winnerRepository {
	return &winnerRepository{}
}

func (r *winnerRepository) Create(ctx context.Context, data *entity.Winner) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *winnerRepository) GetByTicketID(ctx context.Context, ticketID string) (*entity.Winner, error) {
	var result entity.Winner
	if err := xcontext.DB(ctx).Preload("Prize", unscoped).Take(&result, "ticket_id=?", ticketID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *winnerRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Winner, error) {
	var result []entity.Winner
	err := xcontext.DB(ctx).
		Preload("Prize", unscoped).
		Order("prize_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *winnerRepository) Count(ctx context.Context) (int64, error) {
	var result int64
	if err := xcontext.DB(ctx).Model(&entity.Winner{}).Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}

func (r *winnerRepository) GetRecent(ctx context.Context, n int) ([]entity.Winner, error) {
	return r.GetList(ctx, 0, n)
}
