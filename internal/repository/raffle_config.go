package repository

import (
	"context"

	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/pkg/xcontext"
)

type RaffleConfigRepository interface {
	Create(ctx context.Context, data *entity.RaffleConfig) error
	GetActive(ctx context.Context) (*entity.RaffleConfig, error)
	UpdateByID(ctx context.Context, id string, data map[string]any) error
}

type raffleConfigRepository struct{}

func NewRaffleConfigRepository() *raffleConfigRepository {
	return &raffleConfigRepository{}
}

func (r *raffleConfigRepository) Create(ctx context.Context, data *entity.RaffleConfig) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *raffleConfigRepository) GetActive(ctx context.Context) (*entity.RaffleConfig, error) {
	var result entity.RaffleConfig
	err := xcontext.DB(ctx).
		Where("is_active=?", true).
		Order("updated_at DESC").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateByID takes a map so zero values like a probability of 0 are written.
func (r *raffleConfigRepository) UpdateByID(ctx context.Context, id string, data map[string]any) error {
	return xcontext.DB(ctx).Model(&entity.RaffleConfig{}).Where("id=?", id).Updates(data).Error
}
