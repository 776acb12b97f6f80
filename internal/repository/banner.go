package repository

import (
	"context"

	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/pkg/xcontext"
)

type BannerRepository interface {
	Create(ctx context.Context, data *entity.Banner) error
	GetLast(ctx context.Context) (*entity.Banner, error)
}

type bannerRepository struct{}

func NewBannerRepository() *bannerRepository {
	return &bannerRepository{}
}

func (r *bannerRepository) Create(ctx context.Context, data *entity.Banner) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *bannerRepository) GetLast(ctx context.Context) (*entity.Banner, error) {
	var result entity.Banner
	if err := xcontext.DB(ctx).Order("created_at DESC").Take(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
