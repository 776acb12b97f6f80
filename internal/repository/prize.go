package repository

import (
	"context"

	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PrizeFilter struct {
	OnlyActive bool
}

type PrizeRepository interface {
	Create(ctx context.Context, data *entity.Prize) error
	GetByID(ctx context.Context, id string) (*entity.Prize, error)
	GetByName(ctx context.Context, name string) (*entity.Prize, error)
	GetList(ctx context.Context, filter PrizeFilter) ([]entity.Prize, error)
	UpdateByID(ctx context.Context, id string, data map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

type prizeRepository struct{}

func NewPrizeRepository() *prizeRepository {
	return &prizeRepository{}
}

func (r *prizeRepository) Create(ctx context.Context, data *entity.Prize) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *prizeRepository) GetByID(ctx context.Context, id string) (*entity.Prize, error) {
	var result entity.Prize
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *prizeRepository) GetByName(ctx context.Context, name string) (*entity.Prize, error) {
	var result entity.Prize
	if err := xcontext.DB(ctx).Take(&result, "name=?", name).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *prizeRepository) GetList(ctx context.Context, filter PrizeFilter) ([]entity.Prize, error) {
	tx := xcontext.DB(ctx).Model(&entity.Prize{})
	if filter.OnlyActive {
		tx = tx.Where("is_active=?", true)
	}

	var result []entity.Prize
	if err := tx.Order("rarity DESC, value DESC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *prizeRepository) UpdateByID(ctx context.Context, id string, data map[string]any) error {
	tx := xcontext.DB(ctx).Model(&entity.Prize{}).Where("id=?", id).Updates(data)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *prizeRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Prize{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
