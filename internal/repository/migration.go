package repository

import (
	"context"

	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type MigrationRepository interface {
	Exists(ctx context.Context, version string) (bool, error)
	Save(ctx context.Context, version string) error
}

type migrationRepository struct{}

func NewMigrationRepository() *migrationRepository {
	return &migrationRepository{}
}

func (r *migrationRepository) Exists(ctx context.Context, version string) (bool, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Migration{}).Where("version=?", version).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *migrationRepository) Save(ctx context.Context, version string) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entity.Migration{Version: version}).Error
}
