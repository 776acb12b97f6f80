package migration

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"gorm.io/gorm"
)

var seedPrizes = []entity.Prize{
	{
		Name:        "Smartphone Top de Linha",
		Description: "Smartphone premium da última geração",
		Value:       300000,
		Rarity:      5,
	},
	{
		Name:        "Notebook Gamer",
		Description: "Notebook gamer com configurações avançadas",
		Value:       500000,
		Rarity:      5,
	},
	{
		Name:        "Fone de Ouvido Bluetooth",
		Description: "Fone de ouvido sem fio de alta qualidade",
		Value:       50000,
		Rarity:      3,
	},
	{
		Name:        "Smartwatch",
		Description: "Relógio inteligente com múltiplas funções",
		Value:       80000,
		Rarity:      4,
	},
	{
		Name:        "Vale Compras R$ 100",
		Description: "Vale compras para usar em nossa loja",
		Value:       10000,
		Rarity:      1,
	},
}

// migrateSeed seeds the first raffle config and the default prizes. Existing
// rows are kept.
func migrateSeed(ctx context.Context) error {
	db := xcontext.DB(ctx)

	var config entity.RaffleConfig
	err := db.Where("is_active=?", true).Take(&config).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		config = entity.RaffleConfig{
			Base:               entity.Base{ID: uuid.NewString()},
			TicketPrice:        1000,
			PrizeValue:         10000,
			MaxNumber:          10000,
			WinningNumbers:     "100,88,14",
			AutoDrawnNumbers:   1,
			WinningProbability: 100,
			IsActive:           true,
		}
		if err := db.Create(&config).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	}

	for _, seed := range seedPrizes {
		var count int64
		if err := db.Model(&entity.Prize{}).Where("name=?", seed.Name).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			continue
		}

		prize := seed
		prize.ID = uuid.NewString()
		prize.IsActive = true
		if err := db.Create(&prize).Error; err != nil {
			return err
		}
	}

	return nil
}
