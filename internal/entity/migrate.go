package entity

import (
	"context"

	"github.com/rifa-premiada/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Prize{},
		&RaffleConfig{},
		&Ticket{},
		&Winner{},
		&Banner{},
		&Migration{},
	)
}
