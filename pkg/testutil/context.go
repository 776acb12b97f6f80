package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rifa-premiada/backend/config"
	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/pkg/authenticator"
	"github.com/rifa-premiada/backend/pkg/logger"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MockContext returns a context holding test configs, a silent logger and a
// fresh in-memory database with all tables migrated.
func MockContext() context.Context {
	// Each connection of a plain :memory: database sees its own empty
	// database, so a named shared cache is needed for transactions.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	cfg := config.Default()
	cfg.ApiServer.MaxLimit = 50
	cfg.ApiServer.DefaultLimit = 10
	cfg.Auth.TokenSecret = "secret"
	cfg.Auth.AccessToken.Expiration = time.Minute
	cfg.Auth.AdminUsername = "ADMIN"
	cfg.Auth.AdminPassword = "ADMIN123"
	cfg.Pix.WebhookToken = "webhook-token"

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewNopLogger())
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}

func NewMockContextWithUserID(ctx context.Context, userID string) context.Context {
	return xcontext.WithRequestUserID(ctx, userID)
}

// WithConfigs lets a test change the configs of ctx.
func WithConfigs(ctx context.Context, fn func(cfg *config.Configs)) context.Context {
	cfg := xcontext.Configs(ctx)
	fn(&cfg)
	return xcontext.WithConfigs(ctx, cfg)
}
