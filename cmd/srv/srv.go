package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rifa-premiada/backend/config"
	"github.com/rifa-premiada/backend/internal/domain"
	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/pkg/api/horsepay"
	"github.com/rifa-premiada/backend/pkg/crypto"
	"github.com/rifa-premiada/backend/pkg/email"
	"github.com/rifa-premiada/backend/pkg/logger"
	"github.com/rifa-premiada/backend/pkg/router"
	"github.com/rifa-premiada/backend/pkg/storage"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"github.com/rifa-premiada/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger

	db          *gorm.DB
	redisClient xredis.Client
	storage     storage.Storage
	emailSender email.Sender
	pixEndpoint horsepay.IEndpoint

	raffleConfigRepo repository.RaffleConfigRepository
	ticketRepo       repository.TicketRepository
	prizeRepo        repository.PrizeRepository
	winnerRepo       repository.WinnerRepository
	bannerRepo       repository.BannerRepository
	migrationRepo    repository.MigrationRepository

	ticketDomain       domain.TicketDomain
	paymentDomain      domain.PaymentDomain
	raffleConfigDomain domain.RaffleConfigDomain
	prizeDomain        domain.PrizeDomain
	authDomain         domain.AuthDomain
	bannerDomain       domain.BannerDomain
	statisticDomain    domain.StatisticDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), os.Getenv)
	if err != nil {
		return err
	}

	s.configs = &cfg
	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
	return nil
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(s.configs.Log.Level, s.configs.Log.Encoding)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) newDatabase() *gorm.DB {
	var dialector gorm.Dialector
	switch s.configs.Database.Type {
	case "mysql":
		dialector = mysql.Open(s.configs.Database.ConnectionString())
	case "sqlite", "":
		dialector = sqlite.Open(s.configs.Database.File)
	default:
		panic("unknown database type " + s.configs.Database.Type)
	}

	logLevel := gormlogger.Warn
	if !s.configs.IsProduction() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) loadDatabase() {
	s.db = s.newDatabase()
	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadRedis() {
	if s.configs.Redis.Addr == "" {
		s.logger.Warnf("Redis is not configured, cache and callback locks are disabled")
		s.redisClient = xredis.NewNopClient()
		return
	}

	var err error
	s.redisClient, err = xredis.NewClient(s.ctx, s.configs.Redis)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadStorage() {
	if s.configs.Storage.Endpoint == "" {
		s.logger.Warnf("Storage is not configured, banner upload is disabled")
		s.storage = storage.Unavailable()
		return
	}

	var err error
	s.storage, err = storage.NewS3Storage(s.configs.Storage)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadEmailSender() {
	if !s.configs.Email.Enabled {
		s.emailSender = email.NewLogSender()
		return
	}

	sender, err := email.NewSMTPSender(s.configs.Email)
	if err != nil {
		s.logger.Warnf("Cannot use smtp, emails are only logged: %v", err)
		s.emailSender = email.NewLogSender()
		return
	}

	s.emailSender = sender
}

func (s *srv) loadEndpoint() {
	s.pixEndpoint = horsepay.New(s.configs.Pix)
}

func (s *srv) loadRepos() {
	s.raffleConfigRepo = repository.NewRaffleConfigRepository()
	s.ticketRepo = repository.NewTicketRepository()
	s.prizeRepo = repository.NewPrizeRepository()
	s.winnerRepo = repository.NewWinnerRepository()
	s.bannerRepo = repository.NewBannerRepository()
	s.migrationRepo = repository.NewMigrationRepository()
}

func (s *srv) loadDomains() {
	configLoader := domain.NewRaffleConfigLoader(s.raffleConfigRepo, s.redisClient)
	drawer := domain.NewTicketDrawer(s.ticketRepo, s.prizeRepo, s.winnerRepo, s.emailSender, crypto.Source{})

	s.ticketDomain = domain.NewTicketDomain(s.ticketRepo, s.winnerRepo, configLoader, drawer, s.pixEndpoint)
	s.paymentDomain = domain.NewPaymentDomain(s.ticketRepo, configLoader, drawer, s.pixEndpoint, s.redisClient)
	s.raffleConfigDomain = domain.NewRaffleConfigDomain(s.raffleConfigRepo, configLoader)
	s.prizeDomain = domain.NewPrizeDomain(s.prizeRepo)
	s.authDomain = domain.NewAuthDomain()
	s.bannerDomain = domain.NewBannerDomain(s.bannerRepo, s.storage)
	s.statisticDomain = domain.NewStatisticDomain(s.ticketRepo, s.prizeRepo)
}
