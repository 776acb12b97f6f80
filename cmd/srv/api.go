package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rifa-premiada/backend/internal/middleware"
	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/migration"
	"github.com/rifa-premiada/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 10 * time.Second

func (s *srv) startApi(*cli.Context) error {
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadStorage()
	s.loadEmailSender()
	s.loadEndpoint()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	if err := migration.RunAll(s.ctx, s.migrationRepo); err != nil {
		return err
	}

	if s.configs.Auth.TokenSecret == "" {
		s.logger.Warnf("Token secret is empty, admin tokens are not safe")
	}

	s.server = &http.Server{
		Addr:              s.configs.ApiServer.Address(),
		Handler:           s.router.Handler(s.configs.ApiServer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting server on %s", s.server.Addr)
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		s.logger.Infof("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Public API.
	router.POST(s.router, "/buyTicket", s.ticketDomain.Buy)
	router.GET(s.router, "/getTicket", s.ticketDomain.Get)
	router.GET(s.router, "/getRecentWinners", s.ticketDomain.GetRecentWinners)
	router.GET(s.router, "/getRaffleInfo", s.ticketDomain.GetRaffleInfo)
	router.GET(s.router, "/getBanner", s.bannerDomain.Get)
	router.POST(s.router, "/pix/webhook", s.paymentDomain.HandleWebhook)

	// Auth API
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSetCookie())
	{
		router.POST(authRouter, "/login", s.authDomain.Login)
	}

	// These following APIs need an admin access token, from the header or
	// the cookie.
	adminRouter := s.router.Group("/admin")
	authVerifier := middleware.NewAuthVerifier().WithAccessToken().WithCookie().WithRoles(model.AdminRole)
	adminRouter.Before(authVerifier.Middleware())
	{
		router.GET(adminRouter, "/verify", s.authDomain.Verify)

		// Raffle config API
		router.GET(adminRouter, "/getRaffleConfig", s.raffleConfigDomain.Get)
		router.POST(adminRouter, "/updateRaffleConfig", s.raffleConfigDomain.Update)

		// Ticket API
		router.GET(adminRouter, "/getListTicket", s.ticketDomain.GetList)
		router.GET(adminRouter, "/getListWinner", s.ticketDomain.GetListWinner)

		// Prize API
		router.GET(adminRouter, "/getListPrize", s.prizeDomain.GetList)
		router.POST(adminRouter, "/createPrize", s.prizeDomain.Create)
		router.POST(adminRouter, "/updatePrize", s.prizeDomain.Update)
		router.POST(adminRouter, "/deletePrize", s.prizeDomain.Delete)

		// Banner API
		router.POST(adminRouter, "/uploadBanner", s.bannerDomain.Upload)

		// Statistic API
		router.GET(adminRouter, "/getStatistic", s.statisticDomain.Get)

		// PIX API
		router.GET(adminRouter, "/getPixBalance", s.paymentDomain.GetBalance)
		router.GET(adminRouter, "/getPixDeposit", s.paymentDomain.GetDeposit)
		router.POST(adminRouter, "/pixWithdraw", s.paymentDomain.Withdraw)
	}
}
