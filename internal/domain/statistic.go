package domain

import (
	"context"
	"time"

	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
)

const (
	defaultStatisticDays = 7
	maxStatisticDays     = 90

	dayLayout = "2006-01-02"
)

type StatisticDomain interface {
	Get(context.Context, *model.GetStatisticRequest) (*model.GetStatisticResponse, error)
}

type statisticDomain struct {
	ticketRepo repository.TicketRepository
	prizeRepo  repository.PrizeRepository
}

func NewStatisticDomain(
	ticketRepo repository.TicketRepository,
	prizeRepo repository.PrizeRepository,
) *statisticDomain {
	return &statisticDomain{
		ticketRepo: ticketRepo,
		prizeRepo:  prizeRepo,
	}
}

func (d *statisticDomain) Get(
	ctx context.Context, req *model.GetStatisticRequest,
) (*model.GetStatisticResponse, error) {
	days := req.Days
	if days == 0 {
		days = defaultStatisticDays
	}

	if days < 0 || days > maxStatisticDays {
		return nil, errorx.New(errorx.BadRequest, "Days must be between 1 and %d", maxStatisticDays)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	since := today.AddDate(0, 0, -(days - 1))

	var (
		stat          *repository.TicketStatistic
		activePrizes  int
		purchaseDates []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stat, err = d.ticketRepo.Statistic(gctx)
		return err
	})

	g.Go(func() error {
		prizes, err := d.prizeRepo.GetList(gctx, repository.PrizeFilter{OnlyActive: true})
		activePrizes = len(prizes)
		return err
	})

	g.Go(func() error {
		var err error
		purchaseDates, err = d.ticketRepo.GetPurchaseDatesSince(gctx, since)
		return err
	})

	if err := g.Wait(); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get statistic: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetStatisticResponse{
		TotalTickets: stat.Total,
		PaidTickets:  stat.Paid,
		Winners:      stat.Winners,
		Revenue:      stat.Revenue,
		ActivePrizes: activePrizes,
		Daily:        bucketByDay(since, days, purchaseDates),
	}, nil
}

// bucketByDay counts the dates per local day, oldest day first. Days
// without tickets are reported with zero.
func bucketByDay(since time.Time, days int, dates []time.Time) []model.DailyTickets {
	counter := map[string]int{}
	for _, d := range dates {
		counter[d.In(since.Location()).Format(dayLayout)]++
	}

	result := make([]model.DailyTickets, 0, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i).Format(dayLayout)
		result = append(result, model.DailyTickets{Date: day, Tickets: counter[day]})
	}

	return result
}
