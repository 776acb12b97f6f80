package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/pkg/xcontext"
)

var (
	// RaffleConfig
	RaffleConfig1 = &entity.RaffleConfig{
		Base:               entity.Base{ID: "raffle_config1"},
		TicketPrice:        1000,
		PrizeValue:         10000,
		MaxNumber:          10000,
		WinningNumbers:     "100,88,14",
		AutoDrawnNumbers:   1,
		WinningProbability: 100,
		IsActive:           true,
	}

	// Prizes
	Prize1 = &entity.Prize{
		Base:        entity.Base{ID: "prize1"},
		Name:        "Smartphone Top de Linha",
		Description: "Smartphone de última geração",
		Value:       300000,
		Rarity:      5,
		IsActive:    true,
	}

	Prize2 = &entity.Prize{
		Base:        entity.Base{ID: "prize2"},
		Name:        "Fone de Ouvido Bluetooth",
		Description: "Fone sem fio com cancelamento de ruído",
		Value:       50000,
		Rarity:      3,
		IsActive:    true,
	}

	Prize3 = &entity.Prize{
		Base:        entity.Base{ID: "prize3"},
		Name:        "Vale Compras R$ 100",
		Description: "Vale compras",
		Value:       10000,
		Rarity:      1,
		IsActive:    false,
	}

	Prizes = []*entity.Prize{Prize1, Prize2, Prize3}

	// Tickets
	Ticket1 = &entity.Ticket{
		Base:         entity.Base{ID: "ticket1"},
		UserName:     "Maria",
		UserEmail:    "maria@example.com",
		PurchaseDate: sql.NullTime{Valid: true, Time: time.Now().Add(-48 * time.Hour)},
		Status:       entity.TicketPaid,
		DrawnNumbers: "88",
		IsWinner:     true,
		PrizeID:      sql.NullString{Valid: true, String: "prize1"},
		Amount:       1000,
	}

	Ticket2 = &entity.Ticket{
		Base:         entity.Base{ID: "ticket2"},
		UserName:     "Joao",
		UserEmail:    "joao@example.com",
		PurchaseDate: sql.NullTime{Valid: true, Time: time.Now().Add(-24 * time.Hour)},
		Status:       entity.TicketPaid,
		DrawnNumbers: "4521",
		IsWinner:     false,
		Amount:       1000,
	}

	// Ticket3 waits for its PIX payment.
	Ticket3 = &entity.Ticket{
		Base:              entity.Base{ID: "ticket3"},
		UserName:          "Ana",
		UserEmail:         "ana@example.com",
		Status:            entity.TicketPending,
		Amount:            1000,
		PaymentExternalID: sql.NullInt64{Valid: true, Int64: 1001},
		PaymentCopyPaste:  "00020126580014br.gov.bcb.pix",
	}

	Tickets = []*entity.Ticket{Ticket1, Ticket2, Ticket3}

	// Winners
	Winner1 = &entity.Winner{
		Base:         entity.Base{ID: "winner1"},
		TicketID:     Ticket1.ID,
		UserName:     Ticket1.UserName,
		UserEmail:    Ticket1.UserEmail,
		DrawnNumbers: Ticket1.DrawnNumbers,
		PrizeID:      Ticket1.PrizeID,
		PrizeDate:    Ticket1.PurchaseDate.Time,
	}
)

// CreateFixtureDb inserts the fixtures above into the database of ctx.
func CreateFixtureDb(ctx context.Context) {
	InsertRaffleConfigs(ctx)
	InsertPrizes(ctx)
	InsertTickets(ctx)
	InsertWinners(ctx)
}

func InsertRaffleConfigs(ctx context.Context) {
	c := *RaffleConfig1
	if err := xcontext.DB(ctx).Create(&c).Error; err != nil {
		panic(err)
	}
}

func InsertPrizes(ctx context.Context) {
	for _, prize := range Prizes {
		p := *prize
		if err := xcontext.DB(ctx).Create(&p).Error; err != nil {
			panic(err)
		}
	}
}

func InsertTickets(ctx context.Context) {
	for _, ticket := range Tickets {
		t := *ticket
		if err := xcontext.DB(ctx).Omit("Prize").Create(&t).Error; err != nil {
			panic(err)
		}
	}
}

func InsertWinners(ctx context.Context) {
	w := *Winner1
	if err := xcontext.DB(ctx).Omit("Prize").Create(&w).Error; err != nil {
		panic(err)
	}
}
