package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_ticketRepository_MarkPaid(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewTicketRepository()
	now := time.Now()

	require.NoError(t, repo.MarkPaid(ctx, testutil.Ticket3.ID, now))

	ticket, err := repo.GetByID(ctx, testutil.Ticket3.ID)
	require.NoError(t, err)
	require.Equal(t, entity.TicketPaid, ticket.Status)
	require.True(t, ticket.PurchaseDate.Valid)

	// A ticket can be paid only once.
	require.ErrorIs(t, repo.MarkPaid(ctx, testutil.Ticket3.ID, now), gorm.ErrRecordNotFound)
	require.ErrorIs(t, repo.MarkPaid(ctx, testutil.Ticket1.ID, now), gorm.ErrRecordNotFound)
}

func Test_ticketRepository_DeletePending(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewTicketRepository()

	require.ErrorIs(t, repo.DeletePending(ctx, testutil.Ticket1.ID), gorm.ErrRecordNotFound)
	require.NoError(t, repo.DeletePending(ctx, testutil.Ticket3.ID))

	_, err := repo.GetByID(ctx, testutil.Ticket3.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_ticketRepository_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewTicketRepository()

	tickets, err := repo.GetList(ctx, TicketFilter{Status: entity.TicketPaid})
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	// Newest purchase first.
	require.Equal(t, testutil.Ticket2.ID, tickets[0].ID)
	require.Equal(t, testutil.Ticket1.ID, tickets[1].ID)
	require.Equal(t, testutil.Prize1.Name, tickets[1].Prize.Name)

	isWinner := true
	tickets, err = repo.GetList(ctx, TicketFilter{IsWinner: &isWinner})
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	require.Equal(t, testutil.Ticket1.ID, tickets[0].ID)

	tickets, err = repo.GetList(ctx, TicketFilter{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, tickets, 1)

	count, err := repo.Count(ctx, TicketFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}

func Test_ticketRepository_GetByPaymentExternalID(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewTicketRepository()

	ticket, err := repo.GetByPaymentExternalID(ctx, 1001)
	require.NoError(t, err)
	require.Equal(t, testutil.Ticket3.ID, ticket.ID)

	_, err = repo.GetByPaymentExternalID(ctx, 9999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The payment external id is unique.
	err = repo.Create(ctx, &entity.Ticket{
		Base:              entity.Base{ID: "duplicated"},
		Status:            entity.TicketPending,
		PaymentExternalID: sql.NullInt64{Valid: true, Int64: 1001},
	})
	require.Error(t, err)
}

func Test_ticketRepository_Statistic(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewTicketRepository()

	stat, err := repo.Statistic(ctx)
	require.NoError(t, err)
	require.Equal(t, &TicketStatistic{Total: 3, Paid: 2, Winners: 1, Revenue: 2000}, stat)

	dates, err := repo.GetPurchaseDatesSince(ctx, time.Now().Add(-36*time.Hour))
	require.NoError(t, err)
	require.Len(t, dates, 1)
}
