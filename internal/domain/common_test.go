package domain

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/mocks"
	"github.com/rifa-premiada/backend/pkg/testutil"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// scriptedRNG replays values in order, wrapping around at the end.
type scriptedRNG struct {
	values []int
	next   int
}

func (r *scriptedRNG) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

var (
	// 87+1 is a winning number, roll 1 passes, first active prize.
	winningScript = []int{87, 0, 0}
	losingScript  = []int{4520, 0}
)

type testDeps struct {
	ticketRepo   repository.TicketRepository
	prizeRepo    repository.PrizeRepository
	winnerRepo   repository.WinnerRepository
	configRepo   repository.RaffleConfigRepository
	redisClient  *testutil.MockRedisClient
	emailSender  *mocks.EmailSender
	pixEndpoint  *mocks.PixEndpoint
	configLoader *raffleConfigLoader
	drawer       *ticketDrawer
}

func newTestDeps(script []int) *testDeps {
	d := &testDeps{
		ticketRepo:  repository.NewTicketRepository(),
		prizeRepo:   repository.NewPrizeRepository(),
		winnerRepo:  repository.NewWinnerRepository(),
		configRepo:  repository.NewRaffleConfigRepository(),
		redisClient: testutil.NewMockRedisClient(),
		emailSender: &mocks.EmailSender{},
		pixEndpoint: &mocks.PixEndpoint{},
	}

	d.emailSender.On("SendWinner", mock.Anything, mock.Anything).Return(nil).Maybe()
	d.configLoader = NewRaffleConfigLoader(d.configRepo, d.redisClient)
	d.drawer = NewTicketDrawer(d.ticketRepo, d.prizeRepo, d.winnerRepo, d.emailSender, &scriptedRNG{values: script})
	return d
}

func (d *testDeps) ticketDomain() *ticketDomain {
	return NewTicketDomain(d.ticketRepo, d.winnerRepo, d.configLoader, d.drawer, d.pixEndpoint)
}

func (d *testDeps) paymentDomain() *paymentDomain {
	return NewPaymentDomain(d.ticketRepo, d.configLoader, d.drawer, d.pixEndpoint, d.redisClient)
}

func withWebhookRequest(ctx context.Context, token string) context.Context {
	req := httptest.NewRequest("POST", "/pix/webhook?token="+token, nil)
	return xcontext.WithHTTPRequest(ctx, req)
}

// abortTxAfterWinnerInsert rolls back the open transaction right after a
// winner row is written, so the following commit fails with sql.ErrTxDone.
func abortTxAfterWinnerInsert(t *testing.T, ctx context.Context) {
	err := xcontext.DB(ctx).Callback().Create().After("gorm:create").
		Register("test:abort_tx", func(db *gorm.DB) {
			if db.Statement.Table != "winners" {
				return
			}
			if tx, ok := db.Statement.ConnPool.(gorm.TxCommitter); ok {
				require.NoError(t, tx.Rollback())
			}
		})
	require.NoError(t, err)
}
