package domain

import (
	"testing"

	"github.com/rifa-premiada/backend/internal/domain/draw"
	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func validConfigRequest() *model.UpdateRaffleConfigRequest {
	price, prizeValue := int64(500), int64(20000)
	maxNumber, autoDrawn, probability := 100, 2, 30
	winningNumbers := "7, 300, abc, 7, 42"

	return &model.UpdateRaffleConfigRequest{
		TicketPrice:        &price,
		PrizeValue:         &prizeValue,
		MaxNumber:          &maxNumber,
		WinningNumbers:     &winningNumbers,
		AutoDrawnNumbers:   &autoDrawn,
		WinningProbability: &probability,
	}
}

func Test_raffleConfigDomain_Update(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	deps := newTestDeps(losingScript)
	domain := NewRaffleConfigDomain(deps.configRepo, deps.configLoader)

	// Fill the cache so the update has something to invalidate.
	_, err := deps.configLoader.Get(ctx)
	require.NoError(t, err)

	resp, err := domain.Update(ctx, validConfigRequest())
	require.NoError(t, err)
	require.Equal(t, testutil.RaffleConfig1.ID, resp.Config.ID)
	require.Equal(t, int64(500), resp.Config.TicketPrice)
	require.Equal(t, 100, resp.Config.MaxNumber)
	require.Equal(t, "7,42", resp.Config.WinningNumbers)
	require.Equal(t, 30, resp.Config.WinningProbability)

	exists, err := deps.redisClient.Exist(ctx, activeConfigCacheKey)
	require.NoError(t, err)
	require.False(t, exists)

	config, err := deps.configLoader.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(500), config.TicketPrice)
}

func Test_raffleConfigDomain_Update_ZeroProbability(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	deps := newTestDeps(losingScript)
	domain := NewRaffleConfigDomain(deps.configRepo, deps.configLoader)

	req := validConfigRequest()
	zero := 0
	req.WinningProbability = &zero

	resp, err := domain.Update(ctx, req)
	require.NoError(t, err)
	require.Equal(t, 0, resp.Config.WinningProbability)
}

func Test_raffleConfigDomain_Update_CreateWhenMissing(t *testing.T) {
	ctx := testutil.MockContext()

	deps := newTestDeps(losingScript)
	domain := NewRaffleConfigDomain(deps.configRepo, deps.configLoader)

	_, err := domain.Get(ctx, &model.GetRaffleConfigRequest{})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found active raffle config"), err)

	resp, err := domain.Update(ctx, validConfigRequest())
	require.NoError(t, err)
	require.True(t, resp.Config.IsActive)

	got, err := domain.Get(ctx, &model.GetRaffleConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, resp.Config.ID, got.Config.ID)
}

func Test_raffleConfigDomain_Update_Invalid(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	negative, zero, over := -1, 0, 101
	tooManyDrawn := draw.MaxAutoDrawnNumbers + 1
	negativePrice := int64(-1)
	noValidNumber := "0, 101, x"

	tests := []struct {
		name    string
		modify  func(req *model.UpdateRaffleConfigRequest)
		wantErr error
	}{
		{
			name:    "missing field",
			modify:  func(req *model.UpdateRaffleConfigRequest) { req.PrizeValue = nil },
			wantErr: errorx.New(errorx.BadRequest, "All fields are required"),
		},
		{
			name:    "negative price",
			modify:  func(req *model.UpdateRaffleConfigRequest) { req.TicketPrice = &negativePrice },
			wantErr: errorx.New(errorx.BadRequest, "Price and prize value must not be negative"),
		},
		{
			name:    "zero max number",
			modify:  func(req *model.UpdateRaffleConfigRequest) { req.MaxNumber = &zero },
			wantErr: errorx.New(errorx.BadRequest, "Max number must be at least 1"),
		},
		{
			name:    "zero auto drawn numbers",
			modify:  func(req *model.UpdateRaffleConfigRequest) { req.AutoDrawnNumbers = &zero },
			wantErr: errorx.New(errorx.BadRequest, "Auto drawn numbers must be between 1 and 100"),
		},
		{
			name:    "too many auto drawn numbers",
			modify:  func(req *model.UpdateRaffleConfigRequest) { req.AutoDrawnNumbers = &tooManyDrawn },
			wantErr: errorx.New(errorx.BadRequest, "Auto drawn numbers must be between 1 and 100"),
		},
		{
			name:    "negative probability",
			modify:  func(req *model.UpdateRaffleConfigRequest) { req.WinningProbability = &negative },
			wantErr: errorx.New(errorx.BadRequest, "Winning probability must be between 0 and 100"),
		},
		{
			name:    "probability over 100",
			modify:  func(req *model.UpdateRaffleConfigRequest) { req.WinningProbability = &over },
			wantErr: errorx.New(errorx.BadRequest, "Winning probability must be between 0 and 100"),
		},
		{
			name:    "no valid winning number",
			modify:  func(req *model.UpdateRaffleConfigRequest) { req.WinningNumbers = &noValidNumber },
			wantErr: errorx.New(errorx.BadRequest, "Winning numbers must contain at least one number in [1, 100]"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps(losingScript)
			req := validConfigRequest()
			tt.modify(req)

			_, err := NewRaffleConfigDomain(deps.configRepo, deps.configLoader).Update(ctx, req)
			require.Equal(t, tt.wantErr, err)
		})
	}
}
