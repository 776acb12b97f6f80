package domain

import (
	"testing"

	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_prizeDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewPrizeDomain(repository.NewPrizeRepository())

	resp, err := domain.GetList(ctx, &model.GetListPrizeRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Prizes, 3)
	require.Equal(t, testutil.Prize1.ID, resp.Prizes[0].ID)

	resp, err = domain.GetList(ctx, &model.GetListPrizeRequest{OnlyActive: true})
	require.NoError(t, err)
	require.Len(t, resp.Prizes, 2)
}

func Test_prizeDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	value := int64(2500)
	inactive := false

	tests := []struct {
		name    string
		req     *model.CreatePrizeRequest
		want    *model.Prize
		wantErr error
	}{
		{
			name: "happy case with defaults",
			req:  &model.CreatePrizeRequest{Name: "Caneca", Description: "Caneca personalizada", Value: &value},
			want: &model.Prize{Name: "Caneca", Description: "Caneca personalizada", Value: 2500, Rarity: 1, IsActive: true},
		},
		{
			name: "inactive with rarity",
			req: &model.CreatePrizeRequest{
				Name: "Camiseta", Description: "Camiseta oficial", Value: &value, Rarity: 4, IsActive: &inactive,
			},
			want: &model.Prize{Name: "Camiseta", Description: "Camiseta oficial", Value: 2500, Rarity: 4},
		},
		{
			name:    "missing value",
			req:     &model.CreatePrizeRequest{Name: "Caneca", Description: "Caneca"},
			wantErr: errorx.New(errorx.BadRequest, "Name, description and value are required"),
		},
		{
			name:    "rarity out of range",
			req:     &model.CreatePrizeRequest{Name: "Boné", Description: "Boné", Value: &value, Rarity: 6},
			wantErr: errorx.New(errorx.BadRequest, "Rarity must be between 1 and 5"),
		},
		{
			name:    "duplicated name",
			req:     &model.CreatePrizeRequest{Name: testutil.Prize2.Name, Description: "Outro", Value: &value},
			wantErr: errorx.New(errorx.AlreadyExists, "Prize name %s already exists", testutil.Prize2.Name),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPrizeDomain(repository.NewPrizeRepository()).Create(ctx, tt.req)
			if tt.wantErr != nil {
				require.Equal(t, tt.wantErr, err)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, got.Prize.ID)
			require.Equal(t, tt.want.Name, got.Prize.Name)
			require.Equal(t, tt.want.Description, got.Prize.Description)
			require.Equal(t, tt.want.Value, got.Prize.Value)
			require.Equal(t, tt.want.Rarity, got.Prize.Rarity)
			require.Equal(t, tt.want.IsActive, got.Prize.IsActive)

			stored, err := repository.NewPrizeRepository().GetByID(ctx, got.Prize.ID)
			require.NoError(t, err)
			require.Equal(t, tt.want.IsActive, stored.IsActive)
		})
	}
}

func Test_prizeDomain_Update(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewPrizeDomain(repository.NewPrizeRepository())

	sameName := testutil.Prize1.Name
	rarity := 2
	inactive := false
	resp, err := domain.Update(ctx, &model.UpdatePrizeRequest{
		ID:       testutil.Prize1.ID,
		Name:     &sameName,
		Rarity:   &rarity,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Prize.Rarity)
	require.False(t, resp.Prize.IsActive)
	require.Equal(t, testutil.Prize1.Description, resp.Prize.Description)

	otherName := testutil.Prize2.Name
	_, err = domain.Update(ctx, &model.UpdatePrizeRequest{ID: testutil.Prize1.ID, Name: &otherName})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Prize name %s already exists", otherName), err)

	_, err = domain.Update(ctx, &model.UpdatePrizeRequest{ID: "unknown", Rarity: &rarity})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found prize"), err)

	_, err = domain.Update(ctx, &model.UpdatePrizeRequest{ID: testutil.Prize1.ID})
	require.Equal(t, errorx.New(errorx.BadRequest, "Nothing to update"), err)
}

func Test_prizeDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewPrizeDomain(repository.NewPrizeRepository())

	_, err := domain.Delete(ctx, &model.DeletePrizeRequest{ID: testutil.Prize1.ID})
	require.NoError(t, err)

	_, err = domain.Delete(ctx, &model.DeletePrizeRequest{ID: testutil.Prize1.ID})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found prize"), err)

	// The name of a deleted prize can be used again.
	value := int64(100)
	_, err = domain.Create(ctx, &model.CreatePrizeRequest{
		Name:        testutil.Prize1.Name,
		Description: "Novo",
		Value:       &value,
	})
	require.NoError(t, err)

	// Tickets keep showing the deleted prize.
	ticket, err := repository.NewTicketRepository().GetByID(ctx, testutil.Ticket1.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.Prize1.ID, ticket.Prize.ID)
}
