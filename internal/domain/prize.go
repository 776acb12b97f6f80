package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PrizeDomain interface {
	GetList(context.Context, *model.GetListPrizeRequest) (*model.GetListPrizeResponse, error)
	Create(context.Context, *model.CreatePrizeRequest) (*model.CreatePrizeResponse, error)
	Update(context.Context, *model.UpdatePrizeRequest) (*model.UpdatePrizeResponse, error)
	Delete(context.Context, *model.DeletePrizeRequest) (*model.DeletePrizeResponse, error)
}

type prizeDomain struct {
	prizeRepo repository.PrizeRepository
}

func NewPrizeDomain(prizeRepo repository.PrizeRepository) *prizeDomain {
	return &prizeDomain{prizeRepo: prizeRepo}
}

func (d *prizeDomain) GetList(
	ctx context.Context, req *model.GetListPrizeRequest,
) (*model.GetListPrizeResponse, error) {
	prizes, err := d.prizeRepo.GetList(ctx, repository.PrizeFilter{OnlyActive: req.OnlyActive})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of prizes: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Prize{}
	for _, p := range prizes {
		result = append(result, convertPrize(&p))
	}

	return &model.GetListPrizeResponse{Prizes: result}, nil
}

func (d *prizeDomain) Create(
	ctx context.Context, req *model.CreatePrizeRequest,
) (*model.CreatePrizeResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)

	if req.Name == "" || req.Description == "" || req.Value == nil {
		return nil, errorx.New(errorx.BadRequest, "Name, description and value are required")
	}

	if *req.Value < 0 {
		return nil, errorx.New(errorx.BadRequest, "Value must not be negative")
	}

	if req.Rarity == 0 {
		req.Rarity = entity.MinPrizeRarity
	}

	if err := checkRarity(req.Rarity); err != nil {
		return nil, err
	}

	if err := d.checkNameAvailable(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	prize := &entity.Prize{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Value:       *req.Value,
		Rarity:      req.Rarity,
		IsActive:    true,
	}

	if req.IsActive != nil {
		prize.IsActive = *req.IsActive
	}

	if err := d.prizeRepo.Create(ctx, prize); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create prize: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePrizeResponse{Prize: convertPrize(prize)}, nil
}

func (d *prizeDomain) Update(
	ctx context.Context, req *model.UpdatePrizeRequest,
) (*model.UpdatePrizeResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Prize id is required")
	}

	update := map[string]any{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errorx.New(errorx.BadRequest, "Name must not be empty")
		}

		if err := d.checkNameAvailable(ctx, name, req.ID); err != nil {
			return nil, err
		}

		update["name"] = name
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, errorx.New(errorx.BadRequest, "Description must not be empty")
		}

		update["description"] = description
	}

	if req.ImageURL != nil {
		update["image_url"] = *req.ImageURL
	}

	if req.Value != nil {
		if *req.Value < 0 {
			return nil, errorx.New(errorx.BadRequest, "Value must not be negative")
		}

		update["value"] = *req.Value
	}

	if req.Rarity != nil {
		if err := checkRarity(*req.Rarity); err != nil {
			return nil, err
		}

		update["rarity"] = *req.Rarity
	}

	if req.IsActive != nil {
		update["is_active"] = *req.IsActive
	}

	if len(update) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Nothing to update")
	}

	if err := d.prizeRepo.UpdateByID(ctx, req.ID, update); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found prize")
		}

		xcontext.Logger(ctx).Errorf("Cannot update prize: %v", err)
		return nil, errorx.Unknown
	}

	prize, err := d.prizeRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated prize: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdatePrizeResponse{Prize: convertPrize(prize)}, nil
}

func (d *prizeDomain) Delete(
	ctx context.Context, req *model.DeletePrizeRequest,
) (*model.DeletePrizeResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Prize id is required")
	}

	if err := d.prizeRepo.DeleteByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found prize")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete prize: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeletePrizeResponse{}, nil
}

// checkNameAvailable ignores the prize with exceptID so renaming a prize to
// its own name is allowed.
func (d *prizeDomain) checkNameAvailable(ctx context.Context, name, exceptID string) error {
	existing, err := d.prizeRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get prize by name: %v", err)
		return errorx.Unknown
	}

	if existing.ID != exceptID {
		return errorx.New(errorx.AlreadyExists, "Prize name %s already exists", name)
	}

	return nil
}

func checkRarity(rarity int) error {
	if rarity < entity.MinPrizeRarity || rarity > entity.MaxPrizeRarity {
		return errorx.New(errorx.BadRequest, "Rarity must be between %d and %d",
			entity.MinPrizeRarity, entity.MaxPrizeRarity)
	}

	return nil
}
