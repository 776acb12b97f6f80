package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rifa-premiada/backend/internal/common"
	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/storage"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const defaultBannerURL = "/banner-bg.svg"

type BannerDomain interface {
	Get(context.Context, *model.GetBannerRequest) (*model.GetBannerResponse, error)
	Upload(context.Context, *model.UploadBannerRequest) (*model.UploadBannerResponse, error)
}

type bannerDomain struct {
	bannerRepo  repository.BannerRepository
	fileStorage storage.Storage
}

func NewBannerDomain(bannerRepo repository.BannerRepository, fileStorage storage.Storage) *bannerDomain {
	return &bannerDomain{
		bannerRepo:  bannerRepo,
		fileStorage: fileStorage,
	}
}

func (d *bannerDomain) Get(
	ctx context.Context, req *model.GetBannerRequest,
) (*model.GetBannerResponse, error) {
	banner, err := d.bannerRepo.GetLast(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.GetBannerResponse{Banner: model.Banner{URL: defaultBannerURL}}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get banner: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetBannerResponse{Banner: convertBanner(banner)}, nil
}

func (d *bannerDomain) Upload(
	ctx context.Context, req *model.UploadBannerRequest,
) (*model.UploadBannerResponse, error) {
	image, err := common.ProcessImage(
		ctx, d.fileStorage, common.BannerFormKey, common.BannerPrefix, common.BannerSizes)
	if err != nil {
		return nil, err
	}

	banner := &entity.Banner{
		Base:      entity.Base{ID: uuid.NewString()},
		URL:       image.Uploads[0].URL,
		MobileURL: image.Uploads[1].URL,
		FileName:  image.FileName,
	}

	if err := d.bannerRepo.Create(ctx, banner); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create banner: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UploadBannerResponse{Banner: convertBanner(banner)}, nil
}
