package domain

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/storage"
	"github.com/rifa-premiada/backend/pkg/testutil"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func generatePNG(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	img.Set(2, 3, color.RGBA{255, 0, 0, 255})

	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func withMultipartFile(t *testing.T, ctx context.Context, mime string, data []byte) context.Context {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="banner.png"`)
	header.Set("Content-Type", mime)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/admin/uploadBanner", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return xcontext.WithHTTPRequest(ctx, req)
}

func Test_bannerDomain_Get_Default(t *testing.T) {
	ctx := testutil.MockContext()

	resp, err := NewBannerDomain(repository.NewBannerRepository(), &testutil.MockStorage{}).
		Get(ctx, &model.GetBannerRequest{})
	require.NoError(t, err)
	require.Equal(t, "/banner-bg.svg", resp.Banner.URL)
}

func Test_bannerDomain_Upload(t *testing.T) {
	ctx := withMultipartFile(t, testutil.MockContext(), "image/png", generatePNG(t))

	var uploaded []*storage.UploadObject
	stg := &testutil.MockStorage{}
	stg.On("BulkUpload", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { uploaded = args.Get(1).([]*storage.UploadObject) }).
		Return([]*storage.UploadResponse{
			{URL: "https://cdn/banners/desktop-banner.png"},
			{URL: "https://cdn/banners/mobile-banner.png"},
		}, nil).
		Once()

	domain := NewBannerDomain(repository.NewBannerRepository(), stg)
	resp, err := domain.Upload(ctx, &model.UploadBannerRequest{})
	require.NoError(t, err)
	require.Equal(t, "https://cdn/banners/desktop-banner.png", resp.Banner.URL)
	require.Equal(t, "https://cdn/banners/mobile-banner.png", resp.Banner.MobileURL)

	require.Len(t, uploaded, 2)
	require.Equal(t, "banners", uploaded[0].Prefix)
	require.Equal(t, "desktop-banner.png", uploaded[0].FileName)
	require.Equal(t, "image/png", uploaded[0].Mime)

	desktop, err := png.Decode(bytes.NewReader(uploaded[0].Data))
	require.NoError(t, err)
	require.Equal(t, 1920, desktop.Bounds().Dx())
	require.Equal(t, 960, desktop.Bounds().Dy())

	mobile, err := png.Decode(bytes.NewReader(uploaded[1].Data))
	require.NoError(t, err)
	require.Equal(t, 768, mobile.Bounds().Dx())

	got, err := domain.Get(ctx, &model.GetBannerRequest{})
	require.NoError(t, err)
	require.Equal(t, resp.Banner, got.Banner)
	stg.AssertExpectations(t)
}

func Test_bannerDomain_Upload_StorageUnavailable(t *testing.T) {
	ctx := withMultipartFile(t, testutil.MockContext(), "image/png", generatePNG(t))

	stg := &testutil.MockStorage{}
	stg.On("BulkUpload", mock.Anything, mock.Anything).
		Return(nil, errorx.New(errorx.Unavailable, "Storage is not configured"))

	_, err := NewBannerDomain(repository.NewBannerRepository(), stg).
		Upload(ctx, &model.UploadBannerRequest{})
	require.Equal(t, errorx.New(errorx.Unavailable, "Storage is not configured"), err)
}

func Test_bannerDomain_Upload_Invalid(t *testing.T) {
	stg := &testutil.MockStorage{}
	domain := NewBannerDomain(repository.NewBannerRepository(), stg)

	ctx := withMultipartFile(t, testutil.MockContext(), "application/pdf", []byte("%PDF-1.4"))
	_, err := domain.Upload(ctx, &model.UploadBannerRequest{})
	require.Equal(t, errorx.New(errorx.BadRequest, "We just accept jpeg, gif or png"), err)

	ctx = withMultipartFile(t, testutil.MockContext(), "image/png", []byte("not a png"))
	_, err = domain.Upload(ctx, &model.UploadBannerRequest{})
	require.Equal(t, errorx.New(errorx.BadRequest, "We just accept jpeg, gif or png"), err)

	_, err = domain.Upload(testutil.MockContext(), &model.UploadBannerRequest{})
	require.Equal(t, errorx.New(errorx.BadRequest, "Request must be multipart form"), err)

	stg.AssertNotCalled(t, "BulkUpload", mock.Anything, mock.Anything)
}
