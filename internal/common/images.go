package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/nfnt/resize"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/storage"
	"github.com/rifa-premiada/backend/pkg/xcontext"
)

const (
	BannerFormKey = "file"
	BannerPrefix  = "banners"
)

// ImageSize with a zero height keeps the aspect ratio.
type ImageSize struct {
	Name string
	W    uint
	H    uint
}

var BannerSizes = []ImageSize{
	{Name: "desktop", W: 1920},
	{Name: "mobile", W: 768},
}

type ProcessedImage struct {
	FileName string
	Uploads  []*storage.UploadResponse
}

// ProcessImage reads the multipart file under key, resizes it to every size
// and uploads the results in the same order as sizes.
func ProcessImage(
	ctx context.Context, fileStorage storage.Storage, key, prefix string, sizes []ImageSize,
) (*ProcessedImage, error) {
	req := xcontext.HTTPRequest(ctx)
	if req == nil {
		return nil, errorx.New(errorx.BadRequest, "Request must be multipart form")
	}

	maxBytes := xcontext.Configs(ctx).File.MaxBytes()
	if req.ContentLength > maxBytes {
		return nil, errorx.New(errorx.BadRequest, "File is too large, the maximum is %d bytes", maxBytes)
	}

	if err := req.ParseMultipartForm(maxBytes); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Request must be multipart form")
	}

	file, header, err := req.FormFile(key)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Error retrieving the file")
	}
	defer file.Close()

	if header.Size > maxBytes {
		return nil, errorx.New(errorx.BadRequest, "File is too large, the maximum is %d bytes", maxBytes)
	}

	mime := header.Header.Get("Content-Type")
	img, err := decodeImg(mime, file)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot decode image: %v", err)
		return nil, errorx.New(errorx.BadRequest, "We just accept jpeg, gif or png")
	}

	objs := make([]*storage.UploadObject, 0, len(sizes))
	for _, size := range sizes {
		img := resize.Resize(size.W, size.H, img, resize.Lanczos3)
		b, err := encodeImg(mime, img)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot encode image: %v", err)
			return nil, errorx.Unknown
		}

		objs = append(objs, &storage.UploadObject{
			Prefix:   prefix,
			FileName: fmt.Sprintf("%s-%s", size.Name, header.Filename),
			Mime:     mime,
			Data:     b,
		})
	}

	uploads, err := fileStorage.BulkUpload(ctx, objs)
	if err != nil {
		var errx errorx.Error
		if errors.As(err, &errx) {
			return nil, errx
		}

		xcontext.Logger(ctx).Errorf("Cannot upload image: %v", err)
		return nil, errorx.Unknown
	}

	if len(uploads) != len(sizes) {
		xcontext.Logger(ctx).Errorf("Uploaded %d images, expected %d", len(uploads), len(sizes))
		return nil, errorx.Unknown
	}

	return &ProcessedImage{FileName: header.Filename, Uploads: uploads}, nil
}

func decodeImg(mime string, data io.Reader) (img image.Image, err error) {
	switch mime {
	case "image/jpeg":
		img, err = jpeg.Decode(data)
	case "image/png":
		img, err = png.Decode(data)
	case "image/gif":
		img, err = gif.Decode(data)
	default:
		return nil, fmt.Errorf("unsupported mime %q", mime)
	}
	return img, err
}

func encodeImg(mime string, img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)

	var err error
	switch mime {
	case "image/jpeg":
		err = jpeg.Encode(buf, img, nil)
	case "image/png":
		err = png.Encode(buf, img)
	case "image/gif":
		err = gif.Encode(buf, img, nil)
	default:
		return nil, fmt.Errorf("unsupported mime %q", mime)
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
