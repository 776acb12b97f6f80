package model

type GetBannerRequest struct{}

type GetBannerResponse struct {
	Banner Banner `json:"banner"`
}

// UploadBannerRequest is a multipart form with the image in the file field.
type UploadBannerRequest struct{}

type UploadBannerResponse struct {
	Banner Banner `json:"banner"`
}
