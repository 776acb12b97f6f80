package model

type GetListPrizeRequest struct {
	OnlyActive bool `json:"only_active" form:"only_active"`
}

type GetListPrizeResponse struct {
	Prizes []Prize `json:"prizes"`
}

type CreatePrizeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Value       *int64 `json:"value"`
	Rarity      int    `json:"rarity"`
	IsActive    *bool  `json:"is_active"`
}

type CreatePrizeResponse struct {
	Prize Prize `json:"prize"`
}

type UpdatePrizeRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Value       *int64  `json:"value"`
	Rarity      *int    `json:"rarity"`
	IsActive    *bool   `json:"is_active"`
}

type UpdatePrizeResponse struct {
	Prize Prize `json:"prize"`
}

type DeletePrizeRequest struct {
	ID string `json:"id"`
}

type DeletePrizeResponse struct{}
