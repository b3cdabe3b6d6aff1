package dto

type ClickRequest struct {
	FID uint64 `json:"id" binding:"required"`
}

type ClickResponse struct {
	UserResponse
	PowerAwarded int64 `json:"power"`
}
