package dto

type SignRequest struct {
	FID     uint64 `json:"id" binding:"required"`
	Address string `json:"address" binding:"required,eth_addr"`
}

type SignResponse struct {
	Score     int64  `json:"score"`
	DayIndex  int64  `json:"day_index"`
	Signature string `json:"signature"`
}
