package dto

import "github.com/cubehq/dailycube-backend/internal/model"

type SetTierRequest struct {
	FID     uint64 `json:"id" binding:"required"`
	NewTier int    `json:"new_tier" binding:"required,min=1"`
}

type TierContractParams struct {
	ContractAddress string `json:"contract_address"`
	StreamShare     string `json:"stream_share"`
	UnitPrice       string `json:"unit_price"`
}

type SetTierResponse struct {
	UserResponse
	Contract TierContractParams `json:"contract"`
}

type TierInfo struct {
	Version int `json:"version"`
	TierContractParams
}

type ListTiersResponse struct {
	Tiers []TierInfo `json:"tiers"`
}

func NewTierContractParams(cfg *model.TierConfig) TierContractParams {
	return TierContractParams{
		ContractAddress: cfg.ContractAddress,
		StreamShare:     cfg.StreamShare.String(),
		UnitPrice:       cfg.UnitPrice.String(),
	}
}
