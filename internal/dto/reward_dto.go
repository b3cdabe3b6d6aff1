package dto

type SyncRewardsRequest struct {
	Address string `json:"address" binding:"required,eth_addr"`
	// Collected fee amount as a decimal string.
	Amount string `json:"amount" binding:"required"`
}

type SyncRewardsResponse struct {
	Success       bool   `json:"success"`
	ActualRewards string `json:"actual_rewards,omitempty"`
}
