package model

import "github.com/shopspring/decimal"

// TierConfig holds the reward-contract parameters for a tier version.
// Seeded at boot and treated as read-only.
type TierConfig struct {
	Version         int             `gorm:"primaryKey;autoIncrement:false" json:"version"`
	ContractAddress string          `gorm:"size:42;not null" json:"contract_address"`
	StreamShare     decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"stream_share"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(38,18);not null" json:"unit_price"`
}
