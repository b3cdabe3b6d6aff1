package model

import "time"

// NotificationToken is the push registration written by the frame
// lifecycle webhook. One token+url per user; delivery itself is a
// collaborator concern.
type NotificationToken struct {
	UserFID   uint64    `gorm:"primaryKey;autoIncrement:false" json:"user_fid"`
	Token     string    `gorm:"type:text;not null" json:"token"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
