package dto

const (
	WebhookFrameAdded            = "frame_added"
	WebhookFrameRemoved          = "frame_removed"
	WebhookNotificationsEnabled  = "notifications_enabled"
	WebhookNotificationsDisabled = "notifications_disabled"
)

type WebhookRequest struct {
	FID   uint64 `json:"fid" binding:"required"`
	Event string `json:"event" binding:"required,oneof=frame_added frame_removed notifications_enabled notifications_disabled"`
	Token string `json:"token"`
	URL   string `json:"url" binding:"omitempty,url"`
}
