package handler

import (
	"net/http"

	"github.com/cubehq/dailycube-backend/internal/dto"
	"github.com/cubehq/dailycube-backend/internal/service"
	"github.com/cubehq/dailycube-backend/pkg/response"
	"github.com/cubehq/dailycube-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	service service.NotificationService
}

func NewWebhookHandler(svc service.NotificationService) *WebhookHandler {
	return &WebhookHandler{service: svc}
}

// HandleLifecycle processes frame lifecycle events: adding the app (or
// re-enabling notifications) registers the push token, removal deletes
// it.
func (h *WebhookHandler) HandleLifecycle(c *gin.Context) {
	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	var err error
	switch req.Event {
	case dto.WebhookFrameAdded, dto.WebhookNotificationsEnabled:
		err = h.service.Register(c.Request.Context(), req.FID, req.Token, req.URL)
	case dto.WebhookFrameRemoved, dto.WebhookNotificationsDisabled:
		err = h.service.Remove(c.Request.Context(), req.FID)
	}

	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
