package handler

import (
	"net/http"

	"github.com/cubehq/dailycube-backend/internal/dto"
	"github.com/cubehq/dailycube-backend/internal/service"
	"github.com/cubehq/dailycube-backend/pkg/response"
	"github.com/cubehq/dailycube-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ClickHandler struct {
	service service.ClickService
	clock   service.Clock
}

func NewClickHandler(svc service.ClickService, clock service.Clock) *ClickHandler {
	return &ClickHandler{service: svc, clock: clock}
}

func (h *ClickHandler) Click(c *gin.Context) {
	var req dto.ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.service.Click(c.Request.Context(), req.FID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClickResponse{
		UserResponse: dto.NewUserResponse(result.User, result.Rank, h.clock.Now()),
		PowerAwarded: result.Power,
	})
}
