package handler

import (
	"net/http"

	"github.com/cubehq/dailycube-backend/internal/dto"
	"github.com/cubehq/dailycube-backend/internal/service"
	"github.com/cubehq/dailycube-backend/pkg/response"
	"github.com/cubehq/dailycube-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type SignHandler struct {
	service service.SignService
}

func NewSignHandler(svc service.SignService) *SignHandler {
	return &SignHandler{service: svc}
}

func (h *SignHandler) Sign(c *gin.Context) {
	var req dto.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	claim, err := h.service.Sign(c.Request.Context(), req.FID, req.Address)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignResponse{
		Score:     claim.Score,
		DayIndex:  claim.DayIndex,
		Signature: claim.Signature,
	})
}
