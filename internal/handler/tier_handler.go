package handler

import (
	"net/http"

	"github.com/cubehq/dailycube-backend/internal/dto"
	"github.com/cubehq/dailycube-backend/internal/service"
	"github.com/cubehq/dailycube-backend/pkg/response"
	"github.com/cubehq/dailycube-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type TierHandler struct {
	service service.TierService
	clock   service.Clock
}

func NewTierHandler(svc service.TierService, clock service.Clock) *TierHandler {
	return &TierHandler{service: svc, clock: clock}
}

func (h *TierHandler) SetTier(c *gin.Context) {
	var req dto.SetTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.service.SetTier(c.Request.Context(), req.FID, req.NewTier)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SetTierResponse{
		UserResponse: dto.NewUserResponse(result.User, result.Rank, h.clock.Now()),
		Contract:     dto.NewTierContractParams(result.Config),
	})
}

func (h *TierHandler) ListTiers(c *gin.Context) {
	configs, err := h.service.ListTiers(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp := dto.ListTiersResponse{Tiers: make([]dto.TierInfo, 0, len(configs))}
	for i := range configs {
		resp.Tiers = append(resp.Tiers, dto.TierInfo{
			Version:            configs[i].Version,
			TierContractParams: dto.NewTierContractParams(&configs[i]),
		})
	}

	c.JSON(http.StatusOK, resp)
}
