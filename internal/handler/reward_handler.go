package handler

import (
	"net/http"

	"github.com/cubehq/dailycube-backend/internal/dto"
	"github.com/cubehq/dailycube-backend/internal/service"
	"github.com/cubehq/dailycube-backend/pkg/apperror"
	"github.com/cubehq/dailycube-backend/pkg/response"
	"github.com/cubehq/dailycube-backend/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RewardHandler struct {
	service service.RewardService
}

func NewRewardHandler(svc service.RewardService) *RewardHandler {
	return &RewardHandler{service: svc}
}

func (h *RewardHandler) SyncRewards(c *gin.Context) {
	var req dto.SyncRewardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	result, err := h.service.SyncCollectedFees(c.Request.Context(), req.Address, amount)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp := dto.SyncRewardsResponse{Success: result.Success}
	if result.Success {
		resp.ActualRewards = result.ActualRewards.String()
	}

	// A missing target is reported, not treated as a failure; the
	// chain watcher keeps its cursor moving either way.
	c.JSON(http.StatusOK, resp)
}
