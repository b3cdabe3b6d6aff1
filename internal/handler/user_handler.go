package handler

import (
	"net/http"

	"github.com/cubehq/dailycube-backend/internal/dto"
	"github.com/cubehq/dailycube-backend/internal/service"
	"github.com/cubehq/dailycube-backend/pkg/response"
	"github.com/cubehq/dailycube-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
	clock   service.Clock
}

func NewUserHandler(svc service.UserService, clock service.Clock) *UserHandler {
	return &UserHandler{service: svc, clock: clock}
}

// SyncUser upserts the user's profile on app open and returns the
// record with its current rank.
func (h *UserHandler) SyncUser(c *gin.Context) {
	var req dto.SyncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	input := service.SyncUserInput{
		FID:         req.FID,
		Username:    req.Username,
		NeynarScore: req.NeynarScore,
		ReferrerID:  req.ReferrerID,
	}
	if req.Avatar != "" {
		input.AvatarURL = &req.Avatar
	}
	if req.PrimaryAddress != "" {
		input.PrimaryAddress = &req.PrimaryAddress
	}

	user, rank, err := h.service.Sync(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user, rank, h.clock.Now()))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	fid, err := response.GetFID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	user, rank, err := h.service.Get(c.Request.Context(), fid)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user, rank, h.clock.Now()))
}
