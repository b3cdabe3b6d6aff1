package handler

import (
	"net/http"
	"strconv"

	"github.com/cubehq/dailycube-backend/internal/dto"
	"github.com/cubehq/dailycube-backend/internal/model"
	"github.com/cubehq/dailycube-backend/internal/service"
	"github.com/cubehq/dailycube-backend/pkg/apperror"
	"github.com/cubehq/dailycube-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	service service.LeaderboardService
}

func NewLeaderboardHandler(svc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: svc}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	metric, ok := model.ParseRankMetric(c.Query("sort"))
	if !ok {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	var viewer *uint64
	if raw := c.Query("id"); raw != "" {
		if fid, err := strconv.ParseUint(raw, 10, 64); err == nil && fid > 0 {
			viewer = &fid
		}
	}

	page, err := h.service.GetLeaderboard(c.Request.Context(), metric, limit, offset, viewer)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp := dto.LeaderboardResponse{
		Entries: make([]dto.LeaderboardEntry, 0, len(page.Entries)),
		Total:   page.Total,
		Limit:   limit,
		Offset:  offset,
	}
	for _, entry := range page.Entries {
		resp.Entries = append(resp.Entries, dto.NewLeaderboardEntry(entry))
	}
	if page.Viewer != nil {
		pinned := dto.NewLeaderboardEntry(*page.Viewer)
		resp.Viewer = &pinned
	}

	c.JSON(http.StatusOK, resp)
}
