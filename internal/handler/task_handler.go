package handler

import (
	"net/http"

	"github.com/cubehq/dailycube-backend/internal/dto"
	"github.com/cubehq/dailycube-backend/internal/service"
	"github.com/cubehq/dailycube-backend/pkg/response"
	"github.com/cubehq/dailycube-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	service service.TaskService
}

func NewTaskHandler(svc service.TaskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

func (h *TaskHandler) ListCompleted(c *gin.Context) {
	fid, err := response.GetFID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	taskIDs, err := h.service.ListCompleted(c.Request.Context(), fid)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if taskIDs == nil {
		taskIDs = []string{}
	}
	c.JSON(http.StatusOK, dto.CompletedTasksResponse{TaskIDs: taskIDs})
}

func (h *TaskHandler) ClaimTask(c *gin.Context) {
	var req dto.ClaimTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	newScore, err := h.service.Claim(c.Request.Context(), req.FID, req.TaskID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClaimTaskResponse{Success: true, NewScore: newScore})
}
