package dto

type ClaimTaskRequest struct {
	FID    uint64 `json:"id" binding:"required"`
	TaskID string `json:"task_id" binding:"required,max=50"`
}

type ClaimTaskResponse struct {
	Success  bool  `json:"success"`
	NewScore int64 `json:"new_score"`
}

type CompletedTasksResponse struct {
	TaskIDs []string `json:"task_ids"`
}
