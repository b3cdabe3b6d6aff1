package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskCompletion records a one-time task claim. The composite unique
// index is what closes the race between concurrent duplicate claims.
type TaskCompletion struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserFID     uint64    `gorm:"uniqueIndex:idx_user_task,priority:1;not null" json:"user_fid"`
	TaskID      string    `gorm:"size:50;uniqueIndex:idx_user_task,priority:2;not null" json:"task_id"`
	CompletedAt time.Time `gorm:"autoCreateTime" json:"completed_at"`
}

func (t *TaskCompletion) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
