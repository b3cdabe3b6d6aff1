package repository

import (
	"context"
	"time"

	"github.com/cubehq/dailycube-backend/internal/model"
	"gorm.io/gorm"
)

type TaskRepository interface {
	ListCompleted(ctx context.Context, fid uint64) ([]string, error)
	// Claim inserts the completion and credits the bonus in one
	// transaction; a duplicate (user, task) pair surfaces as
	// gorm.ErrDuplicatedKey from the unique index.
	Claim(ctx context.Context, fid uint64, taskID string, bonus int64, now time.Time) (int64, error)
	HasCompleted(ctx context.Context, fid uint64, taskID string) (bool, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) ListCompleted(ctx context.Context, fid uint64) ([]string, error) {
	var taskIDs []string
	err := r.db.WithContext(ctx).Model(&model.TaskCompletion{}).
		Where("user_fid = ?", fid).
		Order("completed_at asc").
		Pluck("task_id", &taskIDs).Error
	return taskIDs, err
}

func (r *taskRepository) Claim(ctx context.Context, fid uint64, taskID string, bonus int64, now time.Time) (int64, error) {
	var newScore int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		completion := model.TaskCompletion{UserFID: fid, TaskID: taskID}
		if err := tx.Create(&completion).Error; err != nil {
			return err
		}

		res := tx.Model(&model.User{}).
			Where("fid = ?", fid).
			Updates(map[string]interface{}{
				"score":      gorm.Expr("score + ?", bonus),
				"updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&model.User{}).
			Where("fid = ?", fid).
			Select("score").
			Scan(&newScore).Error
	})
	if err != nil {
		return 0, err
	}

	return newScore, nil
}

func (r *taskRepository) HasCompleted(ctx context.Context, fid uint64, taskID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaskCompletion{}).
		Where("user_fid = ? AND task_id = ?", fid, taskID).
		Count(&count).Error
	return count > 0, err
}
