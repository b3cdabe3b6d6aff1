package service

import (
	"context"
	"errors"

	"github.com/cubehq/dailycube-backend/internal/repository"
	"github.com/cubehq/dailycube-backend/pkg/apperror"
	"gorm.io/gorm"
)

const (
	TaskInviteFriend  = "invite_friend"
	TaskConnectWallet = "connect_wallet"
	TaskAddApp        = "add_app"

	// TaskBonusPoints is the flat score credit per completed task.
	TaskBonusPoints = 10
)

type TaskService interface {
	ListCompleted(ctx context.Context, fid uint64) ([]string, error)
	// Claim records a one-time completion and credits the bonus.
	// Returns the updated score.
	Claim(ctx context.Context, fid uint64, taskID string) (int64, error)
}

type taskService struct {
	tasks         repository.TaskRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
	clock         Clock
}

func NewTaskService(tasks repository.TaskRepository, users repository.UserRepository, notifications repository.NotificationRepository, clock Clock) TaskService {
	return &taskService{
		tasks:         tasks,
		users:         users,
		notifications: notifications,
		clock:         clock,
	}
}

func (s *taskService) ListCompleted(ctx context.Context, fid uint64) ([]string, error) {
	return s.tasks.ListCompleted(ctx, fid)
}

func (s *taskService) Claim(ctx context.Context, fid uint64, taskID string) (int64, error) {
	user, err := s.users.FindByFID(ctx, fid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperror.ErrNotFound
		}
		return 0, err
	}

	// A finished task stays finished even if its condition no longer
	// holds, so the completion check comes before eligibility. The
	// unique index still closes the race between concurrent claims.
	done, err := s.tasks.HasCompleted(ctx, fid, taskID)
	if err != nil {
		return 0, err
	}
	if done {
		return 0, apperror.ErrTaskCompleted
	}

	eligible, err := s.checkEligibility(ctx, fid, taskID, user.PrimaryAddress)
	if err != nil {
		return 0, err
	}
	if !eligible {
		return 0, apperror.ErrNotEligible
	}

	newScore, err := s.tasks.Claim(ctx, fid, taskID, TaskBonusPoints, s.clock.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperror.ErrTaskCompleted
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperror.ErrNotFound
		}
		return 0, err
	}

	return newScore, nil
}

func (s *taskService) checkEligibility(ctx context.Context, fid uint64, taskID string, primaryAddress *string) (bool, error) {
	switch taskID {
	case TaskInviteFriend:
		count, err := s.users.CountReferrals(ctx, fid)
		if err != nil {
			return false, err
		}
		return count > 0, nil

	case TaskConnectWallet:
		return primaryAddress != nil && *primaryAddress != "", nil

	case TaskAddApp:
		_, err := s.notifications.FindByFID(ctx, fid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}

	return false, apperror.ErrInvalidInput
}
