package usecase

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/lifecycle"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
	mock_interfaces "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces/mocks"
)

var workNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func workItemUseCase(repo interfaces.IWorkItemRepository) *WorkItemUseCase {
	uc := NewWorkItemUseCase(repo)
	uc.clock = func() time.Time { return workNow }
	return uc
}

func reviewItem(id string, due time.Time) entities.WorkItem {
	return entities.WorkItem{
		ID:           id,
		Kind:         entities.WorkItemDocumentReview,
		AssigneeID:   "officer-1",
		AssigneeRole: entities.RoleOfficer,
		RefID:        "app-1",
		DueAt:        due,
		Status:       entities.WorkItemStatusOpen,
	}
}

func TestWorkItemUseCase_Create(t *testing.T) {
	t.Run("officer role required", func(t *testing.T) {
		uc := workItemUseCase(nil)
		_, err := uc.Create(context.Background(), applicant, reviewItem("", workNow.Add(time.Hour)))
		expectRejection(t, err, lifecycle.RejectionForbidden)
	})

	t.Run("due timestamp required", func(t *testing.T) {
		uc := workItemUseCase(nil)
		item := reviewItem("", time.Time{})
		_, err := uc.Create(context.Background(), officer, item)
		expectRejection(t, err, lifecycle.RejectionValidation)
	})

	t.Run("caller-supplied state is reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := workItemUseCase(repo)

		item := reviewItem("forged-id", workNow.Add(48*time.Hour))
		item.Status = entities.WorkItemStatusCompleted
		completed := workNow
		item.CompletedAt = &completed

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.WorkItem) (entities.WorkItem, error) {
				if saved.ID == "forged-id" {
					t.Fatalf("id must be reassigned")
				}
				if saved.Status != entities.WorkItemStatusOpen || saved.CompletedAt != nil {
					t.Fatalf("status must reset to open: %+v", saved)
				}
				return saved, nil
			},
		)

		if _, err := uc.Create(context.Background(), officer, item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkItemUseCase_Finish(t *testing.T) {
	t.Run("complete stamps the completion time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := workItemUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wi-1").Return(reviewItem("wi-1", workNow.Add(time.Hour)), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.WorkItem) (entities.WorkItem, error) {
				if item.Status != entities.WorkItemStatusCompleted {
					t.Fatalf("expected completed, got %s", item.Status)
				}
				if item.CompletedAt == nil || !item.CompletedAt.Equal(workNow) {
					t.Fatalf("completion time not stamped: %+v", item.CompletedAt)
				}
				return item, nil
			},
		)

		if _, err := uc.Complete(context.Background(), "wi-1", officer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancel leaves no completion time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := workItemUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wi-1").Return(reviewItem("wi-1", workNow.Add(time.Hour)), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.WorkItem) (entities.WorkItem, error) {
				if item.Status != entities.WorkItemStatusCancelled || item.CompletedAt != nil {
					t.Fatalf("unexpected finish state: %+v", item)
				}
				return item, nil
			},
		)

		if _, err := uc.Cancel(context.Background(), "wi-1", officer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("assignee may finish their own item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := workItemUseCase(repo)

		item := reviewItem("wi-1", workNow.Add(time.Hour))
		item.AssigneeID = "insp-1"
		item.AssigneeRole = entities.RoleInspector
		repo.EXPECT().GetByID(gomock.Any(), "wi-1").Return(item, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.WorkItem) (entities.WorkItem, error) { return saved, nil },
		)

		if _, err := uc.Complete(context.Background(), "wi-1", inspector); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("another assignee is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := workItemUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wi-1").Return(reviewItem("wi-1", workNow.Add(time.Hour)), nil)

		_, err := uc.Complete(context.Background(), "wi-1", inspector)
		expectRejection(t, err, lifecycle.RejectionForbidden)
	})

	t.Run("already finished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := workItemUseCase(repo)

		item := reviewItem("wi-1", workNow.Add(time.Hour))
		item.Status = entities.WorkItemStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "wi-1").Return(item, nil)

		_, err := uc.Complete(context.Background(), "wi-1", officer)
		expectRejection(t, err, lifecycle.RejectionValidation)
	})

	t.Run("stale write maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := workItemUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wi-1").Return(reviewItem("wi-1", workNow.Add(time.Hour)), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.WorkItem{}, interfaces.ErrVersionConflict)

		_, err := uc.Complete(context.Background(), "wi-1", officer)
		expectRejection(t, err, lifecycle.RejectionConflict)
	})
}

func TestWorkItemUseCase_Deadlines(t *testing.T) {
	t.Run("splits near-deadline from breached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := workItemUseCase(repo)

		comfortable := reviewItem("wi-far", workNow.Add(72*time.Hour))
		near := reviewItem("wi-near", workNow.Add(12*time.Hour))
		breached := reviewItem("wi-late", workNow.Add(-time.Hour))
		done := reviewItem("wi-done", workNow.Add(-2*time.Hour))
		done.Status = entities.WorkItemStatusCompleted

		repo.EXPECT().ListByAssignee(gomock.Any(), "officer-1").
			Return([]entities.WorkItem{comfortable, near, breached, done}, nil)

		report, err := uc.Deadlines(context.Background(), "officer-1", 24*time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.NearDeadline) != 1 || report.NearDeadline[0].ID != "wi-near" {
			t.Fatalf("unexpected near-deadline set: %+v", report.NearDeadline)
		}
		if len(report.Breached) != 1 || report.Breached[0].ID != "wi-late" {
			t.Fatalf("unexpected breached set: %+v", report.Breached)
		}
	})

	t.Run("non-positive threshold falls back to the default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := workItemUseCase(repo)

		near := reviewItem("wi-near", workNow.Add(23*time.Hour))
		repo.EXPECT().ListByAssignee(gomock.Any(), "officer-1").Return([]entities.WorkItem{near}, nil)

		report, err := uc.Deadlines(context.Background(), "officer-1", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.NearDeadline) != 1 {
			t.Fatalf("default 24h threshold should flag the item: %+v", report)
		}
	})

	t.Run("assignee id required", func(t *testing.T) {
		uc := workItemUseCase(nil)
		_, err := uc.Deadlines(context.Background(), "  ", time.Hour)
		expectRejection(t, err, lifecycle.RejectionValidation)
	})
}

func TestWorkItemUseCase_Stats(t *testing.T) {
	t.Run("inverted range", func(t *testing.T) {
		uc := workItemUseCase(nil)
		_, err := uc.Stats(context.Background(), workNow, workNow.Add(-time.Hour))
		expectRejection(t, err, lifecycle.RejectionValidation)
	})

	t.Run("rolls up by role and kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := workItemUseCase(repo)

		from := workNow.AddDate(0, 0, -7)
		to := workNow.AddDate(0, 0, 7)

		onTime := workNow.Add(-3 * time.Hour)
		completed := reviewItem("wi-1", workNow.Add(-2*time.Hour))
		completed.Status = entities.WorkItemStatusCompleted
		completed.CompletedAt = &onTime
		open := reviewItem("wi-2", workNow.Add(time.Hour))

		repo.EXPECT().ListDueBetween(gomock.Any(), from, to).
			Return([]entities.WorkItem{completed, open}, nil)

		stats, err := uc.Stats(context.Background(), from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stats) != 1 {
			t.Fatalf("expected one bucket, got %+v", stats)
		}
		if stats[0].CompletedOnTime != 1 || stats[0].Open != 1 {
			t.Fatalf("unexpected rollup: %+v", stats[0])
		}
	})
}
