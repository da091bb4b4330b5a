package tasks_test

import (
	"context"
	"errors"
	"testing"

	"staffboard/internal/config"
	"staffboard/internal/models"
	"staffboard/internal/service/tasks"
	"staffboard/internal/store"
	"staffboard/internal/store/memory"
)

func newService(t *testing.T) *tasks.Service {
	t.Helper()

	employees, err := memory.NewEmployeeStore([]config.SeedEmployee{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "123"},
	})
	if err != nil {
		t.Fatalf("NewEmployeeStore() err = %v", err)
	}
	return tasks.NewService(memory.NewTaskStore(), employees)
}

func TestAssign(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	task, err := svc.Assign(ctx, 1, "Fix bug", "desc")
	if err != nil {
		t.Fatalf("Assign() err = %v, want nil", err)
	}
	if task.Status != models.StatusPending {
		t.Fatalf("Assign() status = %s, want %s", task.Status, models.StatusPending)
	}
	if task.EmployeeID != 1 {
		t.Fatalf("Assign() employee id = %d, want 1", task.EmployeeID)
	}
	if task.ID <= 0 {
		t.Fatalf("Assign() id = %d, want > 0", task.ID)
	}
	if task.AssignedAt.IsZero() {
		t.Fatal("Assign() assigned at is zero")
	}
}

func TestAssign_EmptyTitle(t *testing.T) {
	svc := newService(t)

	if _, err := svc.Assign(context.Background(), 1, "   ", "d"); !errors.Is(err, tasks.ErrValidation) {
		t.Fatalf("Assign() err = %v, want %v", err, tasks.ErrValidation)
	}
}

func TestAssign_UnknownEmployee(t *testing.T) {
	svc := newService(t)

	if _, err := svc.Assign(context.Background(), 42, "t", "d"); !errors.Is(err, tasks.ErrValidation) {
		t.Fatalf("Assign() err = %v, want %v", err, tasks.ErrValidation)
	}
}

func TestLifecycle_RejectThenResubmitThenApprove(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	task, err := svc.Assign(ctx, 1, "t", "d")
	if err != nil {
		t.Fatalf("Assign() err = %v", err)
	}

	if task, err = svc.Submit(ctx, task.ID); err != nil {
		t.Fatalf("Submit() err = %v", err)
	}
	if task.Status != models.StatusInReview {
		t.Fatalf("Submit() status = %s, want %s", task.Status, models.StatusInReview)
	}

	if task, err = svc.Reject(ctx, task.ID); err != nil {
		t.Fatalf("Reject() err = %v", err)
	}
	if task.Status != models.StatusFailed {
		t.Fatalf("Reject() status = %s, want %s", task.Status, models.StatusFailed)
	}

	if task, err = svc.Resubmit(ctx, task.ID); err != nil {
		t.Fatalf("Resubmit() err = %v", err)
	}
	if task.Status != models.StatusInReview {
		t.Fatalf("Resubmit() status = %s, want %s", task.Status, models.StatusInReview)
	}

	if task, err = svc.Approve(ctx, task.ID); err != nil {
		t.Fatalf("Approve() err = %v", err)
	}
	if task.Status != models.StatusCompleted {
		t.Fatalf("Approve() status = %s, want %s", task.Status, models.StatusCompleted)
	}
}

func TestApproveAndReject_RequireInReview(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	task, _ := svc.Assign(ctx, 1, "t", "d")

	if _, err := svc.Approve(ctx, task.ID); !errors.Is(err, tasks.ErrInvalidTransition) {
		t.Fatalf("Approve() on pending err = %v, want %v", err, tasks.ErrInvalidTransition)
	}
	if _, err := svc.Reject(ctx, task.ID); !errors.Is(err, tasks.ErrInvalidTransition) {
		t.Fatalf("Reject() on pending err = %v, want %v", err, tasks.ErrInvalidTransition)
	}
}

func TestResubmit_RequiresFailed(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	task, _ := svc.Assign(ctx, 1, "t", "d")

	if _, err := svc.Resubmit(ctx, task.ID); !errors.Is(err, tasks.ErrInvalidTransition) {
		t.Fatalf("Resubmit() on pending err = %v, want %v", err, tasks.ErrInvalidTransition)
	}

	if _, err := svc.Submit(ctx, task.ID); err != nil {
		t.Fatalf("Submit() err = %v", err)
	}
	if _, err := svc.Resubmit(ctx, task.ID); !errors.Is(err, tasks.ErrInvalidTransition) {
		t.Fatalf("Resubmit() on in_review err = %v, want %v", err, tasks.ErrInvalidTransition)
	}
}

func TestSubmit_FromFailed(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	task, _ := svc.Assign(ctx, 1, "t", "d")
	_, _ = svc.Submit(ctx, task.ID)
	_, _ = svc.Reject(ctx, task.ID)

	updated, err := svc.Submit(ctx, task.ID)
	if err != nil {
		t.Fatalf("Submit() from failed err = %v, want nil", err)
	}
	if updated.Status != models.StatusInReview {
		t.Fatalf("Submit() status = %s, want %s", updated.Status, models.StatusInReview)
	}
}

func TestCompleted_IsTerminal(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	task, _ := svc.Assign(ctx, 1, "t", "d")
	_, _ = svc.Submit(ctx, task.ID)
	if _, err := svc.Approve(ctx, task.ID); err != nil {
		t.Fatalf("Approve() err = %v", err)
	}

	ops := map[string]func(context.Context, int64) (*models.Task, error){
		"Submit":   svc.Submit,
		"Resubmit": svc.Resubmit,
		"Approve":  svc.Approve,
		"Reject":   svc.Reject,
	}
	for name, op := range ops {
		if _, err := op(ctx, task.ID); !errors.Is(err, tasks.ErrInvalidTransition) {
			t.Fatalf("%s() on completed err = %v, want %v", name, err, tasks.ErrInvalidTransition)
		}
	}

	got, err := svc.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID() err = %v", err)
	}
	if got.Status != models.StatusCompleted {
		t.Fatalf("status after failed transitions = %s, want %s", got.Status, models.StatusCompleted)
	}
}

func TestTransitions_UnknownTask(t *testing.T) {
	svc := newService(t)

	if _, err := svc.Submit(context.Background(), 777); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Submit() err = %v, want %v", err, store.ErrNotFound)
	}
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	t1, _ := svc.Assign(ctx, 1, "a", "")
	t2, _ := svc.Assign(ctx, 1, "b", "")
	_, _ = svc.Assign(ctx, 1, "c", "")

	_, _ = svc.Submit(ctx, t1.ID)
	_, _ = svc.Approve(ctx, t1.ID)
	_, _ = svc.Submit(ctx, t2.ID)
	_, _ = svc.Reject(ctx, t2.ID)

	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() err = %v, want nil", err)
	}
	want := models.Summary{Pending: 1, Completed: 1, Failed: 1, AssignedToday: 3, Total: 3}
	if sum != want {
		t.Fatalf("Summary() = %+v, want %+v", sum, want)
	}
}
