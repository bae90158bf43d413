package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/Bhargav-sunil/TaskManagement/internal/errors"
	"github.com/Bhargav-sunil/TaskManagement/internal/model"
	"github.com/Bhargav-sunil/TaskManagement/internal/policy"
	"github.com/Bhargav-sunil/TaskManagement/internal/query"
	"github.com/Bhargav-sunil/TaskManagement/internal/repository"
	"github.com/Bhargav-sunil/TaskManagement/internal/validation"
)

// CreateTaskInput is a validated task creation payload. OwnerID is the
// requested assignee; zero means unset.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	Status      string
	DueDate     *time.Time
	OwnerID     uint
}

// UpdateTaskInput is a partial task update. Nil fields were not provided and
// are left untouched; a present empty description or due date clears the
// column.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *string
	Status      *string
	DueDate     *string
	OwnerID     *uint
}

// TaskService applies the visibility and write rules on top of the repository.
type TaskService interface {
	List(ctx context.Context, caller *model.User, filters query.TaskFilters, page query.Pagination) ([]model.Task, query.PageInfo, error)
	Get(ctx context.Context, caller *model.User, id uint) (*model.Task, error)
	Create(ctx context.Context, caller *model.User, input CreateTaskInput) (*model.Task, error)
	Update(ctx context.Context, caller *model.User, id uint, input UpdateTaskInput) error
	Delete(ctx context.Context, caller *model.User, id uint) error
}

type taskService struct {
	tasks repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

// List returns the caller's visible tasks page plus the pagination envelope.
func (s *taskService) List(ctx context.Context, caller *model.User, filters query.TaskFilters, page query.Pagination) ([]model.Task, query.PageInfo, error) {
	tasks, total, err := s.tasks.List(ctx, policy.TasksFor(caller), filters, page)
	if err != nil {
		return nil, query.PageInfo{}, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, query.NewPageInfo(page, total), nil
}

// Get returns a visible task by id. A row that exists but is outside the
// caller's scope reads as not found.
func (s *taskService) Get(ctx context.Context, caller *model.User, id uint) (*model.Task, error) {
	task, err := s.tasks.FindScoped(ctx, policy.TasksFor(caller), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

// Create inserts a task. Only an admin may assign someone else; any owner a
// non-admin supplies is overridden with their own id. The creator is always
// the caller.
func (s *taskService) Create(ctx context.Context, caller *model.User, input CreateTaskInput) (*model.Task, error) {
	ownerID := caller.ID
	if caller.IsAdmin() && input.OwnerID != 0 {
		ownerID = input.OwnerID
	}

	status := input.Status
	if status == "" {
		status = model.StatusPending
	}
	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		UserID:      ownerID,
		CreatedBy:   caller.ID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update applies a partial update to a visible task. Reassignment is accepted
// only from an admin; a non-admin's owner field is dropped without error. An
// update carrying no recognized field fails rather than touching the row.
func (s *taskService) Update(ctx context.Context, caller *model.User, id uint, input UpdateTaskInput) error {
	if _, err := s.tasks.FindScoped(ctx, policy.TasksFor(caller), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("find task: %w", err)
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Priority != nil {
		fields["priority"] = *input.Priority
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			fields["due_date"] = nil
		} else {
			parsed, err := validation.ParseDueDate(*input.DueDate)
			if err != nil {
				return apperrors.NewValidationError([]string{"Due date must be a valid date"})
			}
			fields["due_date"] = parsed
		}
	}
	if input.OwnerID != nil && caller.IsAdmin() {
		fields["user_id"] = *input.OwnerID
	}

	if len(fields) == 0 {
		return apperrors.ErrNoFields
	}
	fields["updated_at"] = time.Now()

	if err := s.tasks.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete removes a task. Non-admins cannot delete at all, their own tasks
// included. Admins see everything, so no scoped lookup is needed; zero rows
// affected means the task never existed.
func (s *taskService) Delete(ctx context.Context, caller *model.User, id uint) error {
	if !caller.IsAdmin() {
		return apperrors.ErrForbidden
	}

	affected, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}
