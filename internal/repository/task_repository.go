package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Bhargav-sunil/TaskManagement/internal/model"
	"github.com/Bhargav-sunil/TaskManagement/internal/policy"
	"github.com/Bhargav-sunil/TaskManagement/internal/query"
)

// TaskRepository defines task persistence operations. Read operations take a
// visibility scope which is applied before any filter.
type TaskRepository interface {
	List(ctx context.Context, scope policy.Scope, filters query.TaskFilters, page query.Pagination) ([]model.Task, int64, error)
	FindScoped(ctx context.Context, scope policy.Scope, id uint) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// withNames joins owner and creator display names onto task rows. LEFT JOINs
// so rows referencing deleted users still come back, with empty names.
func withNames(db *gorm.DB) *gorm.DB {
	return db.
		Select("tasks.*, owners.name AS user_name, creators.name AS created_by_name").
		Joins("LEFT JOIN users owners ON owners.id = tasks.user_id").
		Joins("LEFT JOIN users creators ON creators.id = tasks.created_by")
}

// List returns one page of visible tasks plus the total count under the same
// scope and filters, ordered newest first.
func (r *taskRepository) List(ctx context.Context, scope policy.Scope, filters query.TaskFilters, page query.Pagination) ([]model.Task, int64, error) {
	scoped := func(db *gorm.DB) *gorm.DB {
		return filters.Apply(scope(db))
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Scopes(scoped).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Scopes(withNames, scoped).
		Order("tasks.created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// FindScoped returns the task only when the scope admits it; an out-of-scope
// row reads the same as an absent one.
func (r *taskRepository) FindScoped(ctx context.Context, scope policy.Scope, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Scopes(withNames, scope).
		Where("tasks.id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Update applies the given column map to one row.
func (r *taskRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a row and reports how many rows were affected.
func (r *taskRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	return res.RowsAffected, res.Error
}
