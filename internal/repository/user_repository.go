package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Bhargav-sunil/TaskManagement/internal/model"
	"github.com/Bhargav-sunil/TaskManagement/internal/policy"
	"github.com/Bhargav-sunil/TaskManagement/internal/query"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	List(ctx context.Context, scope policy.Scope, filters query.UserFilters, page query.Pagination) ([]model.User, int64, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// List returns one page of visible users plus the total under the same scope
// and filters, ordered by id. The password hash column is never selected.
func (r *userRepository) List(ctx context.Context, scope policy.Scope, filters query.UserFilters, page query.Pagination) ([]model.User, int64, error) {
	scoped := func(db *gorm.DB) *gorm.DB {
		return filters.Apply(scope(db))
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Scopes(scoped).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("id, name, email, role, created_at").
		Scopes(scoped).
		Order("users.id ASC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailTaken reports whether another user already holds the email. Pass
// excludeID 0 to check against all rows.
func (r *userRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	db := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update applies the given column map to one row.
func (r *userRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a row and reports how many rows were affected.
func (r *userRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	return res.RowsAffected, res.Error
}
