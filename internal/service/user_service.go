package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Bhargav-sunil/TaskManagement/internal/auth"
	apperrors "github.com/Bhargav-sunil/TaskManagement/internal/errors"
	"github.com/Bhargav-sunil/TaskManagement/internal/model"
	"github.com/Bhargav-sunil/TaskManagement/internal/policy"
	"github.com/Bhargav-sunil/TaskManagement/internal/query"
	"github.com/Bhargav-sunil/TaskManagement/internal/repository"
)

// CreateUserInput is a validated admin user-creation payload.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput is a partial user update. Nil fields were not provided.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string
}

// UserService applies roster visibility and the user write rules.
type UserService interface {
	List(ctx context.Context, caller *model.User, filters query.UserFilters, page query.Pagination) ([]model.User, query.PageInfo, error)
	Create(ctx context.Context, input CreateUserInput) (*model.User, error)
	Update(ctx context.Context, caller *model.User, id uint, input UpdateUserInput) error
	Delete(ctx context.Context, caller *model.User, id uint) error
}

type userService struct {
	users      repository.UserRepository
	identities *auth.IdentityCache
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, identities *auth.IdentityCache) UserService {
	return &userService{users: users, identities: identities}
}

// List returns the caller's visible slice of the roster; non-admins only ever
// see their own row.
func (s *userService) List(ctx context.Context, caller *model.User, filters query.UserFilters, page query.Pagination) ([]model.User, query.PageInfo, error) {
	users, total, err := s.users.List(ctx, policy.UsersFor(caller), filters, page)
	if err != nil {
		return nil, query.PageInfo{}, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, query.NewPageInfo(page, total), nil
}

// Create inserts a user with a hashed password. The pre-check gives a clean
// error message; the unique index settles concurrent duplicates.
func (s *userService) Create(ctx context.Context, input CreateUserInput) (*model.User, error) {
	taken, err := s.users.EmailTaken(ctx, input.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update applies a partial update. Email uniqueness is re-checked against all
// other rows; a present password is re-hashed while an absent one leaves the
// stored hash untouched. A caller editing their own account cannot change
// their own role; the field is dropped silently.
func (s *userService) Update(ctx context.Context, caller *model.User, id uint, input UpdateUserInput) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if input.Email != nil {
		taken, err := s.users.EmailTaken(ctx, *input.Email, id)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return apperrors.ErrEmailTaken
		}
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Role != nil && caller.ID != id {
		fields["role"] = *input.Role
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		fields["password_hash"] = string(hash)
	}

	if len(fields) == 0 {
		return apperrors.ErrNoFields
	}
	fields["updated_at"] = time.Now()

	if err := s.users.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	s.identities.Invalidate(ctx, id)
	return nil
}

// Delete removes a user. Deleting your own account is refused for every role;
// task rows referencing the user are left in place and render with empty
// display names.
func (s *userService) Delete(ctx context.Context, caller *model.User, id uint) error {
	if caller.ID == id {
		return apperrors.ErrSelfDelete
	}

	affected, err := s.users.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	s.identities.Invalidate(ctx, id)
	return nil
}
