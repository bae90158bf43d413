package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Bhargav-sunil/TaskManagement/internal/auth"
	apperrors "github.com/Bhargav-sunil/TaskManagement/internal/errors"
	"github.com/Bhargav-sunil/TaskManagement/internal/model"
	"github.com/Bhargav-sunil/TaskManagement/internal/query"
)

// newUserService builds the service with a no-op identity cache; the cache
// wrapper treats a missing Redis client as a permanent miss.
func newUserService(repo *MockUserRepository) UserService {
	return NewUserService(repo, auth.NewIdentityCache(nil))
}

func TestUserService_Create(t *testing.T) {
	t.Run("duplicate email rejected on pre-check", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("EmailTaken", mock.Anything, "taken@example.com", uint(0)).Return(true, nil)

		svc := newUserService(mockRepo)
		user, err := svc.Create(context.Background(), CreateUserInput{
			Name: "Jane Doe", Email: "taken@example.com", Password: "Sup3rSecret@",
		})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		assert.Nil(t, user)
	})

	t.Run("unique index settles a concurrent duplicate", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("EmailTaken", mock.Anything, mock.Anything, uint(0)).Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)

		svc := newUserService(mockRepo)
		_, err := svc.Create(context.Background(), CreateUserInput{
			Name: "Jane Doe", Email: "racy@example.com", Password: "Sup3rSecret@",
		})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})

	t.Run("password is stored hashed and role defaults to user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("EmailTaken", mock.Anything, mock.Anything, uint(0)).Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := newUserService(mockRepo)
		user, err := svc.Create(context.Background(), CreateUserInput{
			Name: "Jane Doe", Email: "jane@example.com", Password: "Sup3rSecret@",
		})

		require.NoError(t, err)
		assert.Equal(t, model.RoleUser, user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Sup3rSecret@")))
	})

	t.Run("admin role honored when requested", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("EmailTaken", mock.Anything, mock.Anything, uint(0)).Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := newUserService(mockRepo)
		user, err := svc.Create(context.Background(), CreateUserInput{
			Name: "Jane Doe", Email: "jane@example.com", Password: "Sup3rSecret@", Role: model.RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
	})
}

func TestUserService_Update(t *testing.T) {
	target := &model.User{ID: 9, Name: "Old Name", Email: "old@example.com", Role: model.RoleUser}

	t.Run("missing row is not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := newUserService(mockRepo)
		err := svc.Update(context.Background(), adminUser, 9, UpdateUserInput{Name: strp("New Name")})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("email uniqueness checked against other rows", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(target, nil)
		mockRepo.On("EmailTaken", mock.Anything, "new@example.com", uint(9)).Return(true, nil)

		svc := newUserService(mockRepo)
		err := svc.Update(context.Background(), adminUser, 9, UpdateUserInput{Email: strp("new@example.com")})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})

	t.Run("empty input fails with no fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(target, nil)

		svc := newUserService(mockRepo)
		err := svc.Update(context.Background(), adminUser, 9, UpdateUserInput{})

		assert.ErrorIs(t, err, apperrors.ErrNoFields)
	})

	t.Run("self role change is dropped silently", func(t *testing.T) {
		self := &model.User{ID: 9, Role: model.RoleUser}
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(target, nil)
		mockRepo.On("Update", mock.Anything, uint(9), mock.MatchedBy(func(fields map[string]interface{}) bool {
			_, hasRole := fields["role"]
			return !hasRole && fields["name"] == "New Name"
		})).Return(nil)

		svc := newUserService(mockRepo)
		err := svc.Update(context.Background(), self, 9, UpdateUserInput{
			Name: strp("New Name"),
			Role: strp(model.RoleAdmin),
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin may change another user's role", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(target, nil)
		mockRepo.On("Update", mock.Anything, uint(9), mock.MatchedBy(func(fields map[string]interface{}) bool {
			return fields["role"] == model.RoleAdmin
		})).Return(nil)

		svc := newUserService(mockRepo)
		err := svc.Update(context.Background(), adminUser, 9, UpdateUserInput{Role: strp(model.RoleAdmin)})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("provided password is re-hashed", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(target, nil)
		mockRepo.On("Update", mock.Anything, uint(9), mock.MatchedBy(func(fields map[string]interface{}) bool {
			hash, ok := fields["password_hash"].(string)
			if !ok || hash == "NewSecret1@" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("NewSecret1@")) == nil
		})).Return(nil)

		svc := newUserService(mockRepo)
		err := svc.Update(context.Background(), adminUser, 9, UpdateUserInput{Password: strp("NewSecret1@")})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("absent password leaves the stored hash untouched", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(target, nil)
		mockRepo.On("Update", mock.Anything, uint(9), mock.MatchedBy(func(fields map[string]interface{}) bool {
			_, hasHash := fields["password_hash"]
			return !hasHash
		})).Return(nil)

		svc := newUserService(mockRepo)
		err := svc.Update(context.Background(), adminUser, 9, UpdateUserInput{Name: strp("New Name")})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("self delete refused for admins too", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := newUserService(mockRepo)
		err := svc.Delete(context.Background(), adminUser, adminUser.ID)

		assert.ErrorIs(t, err, apperrors.ErrSelfDelete)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(9)).Return(int64(0), nil)

		svc := newUserService(mockRepo)
		err := svc.Delete(context.Background(), adminUser, 9)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("delete succeeds", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(9)).Return(int64(1), nil)

		svc := newUserService(mockRepo)
		err := svc.Delete(context.Background(), adminUser, 9)

		assert.NoError(t, err)
	})
}

func TestUserService_List(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything, mock.Anything, query.UserFilters{}, query.Pagination{Page: 1, Limit: 10}).
		Return([]model.User{{ID: 7, Name: "Jane"}}, int64(1), nil)

	svc := newUserService(mockRepo)
	users, pageInfo, err := svc.List(context.Background(), plainUser, query.UserFilters{}, query.Pagination{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(1), pageInfo.Pages)
}
