package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Bhargav-sunil/TaskManagement/internal/auth"
	apperrors "github.com/Bhargav-sunil/TaskManagement/internal/errors"
	"github.com/Bhargav-sunil/TaskManagement/internal/model"
	"github.com/Bhargav-sunil/TaskManagement/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
}

type authService struct {
	users repository.UserRepository
	jwt   *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwt *auth.JWTService) AuthService {
	return &authService{users: users, jwt: jwt}
}

// Register creates a self-service account. The role is always "user"; only an
// admin can create elevated accounts, through the user management path. The
// email pre-check is advisory, the unique index is what guarantees no two
// concurrent registrations share an email.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	taken, err := s.users.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, "", fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, "", apperrors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}
