package usecase

import (
	"context"
	"errors"

	"lesson-scheduler/internal/domain/user"
	"lesson-scheduler/internal/pkg/jwt"
	"lesson-scheduler/internal/pkg/password"
	"lesson-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error) {
	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(userView.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	err = a.userRepo.UpdateLastLogin(ctx, userView.ID)
	if err != nil {
		return "", nil, err
	}

	return token, userView, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		return nil, ErrUserNotFound
	}

	if userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	err = password.ComparePassword(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	userView, err := a.userRepo.FindByID(ctx, userID)
	if err != nil || userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	return userView, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
