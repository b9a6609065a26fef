package usecase

import (
	"context"
	"errors"

	"courtdesk/internal/domain/account"
	"courtdesk/internal/pkg/jwt"
	"courtdesk/internal/pkg/password"
	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountInactive      = errors.New("account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type AuthUseCase interface {
	Login(ctx context.Context, credentials account.Credentials) (string, *readmodel.AccountRM, error)
	GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*readmodel.AccountRM, error)
	ValidateToken(tokenString string) (uuid.UUID, account.Role, error)
}

type authUseCaseImpl struct {
	accountRepo AccountRepository
	jwtService  *jwt.Service
}

func NewAuthUseCase(accountRepo AccountRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials account.Credentials) (string, *readmodel.AccountRM, error) {
	rm, err := a.validateAccount(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	role, err := account.NewRole(rm.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(rm.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.accountRepo.UpdateLastLogin(ctx, rm.ID); err != nil {
		return "", nil, err
	}

	return token, rm, nil
}

func (a *authUseCaseImpl) validateAccount(ctx context.Context, credentials account.Credentials) (*readmodel.AccountRM, error) {
	rm, hashedPassword, err := a.accountRepo.FindAuthByEmail(ctx, credentials.Email().Value())
	if err != nil || rm == nil {
		return nil, ErrAccountNotFound
	}

	if !rm.IsActive {
		return nil, ErrAccountInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return rm, nil
}

func (a *authUseCaseImpl) GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*readmodel.AccountRM, error) {
	rm, err := a.accountRepo.FindByID(ctx, nil, accountID)
	if err != nil || rm == nil {
		return nil, ErrAccountNotFound
	}

	if !rm.IsActive {
		return nil, ErrAccountInactive
	}

	return rm, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, account.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := account.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.AccountID, role, nil
}
