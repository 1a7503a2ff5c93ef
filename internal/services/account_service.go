package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/cycleadvisor/internal/models"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidDisplayName = errors.New("invalid display name")
)

const maxDisplayNameLength = 80

type AccountUserRepository interface {
	FindByID(ctx context.Context, userID uint) (models.User, bool, error)
	Create(ctx context.Context, user *models.User) error
	ListIDs(ctx context.Context) ([]uint, error)
}

type AccountService struct {
	users AccountUserRepository
}

func NewAccountService(users AccountUserRepository) *AccountService {
	return &AccountService{users: users}
}

func (service *AccountService) CreateUser(ctx context.Context, displayName string) (models.User, error) {
	displayName = strings.TrimSpace(displayName)
	if len(displayName) > maxDisplayNameLength {
		return models.User{}, ErrInvalidDisplayName
	}

	user := models.User{DisplayName: displayName}
	if err := service.users.Create(ctx, &user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (service *AccountService) RequireUser(ctx context.Context, userID uint) (models.User, error) {
	user, found, err := service.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("load user %d: %w", userID, err)
	}
	if !found {
		return models.User{}, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
	}
	return user, nil
}

func (service *AccountService) ListUserIDs(ctx context.Context) ([]uint, error) {
	return service.users.ListIDs(ctx)
}
