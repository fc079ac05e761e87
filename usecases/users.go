package usecases

import (
	"billscan-server/entities"
	"billscan-server/repositories"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserUseCase struct {
	users repositories.UserRepository
}

func NewUserUseCase(users repositories.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// GetUser returns the public profile for an id.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entities.User, error) {
	if id == "" {
		return nil, validationErrorf("user id is required")
	}
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
