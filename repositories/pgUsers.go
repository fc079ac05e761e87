package repositories

import (
	"billscan-server/db"
	"billscan-server/entities"
	"context"
	"time"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(ctx context.Context, user *entities.User) error {
	return r.db.GetDB().WithContext(ctx).Create(user).Error
}

func (r *userPgRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetActiveByIdentifier(ctx context.Context, identifier string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().WithContext(ctx).
		Where("(email = ? OR username = ?) AND is_active = ?", identifier, identifier, true).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) UpdateLastLogin(ctx context.Context, id string, when time.Time) error {
	return r.db.GetDB().WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Update("last_login", when).Error
}
