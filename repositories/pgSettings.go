package repositories

import (
	"billscan-server/db"
	"billscan-server/entities"
	"context"
)

type settingsPgRepository struct {
	db db.Database
}

func NewSettingsPgRepository(database db.Database) SettingsRepository {
	return &settingsPgRepository{db: database}
}

func (r *settingsPgRepository) Create(ctx context.Context, settings *entities.UserSettings) error {
	return r.db.GetDB().WithContext(ctx).Create(settings).Error
}

func (r *settingsPgRepository) GetByUserID(ctx context.Context, userID string) (*entities.UserSettings, error) {
	var settings entities.UserSettings
	err := r.db.GetDB().WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsPgRepository) Update(ctx context.Context, userID string, fields map[string]interface{}) error {
	// Updates on a model with an UpdatedAt field bumps updated_at as well.
	return r.db.GetDB().WithContext(ctx).
		Model(&entities.UserSettings{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}
