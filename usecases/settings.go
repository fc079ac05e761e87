package usecases

import (
	"billscan-server/entities"
	"billscan-server/repositories"
	"context"
	"errors"

	"gorm.io/gorm"
)

// settingsFields maps the request keys a settings patch may carry onto
// their column kinds. Anything else in the request body is ignored.
var settingsFields = map[string]string{
	"currency":                    "string",
	"appearance_mode":             "string",
	"default_category":            "string",
	"push_notifications_enabled":  "bool",
	"email_notifications_enabled": "bool",
	"bill_reminders_enabled":      "bool",
}

type SettingsUseCase struct {
	settings repositories.SettingsRepository
}

func NewSettingsUseCase(settings repositories.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

func (uc *SettingsUseCase) GetSettings(ctx context.Context, userID string) (*entities.UserSettings, error) {
	if userID == "" {
		return nil, validationErrorf("user id is required")
	}
	settings, err := uc.settings.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies the recognized subset of the patch. An empty
// recognized set is a validation error and mutates nothing; updated_at is
// bumped on every applied patch.
func (uc *SettingsUseCase) UpdateSettings(ctx context.Context, userID string, patch map[string]interface{}) error {
	if userID == "" {
		return validationErrorf("user id is required")
	}

	fields := make(map[string]interface{})
	for key, kind := range settingsFields {
		value, ok := patch[key]
		if !ok {
			continue
		}
		switch kind {
		case "string":
			s, ok := value.(string)
			if !ok {
				return validationErrorf("Field %q must be a string", key)
			}
			fields[key] = s
		case "bool":
			b, ok := value.(bool)
			if !ok {
				return validationErrorf("Field %q must be a boolean", key)
			}
			fields[key] = b
		}
	}

	if len(fields) == 0 {
		return validationErrorf("No fields to update")
	}

	return uc.settings.Update(ctx, userID, fields)
}
