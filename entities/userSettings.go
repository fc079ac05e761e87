package entities

import "time"

// UserSettings is the per-user preference record, one row per user.
type UserSettings struct {
	UserID                    string    `gorm:"primaryKey;type:varchar(36)" json:"user_id"`
	Currency                  string    `json:"currency"`
	AppearanceMode            string    `json:"appearance_mode"`
	DefaultCategory           string    `json:"default_category"`
	PushNotificationsEnabled  bool      `json:"push_notifications_enabled"`
	EmailNotificationsEnabled bool      `json:"email_notifications_enabled"`
	BillRemindersEnabled      bool      `json:"bill_reminders_enabled"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

func (UserSettings) TableName() string { return "user_settings" }

// DefaultSettings returns the settings row created for a fresh account.
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:                    userID,
		Currency:                  "USD",
		AppearanceMode:            "system",
		DefaultCategory:           "Uncategorized",
		PushNotificationsEnabled:  true,
		EmailNotificationsEnabled: true,
		BillRemindersEnabled:      true,
	}
}
