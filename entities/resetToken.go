package entities

import "time"

// PasswordResetToken is a single-use credential permitting one password
// change. The user id is the primary key, so a user never holds more than
// one live token (a new request overwrites the old row).
type PasswordResetToken struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
