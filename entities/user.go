package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account in the bill scanner system.
type User struct {
	ID            string     `gorm:"primaryKey;type:varchar(36)" json:"user_id"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	Username      string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash  string     `gorm:"not null" json:"-"`
	FullName      string     `json:"full_name"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLogin     *time.Time `json:"last_login"`
	IsActive      bool       `json:"is_active"`
	EmailVerified bool       `json:"email_verified"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
