package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a tag for bills. Global defaults have a nil UserID; custom
// categories are scoped to one user.
type Category struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"category_id"`
	Name      string    `gorm:"not null" json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	IsDefault bool      `gorm:"index" json:"is_default"`
	UserID    *string   `gorm:"index;type:varchar(36)" json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
