package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill is a single recorded expense tied to a user, vendor, amount and date.
type Bill struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"bill_id"`
	UserID      string    `gorm:"index;not null;type:varchar(36)" json:"user_id"`
	VendorName  string    `gorm:"not null" json:"vendor_name"`
	Amount      float64   `gorm:"not null" json:"amount"`
	BillDate    time.Time `gorm:"index" json:"bill_date"`
	CategoryID  *string   `gorm:"index;type:varchar(36)" json:"category_id"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	Currency    string    `json:"currency"`
	IsPaid      bool      `json:"is_paid"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

// BillWithCategory is a Bill joined with the name and color of its category,
// the shape every bill read path returns.
type BillWithCategory struct {
	Bill
	CategoryName  *string `json:"category_name"`
	CategoryColor *string `json:"category_color"`
}
