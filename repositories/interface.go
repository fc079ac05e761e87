package repositories

import (
	"billscan-server/entities"
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	// GetActiveByIdentifier matches an active user by email or username.
	GetActiveByIdentifier(ctx context.Context, identifier string) (*entities.User, error)
	UpdateLastLogin(ctx context.Context, id string, when time.Time) error
}

type PasswordResetTokenRepository interface {
	// Upsert stores the token, replacing any previous token for the same user.
	Upsert(ctx context.Context, token *entities.PasswordResetToken) error
	// Consume atomically sets the owner's password hash and deletes the
	// token. Returns gorm.ErrRecordNotFound when no unexpired row matches.
	Consume(ctx context.Context, token string, newPasswordHash string) error
}

// BillFilter is the set of optional predicates for listing bills. All
// supplied predicates AND together; zero values mean "not filtered".
type BillFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID string
	Vendor     string // case-insensitive substring match
	Limit      int    // defaults to 50 when <= 0
	Offset     int
}

type BillRepository interface {
	Create(ctx context.Context, bill *entities.Bill) error
	ListByUser(ctx context.Context, userID string, filter BillFilter) ([]entities.BillWithCategory, error)
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Category, error)
	// ListDefaults returns the global default categories, name ascending.
	ListDefaults(ctx context.Context) ([]entities.Category, error)
	// ListForUser returns the user's categories plus the global defaults,
	// defaults first, then name ascending.
	ListForUser(ctx context.Context, userID string) ([]entities.Category, error)
}

type SettingsRepository interface {
	Create(ctx context.Context, settings *entities.UserSettings) error
	GetByUserID(ctx context.Context, userID string) (*entities.UserSettings, error)
	// Update applies the given column values and bumps updated_at.
	Update(ctx context.Context, userID string, fields map[string]interface{}) error
}
