package repositories

import (
	"billscan-server/db"
	"billscan-server/entities"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) db.Database {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// One connection keeps the in-memory database alive across queries.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&entities.User{},
		&entities.PasswordResetToken{},
		&entities.Category{},
		&entities.Bill{},
		&entities.UserSettings{},
	))
	return &db.GormDatabase{DB: gdb}
}

func createTestUser(t *testing.T, database db.Database, email, username string) *entities.User {
	t.Helper()
	user := &entities.User{
		Email:        email,
		Username:     username,
		PasswordHash: "x",
		FullName:     "Test User",
		IsActive:     true,
	}
	require.NoError(t, database.GetDB().Create(user).Error)
	return user
}

func createTestCategory(t *testing.T, database db.Database, name, color string, isDefault bool, userID *string) *entities.Category {
	t.Helper()
	category := &entities.Category{
		Name:      name,
		Color:     color,
		IsDefault: isDefault,
		UserID:    userID,
	}
	require.NoError(t, database.GetDB().Create(category).Error)
	return category
}

func createTestBill(t *testing.T, database db.Database, userID, vendor string, amount float64, date time.Time, categoryID *string) *entities.Bill {
	t.Helper()
	bill := &entities.Bill{
		UserID:     userID,
		VendorName: vendor,
		Amount:     amount,
		BillDate:   date,
		CategoryID: categoryID,
		Currency:   "USD",
	}
	require.NoError(t, database.GetDB().Create(bill).Error)
	return bill
}
