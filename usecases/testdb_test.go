package usecases

import (
	"billscan-server/db"
	"billscan-server/entities"
	"billscan-server/repositories"
	"testing"

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

func newAuthUseCase(t *testing.T, database db.Database) *AuthUseCase {
	t.Helper()
	return NewAuthUseCase(
		repositories.NewUserPgRepository(database),
		repositories.NewResetTokenPgRepository(database),
		repositories.NewSettingsPgRepository(database),
		[]byte("test-secret"),
	)
}
