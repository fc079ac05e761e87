package repositories

import (
	"billscan-server/db"
	"billscan-server/entities"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type resetTokenPgRepository struct {
	db db.Database
}

func NewResetTokenPgRepository(database db.Database) PasswordResetTokenRepository {
	return &resetTokenPgRepository{db: database}
}

func (r *resetTokenPgRepository) Upsert(ctx context.Context, token *entities.PasswordResetToken) error {
	return r.db.GetDB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at", "created_at"}),
		}).
		Create(token).Error
}

func (r *resetTokenPgRepository) Consume(ctx context.Context, token string, newPasswordHash string) error {
	return r.db.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row entities.PasswordResetToken
		err := tx.Where("token = ? AND expires_at > ?", token, time.Now().UTC()).First(&row).Error
		if err != nil {
			return err
		}
		err = tx.Model(&entities.User{}).
			Where("id = ?", row.UserID).
			Update("password_hash", newPasswordHash).Error
		if err != nil {
			return err
		}
		// Single use: the token goes away with the password change.
		return tx.Where("token = ?", token).Delete(&entities.PasswordResetToken{}).Error
	})
}
