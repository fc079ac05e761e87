package repositories

import (
	"billscan-server/db"
	"billscan-server/entities"
	"context"
)

type categoryPgRepository struct {
	db db.Database
}

func NewCategoryPgRepository(database db.Database) CategoryRepository {
	return &categoryPgRepository{db: database}
}

func (r *categoryPgRepository) GetByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryPgRepository) ListDefaults(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.GetDB().WithContext(ctx).
		Where("is_default = ?", true).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryPgRepository) ListForUser(ctx context.Context, userID string) ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.GetDB().WithContext(ctx).
		Where("user_id = ? OR is_default = ?", userID, true).
		Order("is_default DESC, name ASC").
		Find(&categories).Error
	return categories, err
}
