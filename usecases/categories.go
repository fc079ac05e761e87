package usecases

import (
	"billscan-server/entities"
	"billscan-server/repositories"
	"context"
)

type CategoryUseCase struct {
	categories repositories.CategoryRepository
}

func NewCategoryUseCase(categories repositories.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// ListCategories returns the global defaults, plus the user's own
// categories when a user id is given. Defaults sort first, then by name.
func (uc *CategoryUseCase) ListCategories(ctx context.Context, userID string) ([]entities.Category, error) {
	if userID == "" {
		return uc.categories.ListDefaults(ctx)
	}
	return uc.categories.ListForUser(ctx, userID)
}
