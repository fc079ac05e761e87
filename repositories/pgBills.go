package repositories

import (
	"billscan-server/db"
	"billscan-server/entities"
	"context"
	"strings"
)

const defaultBillPageSize = 50

type billPgRepository struct {
	db db.Database
}

func NewBillPgRepository(database db.Database) BillRepository {
	return &billPgRepository{db: database}
}

func (r *billPgRepository) Create(ctx context.Context, bill *entities.Bill) error {
	return r.db.GetDB().WithContext(ctx).Create(bill).Error
}

// ListByUser translates the filter into one parameterized query. Every
// supplied predicate ANDs onto the user scope; the category join embeds
// name and color next to each bill.
func (r *billPgRepository) ListByUser(ctx context.Context, userID string, filter BillFilter) ([]entities.BillWithCategory, error) {
	q := r.db.GetDB().WithContext(ctx).
		Table("bills").
		Select("bills.*, categories.name AS category_name, categories.color AS category_color").
		Joins("LEFT JOIN categories ON categories.id = bills.category_id").
		Where("bills.user_id = ?", userID)

	if filter.StartDate != nil {
		q = q.Where("bills.bill_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("bills.bill_date <= ?", *filter.EndDate)
	}
	if filter.CategoryID != "" {
		q = q.Where("bills.category_id = ?", filter.CategoryID)
	}
	if filter.Vendor != "" {
		// LOWER/LIKE instead of ILIKE keeps the query portable.
		q = q.Where("LOWER(bills.vendor_name) LIKE ?", "%"+strings.ToLower(filter.Vendor)+"%")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultBillPageSize
	}

	var rows []entities.BillWithCategory
	err := q.Order("bills.bill_date DESC").
		Limit(limit).
		Offset(filter.Offset).
		Scan(&rows).Error
	return rows, err
}
