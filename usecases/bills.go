package usecases

import (
	"billscan-server/entities"
	"billscan-server/repositories"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type BillUseCase struct {
	bills      repositories.BillRepository
	categories repositories.CategoryRepository
}

func NewBillUseCase(bills repositories.BillRepository, categories repositories.CategoryRepository) *BillUseCase {
	return &BillUseCase{bills: bills, categories: categories}
}

// ListBills returns the user's bills matching the filter, newest bill date
// first.
func (uc *BillUseCase) ListBills(ctx context.Context, userID string, filter repositories.BillFilter) ([]entities.BillWithCategory, error) {
	if userID == "" {
		return nil, validationErrorf("user id is required")
	}
	return uc.bills.ListByUser(ctx, userID, filter)
}

type CreateBillInput struct {
	UserID      string
	VendorName  string
	Amount      float64
	BillDate    string
	CategoryID  string
	Description string
	ImagePath   string
	Currency    string
}

// CreateBill records a new unpaid bill. The returned record carries the
// category name and color when the referenced category exists.
func (uc *BillUseCase) CreateBill(ctx context.Context, in CreateBillInput) (*entities.BillWithCategory, error) {
	if in.UserID == "" || strings.TrimSpace(in.VendorName) == "" || in.Amount == 0 || in.BillDate == "" {
		return nil, validationErrorf("Missing required fields")
	}

	billDate, err := parseBillDate(in.BillDate)
	if err != nil {
		return nil, validationErrorf("Invalid bill_date format")
	}

	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}

	bill := &entities.Bill{
		UserID:      in.UserID,
		VendorName:  strings.TrimSpace(in.VendorName),
		Amount:      in.Amount,
		BillDate:    billDate,
		Description: in.Description,
		ImagePath:   in.ImagePath,
		Currency:    currency,
		IsPaid:      false,
	}
	if in.CategoryID != "" {
		bill.CategoryID = &in.CategoryID
	}

	if err := uc.bills.Create(ctx, bill); err != nil {
		return nil, err
	}

	result := &entities.BillWithCategory{Bill: *bill}
	if in.CategoryID != "" {
		category, err := uc.categories.GetByID(ctx, in.CategoryID)
		switch {
		case err == nil:
			result.CategoryName = &category.Name
			result.CategoryColor = &category.Color
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}
	return result, nil
}

// parseBillDate accepts the ISO-8601 shapes clients send: full RFC3339,
// a timestamp without zone, or a bare date.
func parseBillDate(s string) (time.Time, error) {
	formats := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	var lastErr error
	for _, layout := range formats {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
