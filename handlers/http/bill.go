package httpHandler

import (
	"billscan-server/entities"
	"billscan-server/repositories"
	"billscan-server/usecases"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type BillHandler struct {
	useCase *usecases.BillUseCase
}

func NewBillHandler(useCase *usecases.BillUseCase) *BillHandler {
	return &BillHandler{useCase: useCase}
}

// ListBills handles GET /api/bills/:user_id
// Optional query params: start_date, end_date, category_id, vendor_name,
// limit (default 50), offset (default 0).
func (h *BillHandler) ListBills(c *gin.Context) {
	filter := repositories.BillFilter{
		CategoryID: c.Query("category_id"),
		Vendor:     c.Query("vendor_name"),
		Limit:      50,
	}

	if s := c.Query("start_date"); s != "" {
		t, err := parseDateParam(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date format"})
			return
		}
		filter.StartDate = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := parseDateParam(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date format"})
			return
		}
		filter.EndDate = &t
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			filter.Limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			filter.Offset = v
		}
	}

	bills, err := h.useCase.ListBills(c.Request.Context(), c.Param("user_id"), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if bills == nil {
		bills = []entities.BillWithCategory{}
	}
	c.JSON(http.StatusOK, gin.H{"bills": bills})
}

type createBillRequest struct {
	UserID      string  `json:"user_id"`
	VendorName  string  `json:"vendor_name"`
	Amount      float64 `json:"amount"`
	BillDate    string  `json:"bill_date"`
	CategoryID  string  `json:"category_id"`
	Description string  `json:"description"`
	ImagePath   string  `json:"image_path"`
	Currency    string  `json:"currency"`
}

// CreateBill handles POST /api/bills
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req createBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	bill, err := h.useCase.CreateBill(c.Request.Context(), usecases.CreateBillInput{
		UserID:      req.UserID,
		VendorName:  req.VendorName,
		Amount:      req.Amount,
		BillDate:    req.BillDate,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		ImagePath:   req.ImagePath,
		Currency:    req.Currency,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

func parseDateParam(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t.UTC(), nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
