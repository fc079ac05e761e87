package httpHandler

import (
	"billscan-server/entities"
	"billscan-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	useCase *usecases.CategoryUseCase
}

func NewCategoryHandler(useCase *usecases.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{useCase: useCase}
}

// ListCategories handles GET /api/categories?user_id=
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if categories == nil {
		categories = []entities.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
