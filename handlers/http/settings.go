package httpHandler

import (
	"billscan-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	useCase *usecases.SettingsUseCase
}

func NewSettingsHandler(useCase *usecases.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{useCase: useCase}
}

// GetSettings handles GET /api/settings/:user_id
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.useCase.GetSettings(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings handles PUT /api/settings/:user_id
// The body is a partial document; only recognized fields are applied.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.useCase.UpdateSettings(c.Request.Context(), c.Param("user_id"), patch); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
