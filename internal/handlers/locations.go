// internal/handlers/locations.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MehvishSheikh/attendance-webapp/internal/models"
)

type LocationHandler struct {
	DB *gorm.DB
}

func NewLocationHandler(db *gorm.DB) *LocationHandler { return &LocationHandler{DB: db} }

// List returns the registered-office catalog, ordered by id.
func (h *LocationHandler) List(c *gin.Context) {
	var rows []models.Location
	if err := h.DB.WithContext(c.Request.Context()).Order("id asc").Find(&rows).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "STORAGE_UNAVAILABLE", "message": "failed to load locations"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
