// internal/handlers/admin_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MehvishSheikh/attendance-webapp/internal/export"
	"github.com/MehvishSheikh/attendance-webapp/internal/models"
	"github.com/MehvishSheikh/attendance-webapp/internal/session"
)

type AdminHandler struct {
	DB     *gorm.DB
	Store  *session.Store
	Export *export.Engine
}

func NewAdminHandler(db *gorm.DB, store *session.Store, engine *export.Engine) *AdminHandler {
	return &AdminHandler{DB: db, Store: store, Export: engine}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var rows []models.User
	if err := h.DB.WithContext(c.Request.Context()).Order("created_at asc").Find(&rows).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "STORAGE_UNAVAILABLE", "message": "failed to load users"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteUser(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *AdminHandler) AllAttendance(c *gin.Context) {
	rows, err := h.Store.AllSessions(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionDTOs(rows, true))
}

func (h *AdminHandler) UserAttendance(c *gin.Context) {
	id, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	rows, err := h.Store.History(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionDTOs(rows, false))
}

// ExportAttendance streams one user's month as CSV (default) or XLSX.
func (h *AdminHandler) ExportAttendance(c *gin.Context) {
	id, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_EXPORT_RANGE", "message": "year must be an integer"})
		return
	}
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_EXPORT_RANGE", "message": "month must be an integer"})
		return
	}

	if err := h.Export.ValidateRange(year, month); err != nil {
		respondErr(c, err)
		return
	}

	rows, err := h.Store.MonthSessions(c.Request.Context(), id, year, month)
	if err != nil {
		respondErr(c, err)
		return
	}

	name := fmt.Sprintf("attendance_%d_%04d_%02d", id, year, month)
	switch strings.ToLower(strings.TrimSpace(c.Query("format"))) {
	case "", "csv":
		data, err := h.Export.CSV(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL", "message": "export failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	case "xlsx":
		data, err := h.Export.XLSX(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL", "message": "export failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_EXPORT_RANGE", "message": "format must be csv or xlsx"})
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id64), true
}
