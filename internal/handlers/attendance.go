// internal/handlers/attendance.go
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MehvishSheikh/attendance-webapp/internal/location"
	"github.com/MehvishSheikh/attendance-webapp/internal/models"
	"github.com/MehvishSheikh/attendance-webapp/internal/report"
	"github.com/MehvishSheikh/attendance-webapp/internal/session"
)

type AttendanceHandler struct {
	Service  *session.Service
	Resolver *location.Resolver
}

func NewAttendanceHandler(svc *session.Service, resolver *location.Resolver) *AttendanceHandler {
	return &AttendanceHandler{Service: svc, Resolver: resolver}
}

type CheckInRequest struct {
	LocationID *uint    `json:"location_id"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Address    string   `json:"address"`
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	loc, err := h.Resolver.Resolve(c.Request.Context(), location.ResolveRequest{
		LocationID: req.LocationID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Address:    strings.TrimSpace(req.Address),
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	sess, err := h.Service.CheckIn(c.Request.Context(), c.GetUint("user_id"), loc)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Check-in successful",
		"checkInTime":  sess.CheckinTimestamp.Format(time.RFC3339),
		"gpsRecorded":  loc.Provenance == models.ProvenanceGPS,
		"locationName": sess.LocationLabel(),
	})
}

func (h *AttendanceHandler) Status(c *gin.Context) {
	st, err := h.Service.Status(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !st.CheckedIn {
		c.JSON(http.StatusOK, gin.H{"isCheckedIn": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"isCheckedIn":  true,
		"checkInTime":  st.CheckInTime.Format(time.RFC3339),
		"locationName": st.LocationName,
	})
}

type CheckOutRequest struct {
	Task         string               `json:"task"`
	TaskStatus   string               `json:"taskStatus"`
	ProjectName  string               `json:"projectName"`
	CustomFields []models.CustomField `json:"customFields"`
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	sess, err := h.Service.CheckOut(c.Request.Context(), c.GetUint("user_id"), models.TaskRecord{
		Description:  req.Task,
		Status:       models.TaskStatus(strings.TrimSpace(req.TaskStatus)),
		ProjectName:  req.ProjectName,
		CustomFields: req.CustomFields,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Check-out successful",
		"checkOutTime": sess.CheckoutTimestamp.Format(time.RFC3339),
		"taskStatus":   string(sess.TaskStatus),
	})
}

func (h *AttendanceHandler) History(c *gin.Context) {
	rows, err := h.Service.History(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionDTOs(rows, false))
}

// Summary serves the dashboard aggregates computed server-side over the
// user's full history.
func (h *AttendanceHandler) Summary(c *gin.Context) {
	rows, err := h.Service.History(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"totalHours":        report.TotalHours(rows),
		"taskStats":         report.Stats(rows),
		"distinctLocations": report.DistinctLocations(rows),
		"recent":            toSessionDTOs(report.Recent(rows, 5), false),
		"daysRecorded":      len(rows),
	})
}
