// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MehvishSheikh/attendance-webapp/internal/apperr"
	"github.com/MehvishSheikh/attendance-webapp/internal/models"
)

// respondErr maps the error taxonomy onto HTTP statuses. Business refusals
// are 4xx; only storage loss gets a retryable 5xx.
func respondErr(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL", "message": "unexpected error"})
		return
	}
	c.JSON(statusFor(ae.Kind), gin.H{"error": string(ae.Kind), "message": ae.Message})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.LocationMissing, apperr.InvalidCoordinates, apperr.InvalidTask, apperr.InvalidExportRange:
		return http.StatusBadRequest
	case apperr.LocationNotFound, apperr.UserNotFound:
		return http.StatusNotFound
	case apperr.AlreadyCheckedIn, apperr.NoOpenSession:
		return http.StatusConflict
	case apperr.LookupTimeout:
		return http.StatusGatewayTimeout
	case apperr.StorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type sessionDTO struct {
	ID           string               `json:"id"`
	Date         string               `json:"date"`
	CheckInTime  string               `json:"checkInTime"`
	CheckOutTime *string              `json:"checkOutTime"`
	Location     string               `json:"location"`
	Task         string               `json:"task"`
	TaskStatus   string               `json:"taskStatus"`
	ProjectName  string               `json:"projectName"`
	CustomFields []models.CustomField `json:"customFields,omitempty"`
	User         *userRef             `json:"user,omitempty"`
}

type userRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toSessionDTO(s *models.Session, withUser bool) sessionDTO {
	dto := sessionDTO{
		ID:          s.PublicID,
		Date:        s.Day.Format("2006-01-02"),
		CheckInTime: s.CheckinTimestamp.Format(time.RFC3339),
		Location:    s.LocationLabel(),
		Task:        s.Task,
		TaskStatus:  string(s.TaskStatus),
		ProjectName: s.ProjectName,
	}
	if s.CheckoutTimestamp != nil {
		out := s.CheckoutTimestamp.Format(time.RFC3339)
		dto.CheckOutTime = &out
	}
	if len(s.CustomFields) > 0 {
		// ignore malformed payloads rather than failing a whole listing
		_ = json.Unmarshal(s.CustomFields, &dto.CustomFields)
	}
	if withUser && s.User != nil {
		dto.User = &userRef{ID: s.User.ID, Name: s.User.Name, Email: s.User.Email}
	}
	return dto
}

func toSessionDTOs(sessions []models.Session, withUser bool) []sessionDTO {
	out := make([]sessionDTO, 0, len(sessions))
	for i := range sessions {
		out = append(out, toSessionDTO(&sessions[i], withUser))
	}
	return out
}
