// internal/models/session.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

type TaskStatus string

const (
	TaskCompleted TaskStatus = "completed"
	TaskPending   TaskStatus = "pending"
	TaskBlockage  TaskStatus = "blockage"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskCompleted, TaskPending, TaskBlockage:
		return true
	}
	return false
}

// CustomField is one name/value pair attached to a task at checkout.
// Stored as a JSON array so insertion order survives round trips.
type CustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TaskRecord carries the checkout payload before it is stamped onto a session.
type TaskRecord struct {
	Description  string
	Status       TaskStatus
	ProjectName  string
	CustomFields []CustomField
}

// Session is one user's work period on a calendar day. A session with no
// CheckoutTimestamp is OPEN; a checkout closes it exactly once.
type Session struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PublicID string `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	UserID   uint   `gorm:"index:idx_sessions_user_day;not null" json:"user_id"`
	User     *User  `gorm:"foreignKey:UserID" json:"-"`

	// Day is the user's calendar date, stored at midnight UTC so month
	// filtering never crosses timezone boundaries.
	Day               time.Time  `gorm:"index:idx_sessions_user_day;not null" json:"day"`
	CheckinTimestamp  time.Time  `gorm:"not null" json:"checkin_time_stamp"`
	CheckoutTimestamp *time.Time `json:"checkout_time_stamp"`

	LocationID      *uint              `gorm:"index" json:"location_id"`
	LocationName    string             `json:"location_name"`
	LocationAddress string             `json:"location_address"`
	Pincode         string             `gorm:"type:varchar(10)" json:"pincode"`
	Latitude        *float64           `json:"latitude,omitempty"`
	Longitude       *float64           `json:"longitude,omitempty"`
	Provenance      LocationProvenance `gorm:"type:varchar(20);not null" json:"provenance"`

	Task         string         `gorm:"type:text" json:"task"`
	TaskStatus   TaskStatus     `gorm:"type:varchar(20)" json:"task_status"`
	ProjectName  string         `json:"project_name"`
	CustomFields datatypes.JSON `json:"custom_fields,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Open reports whether the session is still waiting for a checkout.
func (s *Session) Open() bool { return s.CheckoutTimestamp == nil }

// Duration is zero while the session is open.
func (s *Session) Duration() time.Duration {
	if s.CheckoutTimestamp == nil {
		return 0
	}
	return s.CheckoutTimestamp.Sub(s.CheckinTimestamp)
}

// Hours is the fractional hour count of a closed session.
func (s *Session) Hours() float64 {
	return s.Duration().Hours()
}

// LocationLabel prefers the catalog name and falls back to the synthesized
// GPS address.
func (s *Session) LocationLabel() string {
	if s.LocationName != "" {
		return s.LocationName
	}
	return s.LocationAddress
}
