// internal/session/service.go
package session

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MehvishSheikh/attendance-webapp/internal/apperr"
	"github.com/MehvishSheikh/attendance-webapp/internal/models"
)

// Status is the pure read answering "is this user checked in right now".
type Status struct {
	CheckedIn    bool
	CheckInTime  *time.Time
	LocationName string
}

// Service drives the per-user-per-day OPEN -> CLOSED state machine. All
// timestamps come from the server's canonical clock, never from the caller.
type Service struct {
	store *Store
	tz    *time.Location
	now   func() time.Time
}

func NewService(store *Store, tz *time.Location) *Service {
	if tz == nil {
		tz = time.Local
	}
	return &Service{store: store, tz: tz, now: time.Now}
}

// CheckIn opens today's session with the already-resolved location.
func (s *Service) CheckIn(ctx context.Context, userID uint, loc *models.ResolvedLocation) (*models.Session, error) {
	now := s.now().In(s.tz)
	sess := &models.Session{
		PublicID:         uuid.NewString(),
		UserID:           userID,
		Day:              dayOf(now),
		CheckinTimestamp: now,
		LocationID:       loc.LocationID,
		LocationName:     loc.Name,
		LocationAddress:  loc.Address,
		Pincode:          loc.Pincode,
		Latitude:         loc.Latitude,
		Longitude:        loc.Longitude,
		Provenance:       loc.Provenance,
	}
	if err := s.store.TryOpen(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// CheckOut validates the task and closes the open session.
func (s *Service) CheckOut(ctx context.Context, userID uint, task models.TaskRecord) (*models.Session, error) {
	if err := validateTask(&task); err != nil {
		return nil, err
	}
	return s.store.Close(ctx, userID, task, s.now().In(s.tz))
}

// Status reflects the single open session, if any. No side effects.
func (s *Service) Status(ctx context.Context, userID uint) (Status, error) {
	open, err := s.store.OpenSession(ctx, userID)
	if err != nil {
		return Status{}, err
	}
	if open == nil {
		return Status{}, nil
	}
	t := open.CheckinTimestamp
	return Status{CheckedIn: true, CheckInTime: &t, LocationName: open.LocationLabel()}, nil
}

// History returns the user's sessions newest first.
func (s *Service) History(ctx context.Context, userID uint) ([]models.Session, error) {
	return s.store.History(ctx, userID)
}

func validateTask(task *models.TaskRecord) error {
	task.Description = strings.TrimSpace(task.Description)
	task.ProjectName = strings.TrimSpace(task.ProjectName)

	if utf8.RuneCountInString(task.Description) < 5 {
		return apperr.New(apperr.InvalidTask, "task description must be at least 5 characters")
	}
	if !task.Status.Valid() {
		return apperr.New(apperr.InvalidTask, "task status must be one of completed, pending, blockage")
	}
	if utf8.RuneCountInString(task.ProjectName) < 2 {
		return apperr.New(apperr.InvalidTask, "project name must be at least 2 characters")
	}
	for _, f := range task.CustomFields {
		if strings.TrimSpace(f.Name) == "" {
			return apperr.New(apperr.InvalidTask, "custom field name must not be empty")
		}
	}
	return nil
}

// dayOf normalizes a local timestamp to its calendar date at midnight UTC.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
