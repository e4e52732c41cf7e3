// internal/session/store.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/MehvishSheikh/attendance-webapp/internal/apperr"
	"github.com/MehvishSheikh/attendance-webapp/internal/models"
)

// Store owns all session rows. It is the single enforcement point of the
// at-most-one-open-session invariant: every write for a user happens inside
// that user's lock, reads take no lock at all.
type Store struct {
	db    *gorm.DB
	locks *userLocks
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, locks: newUserLocks()}
}

// OpenSession returns the user's open session, or nil when there is none.
func (s *Store) OpenSession(ctx context.Context, userID uint) (*models.Session, error) {
	var sess models.Session
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND checkout_timestamp IS NULL", userID).
		Order("checkin_timestamp DESC").
		First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("open session lookup", err)
	}
	return &sess, nil
}

// TryOpen atomically checks and inserts the open session. The loser of a
// concurrent race gets AlreadyCheckedIn as a definitive outcome.
func (s *Store) TryOpen(ctx context.Context, sess *models.Session) error {
	mu := s.locks.forUser(sess.UserID)
	mu.Lock()
	defer mu.Unlock()

	open, err := s.OpenSession(ctx, sess.UserID)
	if err != nil {
		return err
	}
	if open != nil {
		return apperr.New(apperr.AlreadyCheckedIn, "You are already checked in. Please check out first")
	}

	var today int64
	if err := s.db.WithContext(ctx).Model(&models.Session{}).
		Where("user_id = ? AND day = ?", sess.UserID, sess.Day).
		Count(&today).Error; err != nil {
		return apperr.Storage("same-day session lookup", err)
	}
	if today > 0 {
		return apperr.New(apperr.AlreadyCheckedIn, "You have already completed your attendance for today")
	}

	if err := s.db.WithContext(ctx).Create(sess).Error; err != nil {
		return apperr.Storage("create session", err)
	}
	return nil
}

// Close stamps checkout fields on the user's open session and appends it to
// history. now is clamped to the stored check-in so a backward clock jump
// yields a zero-duration session instead of a negative one.
func (s *Store) Close(ctx context.Context, userID uint, task models.TaskRecord, now time.Time) (*models.Session, error) {
	mu := s.locks.forUser(userID)
	mu.Lock()
	defer mu.Unlock()

	open, err := s.OpenSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, apperr.New(apperr.NoOpenSession, "No check-in found for today. Please check in first")
	}

	if now.Before(open.CheckinTimestamp) {
		now = open.CheckinTimestamp
	}
	open.CheckoutTimestamp = &now
	open.Task = task.Description
	open.TaskStatus = task.Status
	open.ProjectName = task.ProjectName

	if len(task.CustomFields) > 0 {
		raw, err := json.Marshal(task.CustomFields)
		if err != nil {
			return nil, apperr.Wrap(apperr.InvalidTask, "custom fields are not serializable", err)
		}
		open.CustomFields = datatypes.JSON(raw)
	}

	if err := s.db.WithContext(ctx).Save(open).Error; err != nil {
		return nil, apperr.Storage("close session", err)
	}
	return open, nil
}

// History returns the user's sessions newest first.
func (s *Store) History(ctx context.Context, userID uint) ([]models.Session, error) {
	var rows []models.Session
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day DESC, checkin_timestamp DESC").
		Find(&rows).Error; err != nil {
		return nil, apperr.Storage("load history", err)
	}
	return rows, nil
}

// MonthSessions returns one user's sessions whose calendar day falls inside
// the given month, in chronological order for export.
func (s *Store) MonthSessions(ctx context.Context, userID uint, year, month int) ([]models.Session, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var rows []models.Session
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND day >= ? AND day < ?", userID, start, end).
		Order("day ASC, checkin_timestamp ASC").
		Find(&rows).Error; err != nil {
		return nil, apperr.Storage("load month sessions", err)
	}
	return rows, nil
}

// AllSessions returns every session with its owner preloaded, newest first.
func (s *Store) AllSessions(ctx context.Context) ([]models.Session, error) {
	var rows []models.Session
	if err := s.db.WithContext(ctx).
		Preload("User").
		Order("day DESC, checkin_timestamp DESC").
		Find(&rows).Error; err != nil {
		return nil, apperr.Storage("load all sessions", err)
	}
	return rows, nil
}

// DeleteUser removes the user together with all session data in one
// transaction, holding the user's lock so an in-flight check-in cannot
// interleave with the cascade.
func (s *Store) DeleteUser(ctx context.Context, userID uint) error {
	mu := s.locks.forUser(userID)
	mu.Lock()
	defer mu.Unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.First(&u, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Newf(apperr.UserNotFound, "user %d not found", userID)
			}
			return apperr.Storage("user lookup", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Session{}).Error; err != nil {
			return apperr.Storage("delete sessions", err)
		}
		if err := tx.Delete(&models.User{}, userID).Error; err != nil {
			return apperr.Storage("delete user", err)
		}
		return nil
	})
	return err
}
