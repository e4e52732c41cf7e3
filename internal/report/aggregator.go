// internal/report/aggregator.go
package report

import (
	"sort"

	"github.com/MehvishSheikh/attendance-webapp/internal/models"
)

// TaskStats counts closed sessions by task status. Sessions without a task
// (still open) are excluded from the totals.
type TaskStats struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Blockage  int `json:"blockage"`
	Total     int `json:"total"`
}

// TotalHours sums the duration of closed sessions in fractional hours.
// Open sessions contribute nothing.
func TotalHours(sessions []models.Session) float64 {
	var total float64
	for i := range sessions {
		if sessions[i].Open() {
			continue
		}
		total += sessions[i].Hours()
	}
	return total
}

// Stats tallies task statuses across closed sessions.
func Stats(sessions []models.Session) TaskStats {
	var st TaskStats
	for i := range sessions {
		s := &sessions[i]
		if s.Open() || s.Task == "" {
			continue
		}
		st.Total++
		switch s.TaskStatus {
		case models.TaskCompleted:
			st.Completed++
		case models.TaskPending:
			st.Pending++
		case models.TaskBlockage:
			st.Blockage++
		}
	}
	return st
}

// DistinctLocations counts unique location labels, case-sensitive, skipping
// sessions with no usable label.
func DistinctLocations(sessions []models.Session) int {
	seen := make(map[string]struct{})
	for i := range sessions {
		label := sessions[i].LocationLabel()
		if label == "" {
			continue
		}
		seen[label] = struct{}{}
	}
	return len(seen)
}

// Recent returns the n most recently closed sessions, checkout descending,
// ties broken by check-in descending. The sort is stable so identical inputs
// always produce identical output.
func Recent(sessions []models.Session, n int) []models.Session {
	if n < 0 {
		n = 0
	}
	closed := make([]models.Session, 0, len(sessions))
	for i := range sessions {
		if !sessions[i].Open() {
			closed = append(closed, sessions[i])
		}
	}
	sort.SliceStable(closed, func(i, j int) bool {
		a, b := closed[i], closed[j]
		if !a.CheckoutTimestamp.Equal(*b.CheckoutTimestamp) {
			return a.CheckoutTimestamp.After(*b.CheckoutTimestamp)
		}
		return a.CheckinTimestamp.After(b.CheckinTimestamp)
	})
	if n < len(closed) {
		closed = closed[:n]
	}
	return closed
}
