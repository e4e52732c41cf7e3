// internal/export/export_test.go
package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MehvishSheikh/attendance-webapp/internal/apperr"
	"github.com/MehvishSheikh/attendance-webapp/internal/models"
)

func sampleSessions() []models.Session {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	checkin := day.Add(9 * time.Hour)
	checkout := day.Add(17*time.Hour + 30*time.Minute)
	closed := models.Session{
		Day:               day,
		CheckinTimestamp:  checkin,
		CheckoutTimestamp: &checkout,
		LocationName:      "Hyderabad Office",
		Task:              "Fixed login bug",
		TaskStatus:        models.TaskCompleted,
		ProjectName:       "Auth",
	}
	open := models.Session{
		Day:              day.AddDate(0, 0, 1),
		CheckinTimestamp: day.AddDate(0, 0, 1).Add(9 * time.Hour),
		LocationAddress:  "GPS 37.422000, -122.084000",
	}
	return []models.Session{closed, open}
}

func TestValidateRange(t *testing.T) {
	e := NewEngine(2000, 2100)

	assert.NoError(t, e.ValidateRange(2025, 3))
	assert.NoError(t, e.ValidateRange(2000, 1))
	assert.NoError(t, e.ValidateRange(2100, 12))

	for _, c := range []struct{ year, month int }{
		{2025, 13},
		{2025, 0},
		{2025, -1},
		{1999, 6},
		{2101, 6},
	} {
		err := e.ValidateRange(c.year, c.month)
		assert.Equal(t, apperr.InvalidExportRange, apperr.KindOf(err), "year=%d month=%d", c.year, c.month)
	}
}

func TestCSVEmptyMonthIsHeaderOnly(t *testing.T) {
	e := NewEngine(2000, 2100)

	data, err := e.CSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Date,Check-In,Check-Out,Location,Project,Task,Status\n", string(data))
}

func TestCSVRows(t *testing.T) {
	e := NewEngine(2000, 2100)

	data, err := e.CSV(sampleSessions())
	require.NoError(t, err)

	want := "Date,Check-In,Check-Out,Location,Project,Task,Status\n" +
		"2025-03-10,09:00:00,17:30:00,Hyderabad Office,Auth,Fixed login bug,completed\n" +
		"2025-03-11,09:00:00,-,\"GPS 37.422000, -122.084000\",,,\n"
	assert.Equal(t, want, string(data))
}

func TestCSVIsByteStableAcrossCalls(t *testing.T) {
	e := NewEngine(2000, 2100)
	sessions := sampleSessions()

	first, err := e.CSV(sessions)
	require.NoError(t, err)
	second, err := e.CSV(sessions)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestXLSXRoundTrip(t *testing.T) {
	e := NewEngine(2000, 2100)

	data, err := e.XLSX(sampleSessions())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "2025-03-10", rows[1][0])
	assert.Equal(t, "-", rows[2][2])
}
