// internal/export/export.go
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/MehvishSheikh/attendance-webapp/internal/apperr"
	"github.com/MehvishSheikh/attendance-webapp/internal/models"
)

// Header is the fixed column set of every export. Order never changes so
// repeated exports of the same data are byte-identical.
var Header = []string{"Date", "Check-In", "Check-Out", "Location", "Project", "Task", "Status"}

// openCheckout is the sentinel printed for sessions still waiting on checkout.
const openCheckout = "-"

// Engine serializes a user's month of sessions into a tabular stream.
type Engine struct {
	yearMin int
	yearMax int
}

func NewEngine(yearMin, yearMax int) *Engine {
	return &Engine{yearMin: yearMin, yearMax: yearMax}
}

// ValidateRange rejects months outside [1,12] and years outside the
// configured bound.
func (e *Engine) ValidateRange(year, month int) error {
	if month < 1 || month > 12 {
		return apperr.Newf(apperr.InvalidExportRange, "month %d out of range [1, 12]", month)
	}
	if year < e.yearMin || year > e.yearMax {
		return apperr.Newf(apperr.InvalidExportRange, "year %d out of range [%d, %d]", year, e.yearMin, e.yearMax)
	}
	return nil
}

// CSV renders the sessions as a header-plus-rows CSV document. An empty
// session set still yields the header line.
func (e *Engine) CSV(sessions []models.Session) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i := range sessions {
		if err := w.Write(row(&sessions[i])); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX renders the same table as a single-sheet workbook.
func (e *Engine) XLSX(sessions []models.Session) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := f.SetSheetRow(sheet, "A1", &Header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i := range sessions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row cell: %w", err)
		}
		r := row(&sessions[i])
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func row(s *models.Session) []string {
	checkout := openCheckout
	if s.CheckoutTimestamp != nil {
		checkout = s.CheckoutTimestamp.Format("15:04:05")
	}
	return []string{
		s.Day.Format("2006-01-02"),
		s.CheckinTimestamp.Format("15:04:05"),
		checkout,
		s.LocationLabel(),
		s.ProjectName,
		s.Task,
		string(s.TaskStatus),
	}
}
