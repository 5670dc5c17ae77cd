package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/javiermolinar/timeclock/internal/attendance"
	"github.com/javiermolinar/timeclock/internal/timewin"
)

// SheetName is the worksheet WriteExcel fills.
const SheetName = "Attendance"

var excelColumns = []string{
	"Day", "Weekday", "Shift", "Start", "End", "Overnight",
	"Check-in", "Check-in status", "Late (min)",
	"Check-out", "Check-out status", "Early (min)",
	"Worked (min)",
}

type excelWriter struct {
	file         *excelize.File
	currentSheet string
	currentRow   int
}

func newExcelWriter() *excelWriter {
	return &excelWriter{file: excelize.NewFile()}
}

func (w *excelWriter) addSheet(name string) error {
	// Excel caps sheet names at 31 characters.
	if len(name) > 31 {
		name = name[:31]
	}

	if w.currentSheet == "" {
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}

	w.currentSheet = name
	w.currentRow = 1
	return nil
}

func (w *excelWriter) writeHeader(columns []string) error {
	if err := w.writeRow(toAny(columns)); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	startCell, _ := excelize.CoordinatesToCellName(1, 1)
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	return w.file.SetCellStyle(w.currentSheet, startCell, endCell, style)
}

func (w *excelWriter) writeRow(row []any) error {
	if w.currentSheet == "" {
		return errors.New("no active sheet")
	}

	for i, val := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.currentSheet, cell, val); err != nil {
			return err
		}
	}

	w.currentRow++
	return nil
}

// WriteExcel writes rows as an .xlsx workbook with a single sheet.
// Clock times are rendered with layout.
func WriteExcel(out io.Writer, rows []Row, layout string) error {
	if layout == "" {
		layout = timewin.FormatHHMM
	}

	w := newExcelWriter()
	defer func() { _ = w.file.Close() }()

	if err := w.addSheet(SheetName); err != nil {
		return err
	}
	if err := w.writeHeader(excelColumns); err != nil {
		return err
	}

	for _, r := range rows {
		checkIn, checkOut := r.Result.CheckIn, r.Result.CheckOut
		err := w.writeRow([]any{
			r.Day.Format("2006-01-02"),
			r.Day.Weekday().String(),
			r.Shift.Name,
			r.Shift.Start,
			r.Shift.End,
			r.Shift.IsOverNight,
			formatClock(r.CheckIn, layout),
			StatusLabel(checkIn),
			deltaCell(checkIn),
			formatClock(r.CheckOut, layout),
			StatusLabel(checkOut),
			deltaCell(checkOut),
			int(r.Worked().Minutes()),
		})
		if err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if err := w.file.Write(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func deltaCell(s *attendance.Status) int {
	if s == nil {
		return 0
	}
	return s.DeltaMinutes
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
