// Package workbook exports the dataset rows to an .xlsx workbook, one sheet per table.
package workbook

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
)

const defaultSheet = "Sheet1"

// Sink collects insert rows into sheets and writes the workbook on Flush.
// Everything except inserts is ignored.
type Sink struct {
	w       io.Writer
	f       *excelize.File
	nextRow map[string]int
	sheets  []string
}

// New creates a workbook Sink writing to w.
func New(w io.Writer) *Sink {
	return &Sink{
		w:       w,
		f:       excelize.NewFile(),
		nextRow: make(map[string]int),
	}
}

// Sheets returns the sheet names in creation order.
func (s *Sink) Sheets() []string {
	return s.sheets
}

// Emit appends insert rows to the table's sheet, creating it with a header row on first use.
func (s *Sink) Emit(ctx context.Context, stmt *contracts.Statement) error {
	if stmt.Kind != contracts.KindInsert {
		return nil
	}

	row, ok := s.nextRow[stmt.Table]
	if !ok {
		if err := s.addSheet(stmt.Table, stmt.Columns); err != nil {
			return err
		}
		row = 2
	}

	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d of %s: %w", row, stmt.Table, err)
	}
	values := make([]interface{}, len(stmt.Values))
	for i, v := range stmt.Values {
		values[i] = cellValue(v)
	}
	if err := s.f.SetSheetRow(stmt.Table, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, stmt.Table, err)
	}
	s.nextRow[stmt.Table] = row + 1
	return nil
}

// Flush writes the workbook and releases it.
func (s *Sink) Flush(ctx context.Context) error {
	defer s.f.Close()

	if len(s.sheets) > 0 {
		s.f.SetActiveSheet(0)
	}
	if err := s.f.Write(s.w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (s *Sink) addSheet(table string, columns []string) error {
	if len(s.sheets) == 0 {
		if err := s.f.SetSheetName(defaultSheet, table); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", table, err)
		}
	} else if _, err := s.f.NewSheet(table); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", table, err)
	}
	s.sheets = append(s.sheets, table)

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := s.f.SetSheetRow(table, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", table, err)
	}
	return nil
}

// cellValue stores amounts as numbers so spreadsheets can sum them.
func cellValue(v interface{}) interface{} {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}
