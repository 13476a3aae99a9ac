package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

// exportXLSX writes the same page-granularity table as the CSV export
// into a workbook, with resolved values instead of raw/edited pairs on
// a second sheet for quick review.
func exportXLSX(rows []*batch.ResultRow, fields []string, batchName string) ([]byte, error) {
	f := excelize.NewFile()

	const rawSheet = "Results"
	idx, err := f.NewSheet(rawSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	header := []string{"File", "Status", "Error", "Duration(s)"}
	for _, field := range fields {
		header = append(header, field+"_ocr", field+"_edited")
	}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(rawSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		cells := []any{row.Filename, string(row.Status), row.Error, row.Duration}
		for _, field := range fields {
			cells = append(cells, row.Data.Value(field), row.EditedData[field])
		}
		for c, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(rawSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	const reviewSheet = "Reviewed"
	if _, err := f.NewSheet(reviewSheet); err != nil {
		return nil, err
	}
	reviewHeader := append([]string{"File"}, fields...)
	for i, h := range reviewHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(reviewSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetCellValue(reviewSheet, cell, row.Filename); err != nil {
			return nil, err
		}
		for c, field := range fields {
			cell, _ := excelize.CoordinatesToCellName(c+2, r+2)
			if err := f.SetCellValue(reviewSheet, cell, batch.Resolve(row, field)); err != nil {
				return nil, err
			}
		}
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(rawSheet, "A", "A", 28)
	_ = f.SetColWidth(reviewSheet, "A", "A", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
