package render

import (
	"fmt"

	"github.com/limaJavier/tablebuilder/pkg/model"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

func sheetName(table int) string {
	return fmt.Sprintf("Table %d", table+1)
}

// Builds a workbook with one sheet per grid: a row per day and a column per period
func Workbook(grids []*model.Grid) (*excelize.File, error) {
	file := excelize.NewFile()

	for i, grid := range grids {
		sheet := sheetName(i)
		if i == 0 {
			if err := file.SetSheetName(defaultSheet, sheet); err != nil {
				return nil, fmt.Errorf("cannot rename sheet: %w", err)
			}
		} else if _, err := file.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("cannot create sheet %q: %w", sheet, err)
		}

		if err := writeSheet(file, sheet, grid); err != nil {
			return nil, err
		}
	}

	return file, nil
}

func SaveWorkbook(grids []*model.Grid, path string) error {
	file, err := Workbook(grids)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save workbook %q: %w", path, err)
	}
	return nil
}

func writeSheet(file *excelize.File, sheet string, grid *model.Grid) error {
	//** Header row
	if err := file.SetCellValue(sheet, "A1", "Day"); err != nil {
		return err
	}
	for period := range grid.Size() {
		cell, _ := excelize.CoordinatesToCellName(period+2, 1)
		if err := file.SetCellValue(sheet, cell, fmt.Sprintf("Period %d", period)); err != nil {
			return err
		}
	}

	//** A row per day
	days := model.Days()
	for i, day := range days {
		row := i + 2
		if err := file.SetCellValue(sheet, fmt.Sprintf("A%d", row), day.String()); err != nil {
			return err
		}

		for _, span := range spans(grid, day) {
			start, _ := excelize.CoordinatesToCellName(span.start+2, row)
			if err := file.SetCellValue(sheet, start, label(span.occupant)); err != nil {
				return err
			}
			if span.length > 1 {
				end, _ := excelize.CoordinatesToCellName(span.start+span.length+1, row)
				if err := file.MergeCell(sheet, start, end); err != nil {
					return fmt.Errorf("cannot merge cells %v:%v: %w", start, end, err)
				}
			}
		}
	}

	//** Totals
	totalRow := len(days) + 3
	if err := file.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total Credit Hours"); err != nil {
		return err
	}
	return file.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), grid.CreditHours())
}
