package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/aoraion/crypto-monthly-performance/internal/model"
)

// ExcelReporter writes a generated document as an xlsx workbook with one
// sheet per asset: the years-by-months return grid followed by the
// statistics block.
type ExcelReporter struct{}

func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

type excelStyles struct {
	header  int
	year    int
	green   int
	red     int
	neutral int
	label   int
}

// WriteWorkbook renders every asset in the document and saves the workbook.
func (r *ExcelReporter) WriteWorkbook(doc *model.Document, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	styles, err := newExcelStyles(fx)
	if err != nil {
		return err
	}

	for i, key := range doc.AssetKeys() {
		if i == 0 {
			fx.SetSheetName(fx.GetSheetName(0), key)
		} else {
			if _, err := fx.NewSheet(key); err != nil {
				return fmt.Errorf("create sheet %s: %w", key, err)
			}
		}
		if err := r.writeAssetSheet(fx, key, doc.Assets[key], doc.Months, styles); err != nil {
			return fmt.Errorf("write sheet %s: %w", key, err)
		}
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) writeAssetSheet(fx *excelize.File, sheet string, asset *model.AssetReport, monthNames []string, styles excelStyles) error {
	header := make([]interface{}, 0, model.MonthsPerYear+2)
	header = append(header, "Year")
	for month := 1; month <= model.MonthsPerYear; month++ {
		header = append(header, monthName(monthNames, month))
	}
	header = append(header, "Halving")
	if err := r.writeRow(fx, sheet, 1, header, styles.header); err != nil {
		return err
	}

	row := 2
	for _, year := range asset.Data.Years() {
		record := asset.Data[year]

		yearCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := fx.SetCellValue(sheet, yearCell, year); err != nil {
			return err
		}
		fx.SetCellStyle(sheet, yearCell, yearCell, styles.year)

		for month := 1; month <= model.MonthsPerYear; month++ {
			cell, _ := excelize.CoordinatesToCellName(month+1, row)
			value := record.Value(month)
			if value == nil {
				fx.SetCellStyle(sheet, cell, cell, styles.neutral)
				continue
			}
			if err := fx.SetCellValue(sheet, cell, *value); err != nil {
				return err
			}
			style := styles.neutral
			if *value > 0 {
				style = styles.green
			} else if *value < 0 {
				style = styles.red
			}
			fx.SetCellStyle(sheet, cell, cell, style)
		}

		if record.HalvingMonth != nil {
			cell, _ := excelize.CoordinatesToCellName(model.MonthsPerYear+2, row)
			if err := fx.SetCellValue(sheet, cell, monthName(monthNames, *record.HalvingMonth)); err != nil {
				return err
			}
		}

		row++
	}

	// Statistics block below the grid, one metric per row.
	row++
	statRows := []struct {
		label string
		value func(*model.MonthStats) interface{}
	}{
		{"Average %", func(s *model.MonthStats) interface{} { return s.Average }},
		{"Median %", func(s *model.MonthStats) interface{} { return s.Median }},
		{"Volatility %", func(s *model.MonthStats) interface{} { return s.Volatility }},
		{"Max %", func(s *model.MonthStats) interface{} { return s.Max }},
		{"Min %", func(s *model.MonthStats) interface{} { return s.Min }},
		{"Green months", func(s *model.MonthStats) interface{} { return s.GreenMonths }},
		{"Red months", func(s *model.MonthStats) interface{} { return s.RedMonths }},
		{"Win rate %", func(s *model.MonthStats) interface{} { return s.WinRate }},
	}

	for _, statRow := range statRows {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := fx.SetCellValue(sheet, labelCell, statRow.label); err != nil {
			return err
		}
		fx.SetCellStyle(sheet, labelCell, labelCell, styles.label)

		for month := 1; month <= model.MonthsPerYear; month++ {
			stats := asset.Statistics[month]
			if stats == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(month+1, row)
			if err := fx.SetCellValue(sheet, cell, statRow.value(stats)); err != nil {
				return err
			}
		}
		row++
	}

	return fx.SetColWidth(sheet, "A", "A", 14)
}

func (r *ExcelReporter) writeRow(fx *excelize.File, sheet string, row int, values []interface{}, style int) error {
	for i, value := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := fx.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
		fx.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}

func newExcelStyles(fx *excelize.File) (excelStyles, error) {
	var styles excelStyles
	var err error

	styles.header, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F4F4F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.year, err = fx.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return styles, err
	}

	styles.green, err = fx.NewStyle(&excelize.Style{
		NumFmt:    2,
		Font:      &excelize.Font{Color: "006100"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"C6EFCE"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return styles, err
	}

	styles.red, err = fx.NewStyle(&excelize.Style{
		NumFmt:    2,
		Font:      &excelize.Font{Color: "9C0006"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return styles, err
	}

	styles.neutral, err = fx.NewStyle(&excelize.Style{
		NumFmt:    2,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return styles, err
	}

	styles.label, err = fx.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	return styles, err
}
