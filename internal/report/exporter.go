package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"S.No", "Student Name", "Roll Number", "Score", "Total Marks", "Percentage"}

func rollNumberOrNA(roll *string) string {
	if roll == nil || *roll == "" {
		return "N/A"
	}
	return *roll
}

// WriteExcel renders the result rows as a single-sheet workbook.
func WriteExcel(w io.Writer, quizTitle string, rows []ResultRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Quiz Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	if err := f.MergeCell(sheet, "A1", "F1"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A1", fmt.Sprintf("Quiz Results: %s", quizTitle)); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", titleStyle); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			i + 1,
			row.StudentName,
			rollNumberOrNA(row.RollNumber),
			row.Score,
			row.TotalMarks,
			fmt.Sprintf("%.2f%%", row.Percentage),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+4)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "F", 18); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

// WritePDF renders the result rows as an A4 table.
func WritePDF(w io.Writer, quizTitle string, rows []ResultRow) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(54, 96, 146)
	pdf.CellFormat(0, 12, fmt.Sprintf("Quiz Results: %s", quizTitle), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{15, 50, 35, 25, 30, 30}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(54, 96, 146)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range exportHeaders {
		pdf.CellFormat(widths[i], 10, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(211, 211, 211)
		}

		cells := []string{
			fmt.Sprintf("%d", i+1),
			row.StudentName,
			rollNumberOrNA(row.RollNumber),
			fmt.Sprintf("%d", row.Score),
			fmt.Sprintf("%d", row.TotalMarks),
			fmt.Sprintf("%.2f%%", row.Percentage),
		}
		for col, cell := range cells {
			pdf.CellFormat(widths[col], 8, cell, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
