package export

import (
	"bytes"
	"fmt"

	"cardiorisk/internal/repository"

	"github.com/xuri/excelize/v2"
)

// AssessmentExportHeader 评估日志导出表头
var AssessmentExportHeader = []string{
	"Log ID",
	"Region",
	"Language",
	"Age",
	"Gender",
	"Height",
	"Weight",
	"Systolic BP",
	"Diastolic BP",
	"Cholesterol",
	"Glucose",
	"Smoke",
	"Alcohol",
	"Active",
	"BMI",
	"Risk Probability",
	"Risk Category",
	"Confidence",
	"Model Version",
	"Created At",
}

// GenerateAssessmentExport 生成评估日志导出 Excel 文件
// logs 为空时只生成表头
func GenerateAssessmentExport(logs []repository.AssessmentLog) ([]byte, error) {
	f := excelize.NewFile()
	// Note: Don't defer Close() here, because WriteTo needs the file to be open

	sheetName := "Assessments"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	// 删除默认的 Sheet1
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	// 写入表头
	for col, header := range AssessmentExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	// 设置列宽
	columnWidths := []float64{
		38, // Log ID
		10, // Region
		10, // Language
		8,  // Age
		8,  // Gender
		8,  // Height
		8,  // Weight
		12, // Systolic BP
		12, // Diastolic BP
		12, // Cholesterol
		10, // Glucose
		8,  // Smoke
		8,  // Alcohol
		8,  // Active
		8,  // BMI
		16, // Risk Probability
		14, // Risk Category
		12, // Confidence
		38, // Model Version
		20, // Created At
	}
	for i := range AssessmentExportHeader {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if i < len(columnWidths) && columnWidths[i] > 0 {
			if err := f.SetColWidth(sheetName, col, col, columnWidths[i]); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set column width: %w", err)
			}
		}
	}

	// 写入数据行
	for rowIdx, log := range logs {
		row := rowIdx + 2
		values := []interface{}{
			log.LogID,
			log.Region,
			log.Language,
			log.AgeYears,
			log.Gender,
			log.Height,
			log.Weight,
			log.APHi,
			log.APLo,
			log.Cholesterol,
			log.Gluc,
			log.Smoke,
			log.Alco,
			log.Active,
			log.BMI,
			log.RiskProbability,
			log.RiskCategory,
			log.ConfidenceLevel,
			log.ModelVersion,
			log.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell value at row %d, col %d: %w", row, colIdx+1, err)
			}
		}
	}

	// 冻结表头
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportFilename 导出文件名，带日期后缀
func ExportFilename(date string) string {
	if date == "" {
		return "assessments.xlsx"
	}
	return "assessments_" + date + ".xlsx"
}
