package export

import (
	"bytes"
	"testing"
	"time"

	"cardiorisk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateAssessmentExport_HeaderOnly(t *testing.T) {
	data, err := GenerateAssessmentExport(nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Assessments")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, AssessmentExportHeader, rows[0])
}

func TestGenerateAssessmentExport_WithRows(t *testing.T) {
	logs := []repository.AssessmentLog{
		{
			LogID:           "log-1",
			Region:          "eu",
			Language:        "en",
			AgeYears:        54,
			Gender:          2,
			Height:          175,
			Weight:          82,
			APHi:            150,
			APLo:            95,
			Cholesterol:     2,
			Gluc:            1,
			Smoke:           0,
			Alco:            0,
			Active:          1,
			BMI:             26.8,
			RiskProbability: 0.312,
			RiskCategory:    "high",
			ConfidenceLevel: "moderate",
			ModelVersion:    "primary-care-cvd-risk-catboost-v1.0",
			CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			LogID:           "log-2",
			Region:          "kr",
			Language:        "kr",
			AgeYears:        40,
			Gender:          1,
			Height:          162,
			Weight:          55,
			APHi:            110,
			APLo:            70,
			Cholesterol:     1,
			Gluc:            1,
			Smoke:           0,
			Alco:            0,
			Active:          1,
			BMI:             21.0,
			RiskProbability: 0.05,
			RiskCategory:    "low",
			ConfidenceLevel: "high",
			ModelVersion:    "primary-care-cvd-risk-catboost-v1.0",
			CreatedAt:       time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
		},
	}

	data, err := GenerateAssessmentExport(logs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Assessments")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "log-1", rows[1][0])
	assert.Equal(t, "high", rows[1][16])
	assert.Equal(t, "2025-06-01 12:00:00", rows[1][19])

	assert.Equal(t, "log-2", rows[2][0])
	assert.Equal(t, "low", rows[2][16])
	assert.Equal(t, "kr", rows[2][2])
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "assessments.xlsx", ExportFilename(""))
	assert.Equal(t, "assessments_2025-06-01.xlsx", ExportFilename("2025-06-01"))
}
