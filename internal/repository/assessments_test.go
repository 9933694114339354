package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"cardiorisk/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *AssessmentsRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger := zap.NewNop()
	repo := NewAssessmentsRepository(db, logger)

	return db, mock, repo
}

func sampleAssessmentLog() *AssessmentLog {
	return &AssessmentLog{
		LogID:           "4b3f9d2e-1c5a-4e8f-9a6b-7d0c2e1f3a4b",
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
		RiskCategory:    models.RiskHigh,
		ConfidenceLevel: "moderate",
		ModelVersion:    "primary-care-cvd-risk-catboost-v1.0",
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestInsertAssessment_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	log := sampleAssessmentLog()

	mock.ExpectExec(`INSERT INTO assessment_logs`).
		WithArgs(
			log.LogID, log.Region, log.Language,
			log.AgeYears, log.Gender, log.Height, log.Weight, log.APHi, log.APLo,
			log.Cholesterol, log.Gluc, log.Smoke, log.Alco, log.Active, log.BMI,
			log.RiskProbability, log.RiskCategory, log.ConfidenceLevel,
			log.ModelVersion, log.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InsertAssessment(context.Background(), log)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAssessment_DBError(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	log := sampleAssessmentLog()

	mock.ExpectExec(`INSERT INTO assessment_logs`).
		WillReturnError(errors.New("connection reset"))

	err := repo.InsertAssessment(context.Background(), log)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert assessment log")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAssessments_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"log_id", "region", "language",
		"age_years", "gender", "height", "weight", "ap_hi", "ap_lo",
		"cholesterol", "gluc", "smoke", "alco", "active", "bmi",
		"risk_probability", "risk_category", "confidence_level",
		"model_version", "created_at",
	}).
		AddRow(
			"log-1", "eu", "en",
			54, 2, 175.0, 82.0, 150, 95,
			2, 1, 0, 0, 1, 26.8,
			0.312, "high", "moderate",
			"primary-care-cvd-risk-catboost-v1.0", created,
		).
		AddRow(
			"log-2", "kr", "kr",
			40, 1, 162.0, 55.0, 110, 70,
			1, 1, 0, 0, 1, 21.0,
			0.05, "low", "high",
			"primary-care-cvd-risk-catboost-v1.0", created.Add(-time.Hour),
		)

	mock.ExpectQuery(`SELECT(.|\n)+FROM assessment_logs`).
		WithArgs(100).
		WillReturnRows(rows)

	logs, err := repo.ListAssessments(context.Background(), 100)

	require.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Equal(t, "log-1", logs[0].LogID)
	assert.Equal(t, models.RiskHigh, logs[0].RiskCategory)
	assert.Equal(t, 150, logs[0].APHi)
	assert.Equal(t, "log-2", logs[1].LogID)
	assert.Equal(t, models.RiskLow, logs[1].RiskCategory)
	assert.Equal(t, "kr", logs[1].Language)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAssessments_QueryError(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT(.|\n)+FROM assessment_logs`).
		WillReturnError(errors.New("relation does not exist"))

	logs, err := repo.ListAssessments(context.Background(), 50)

	assert.Error(t, err)
	assert.Nil(t, logs)
	assert.Contains(t, err.Error(), "failed to query assessment logs")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewAssessmentLog_CopiesFields(t *testing.T) {
	patient := &models.PatientRecord{
		AgeYears:    54,
		Gender:      2,
		Height:      175,
		Weight:      82,
		APHi:        150,
		APLo:        95,
		Cholesterol: 2,
		Gluc:        1,
		Smoke:       0,
		Alco:        0,
		Active:      1,
		UILanguage:  "en",
		Region:      "eu",
	}
	result := &models.RiskAssessmentResult{
		RiskProbability: 0.312,
		RiskCategory:    models.RiskHigh,
		ConfidenceLevel: "moderate",
		PatientBMI:      26.8,
		Audit: models.AuditInfo{
			ModelVersion: "primary-care-cvd-risk-catboost-v1.0",
		},
	}

	log := NewAssessmentLog(patient, result)

	assert.NotEmpty(t, log.LogID)
	assert.Equal(t, "eu", log.Region)
	assert.Equal(t, "en", log.Language)
	assert.Equal(t, 54, log.AgeYears)
	assert.Equal(t, 150, log.APHi)
	assert.Equal(t, 26.8, log.BMI)
	assert.Equal(t, 0.312, log.RiskProbability)
	assert.Equal(t, models.RiskHigh, log.RiskCategory)
	assert.Equal(t, "primary-care-cvd-risk-catboost-v1.0", log.ModelVersion)
	assert.False(t, log.CreatedAt.IsZero())
}
