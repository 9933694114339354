package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cardiorisk/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssessmentLog 匿名化评估记录（对应 assessment_logs 表）
// 仅在用户明确同意后写入；不含任何可识别信息
type AssessmentLog struct {
	LogID           string    `json:"log_id" db:"log_id"`
	Region          string    `json:"region" db:"region"`
	Language        string    `json:"language" db:"language"`
	AgeYears        int       `json:"age_years" db:"age_years"`
	Gender          int       `json:"gender" db:"gender"`
	Height          float64   `json:"height" db:"height"`
	Weight          float64   `json:"weight" db:"weight"`
	APHi            int       `json:"ap_hi" db:"ap_hi"`
	APLo            int       `json:"ap_lo" db:"ap_lo"`
	Cholesterol     int       `json:"cholesterol" db:"cholesterol"`
	Gluc            int       `json:"gluc" db:"gluc"`
	Smoke           int       `json:"smoke" db:"smoke"`
	Alco            int       `json:"alco" db:"alco"`
	Active          int       `json:"active" db:"active"`
	BMI             float64   `json:"bmi" db:"bmi"`
	RiskProbability float64   `json:"risk_probability" db:"risk_probability"`
	RiskCategory    string    `json:"risk_category" db:"risk_category"`
	ConfidenceLevel string    `json:"confidence_level" db:"confidence_level"`
	ModelVersion    string    `json:"model_version" db:"model_version"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// NewAssessmentLog 从患者记录与评估结果构建日志行
func NewAssessmentLog(patient *models.PatientRecord, result *models.RiskAssessmentResult) *AssessmentLog {
	return &AssessmentLog{
		LogID:           uuid.New().String(),
		Region:          patient.Region,
		Language:        patient.UILanguage,
		AgeYears:        patient.AgeYears,
		Gender:          patient.Gender,
		Height:          patient.Height,
		Weight:          patient.Weight,
		APHi:            patient.APHi,
		APLo:            patient.APLo,
		Cholesterol:     patient.Cholesterol,
		Gluc:            patient.Gluc,
		Smoke:           patient.Smoke,
		Alco:            patient.Alco,
		Active:          patient.Active,
		BMI:             result.PatientBMI,
		RiskProbability: result.RiskProbability,
		RiskCategory:    result.RiskCategory,
		ConfidenceLevel: result.ConfidenceLevel,
		ModelVersion:    result.Audit.ModelVersion,
		CreatedAt:       time.Now().UTC(),
	}
}

// AssessmentsRepository 评估日志仓库
type AssessmentsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAssessmentsRepository 创建评估日志仓库
func NewAssessmentsRepository(db *sql.DB, logger *zap.Logger) *AssessmentsRepository {
	return &AssessmentsRepository{
		db:     db,
		logger: logger,
	}
}

// InsertAssessment 写入一条评估日志
func (r *AssessmentsRepository) InsertAssessment(ctx context.Context, log *AssessmentLog) error {
	query := `
		INSERT INTO assessment_logs (
			log_id, region, language,
			age_years, gender, height, weight, ap_hi, ap_lo,
			cholesterol, gluc, smoke, alco, active, bmi,
			risk_probability, risk_category, confidence_level,
			model_version, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.db.ExecContext(ctx, query,
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
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert assessment log: %w", err)
	}

	return nil
}

// ListAssessments 按时间倒序列出评估日志（导出用）
func (r *AssessmentsRepository) ListAssessments(ctx context.Context, limit int) ([]AssessmentLog, error) {
	query := `
		SELECT
			log_id, region, language,
			age_years, gender, height, weight, ap_hi, ap_lo,
			cholesterol, gluc, smoke, alco, active, bmi,
			risk_probability, risk_category, confidence_level,
			model_version, created_at
		FROM assessment_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessment logs: %w", err)
	}
	defer rows.Close()

	var logs []AssessmentLog
	for rows.Next() {
		var log AssessmentLog
		err := rows.Scan(
			&log.LogID,
			&log.Region,
			&log.Language,
			&log.AgeYears,
			&log.Gender,
			&log.Height,
			&log.Weight,
			&log.APHi,
			&log.APLo,
			&log.Cholesterol,
			&log.Gluc,
			&log.Smoke,
			&log.Alco,
			&log.Active,
			&log.BMI,
			&log.RiskProbability,
			&log.RiskCategory,
			&log.ConfidenceLevel,
			&log.ModelVersion,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assessment logs: %w", err)
	}

	return logs, nil
}
