package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cardiorisk/internal/export"
	"cardiorisk/internal/localization"
	"cardiorisk/internal/models"
	"cardiorisk/internal/repository"
	"cardiorisk/internal/scoring"
	"cardiorisk/internal/store"

	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20 // 1 MiB

// AssessmentService 评估服务接口（便于 handler 测试注入）
type AssessmentService interface {
	Assess(ctx context.Context, patient *models.PatientRecord, lang localization.Language, quotaClientID string) (*models.RiskAssessmentResult, error)
	QuotaUsage(ctx context.Context, clientID string) (used int, limit int, err error)
	LogAssessment(ctx context.Context, patient *models.PatientRecord, result *models.RiskAssessmentResult) error
	ListAssessments(ctx context.Context, limit int) ([]repository.AssessmentLog, error)
	StorageEnabled() bool
}

// AssessmentHandler 风险评估 HTTP Handler
type AssessmentHandler struct {
	svc    AssessmentService
	logger *zap.Logger
}

// NewAssessmentHandler 创建评估 Handler
func NewAssessmentHandler(svc AssessmentService, logger *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		svc:    svc,
		logger: logger,
	}
}

// Predict 执行风险评估
// 校验失败返回 422 与错误列表；内部失败返回不带细节的 500
func (h *AssessmentHandler) Predict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patient models.PatientRecord
	if err := readBodyJSON(r, maxRequestBody, &patient); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []string{"invalid request body: malformed JSON"},
		})
		return
	}

	if errs := patient.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": errs,
		})
		return
	}

	lang := localization.Language(patient.UILanguage)
	clientID := r.Header.Get("X-Client-Id")

	result, err := h.svc.Assess(ctx, &patient, lang, clientID)
	if err != nil {
		if errors.Is(err, store.ErrCooldown) || errors.Is(err, store.ErrLimitExceeded) {
			writeJSON(w, http.StatusTooManyRequests, map[string]any{
				"detail": err.Error(),
			})
			return
		}
		// 不向客户端泄漏内部错误细节
		h.logger.Error("Risk assessment failed",
			zap.String("patient", patient.String()),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"detail": "Internal Server Error: processing failed.",
		})
		return
	}

	result.DataValidation = &models.DataValidation{
		IsValid: true,
		Errors:  []string{},
	}

	writeJSON(w, http.StatusOK, result)
}

// QuotaStatus 返回调用方今日配额使用情况
func (h *AssessmentHandler) QuotaStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID := r.Header.Get("X-Client-Id")
	if clientID == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []string{"missing X-Client-Id header"},
		})
		return
	}

	used, limit, err := h.svc.QuotaUsage(ctx, clientID)
	if err != nil {
		h.logger.Error("Quota usage lookup failed",
			zap.String("client_id", clientID),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"detail": "Internal Server Error: quota status unavailable.",
		})
		return
	}

	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"used":      used,
		"limit":     limit,
		"remaining": remaining,
	})
}

// Health 健康检查
func (h *AssessmentHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Metrics 返回模型性能指标
func (h *AssessmentHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoring.Metrics())
}

// logPatientRequest 同意落库请求：患者数据 + 评估摘要
type logPatientRequest struct {
	models.PatientRecord
	RiskProbability float64 `json:"risk_probability"`
	RiskCategory    string  `json:"risk_category"`
	ConfidenceLevel string  `json:"confidence_level"`
	BMI             float64 `json:"patient_bmi"`
}

// LogPatientData 用户同意后记录匿名化评估数据
// 落库失败不返回错误状态码，只在响应体中标记（软失败）
func (h *AssessmentHandler) LogPatientData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req logPatientRequest
	if err := readBodyJSON(r, maxRequestBody, &req); err != nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "error",
			"message": "invalid request body",
		})
		return
	}

	if !h.svc.StorageEnabled() {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "error",
			"message": "Failed to log data: storage is not enabled",
		})
		return
	}

	result := &models.RiskAssessmentResult{
		RiskProbability: req.RiskProbability,
		RiskCategory:    req.RiskCategory,
		ConfidenceLevel: req.ConfidenceLevel,
		PatientBMI:      req.BMI,
		Audit: models.AuditInfo{
			ModelVersion: scoring.ModelVersion,
		},
	}

	if err := h.svc.LogAssessment(ctx, &req.PatientRecord, result); err != nil {
		h.logger.Error("Failed to log assessment", zap.Error(err))
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "error",
			"message": "Failed to log data",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Data logged successfully",
	})
}

// ExportAssessments 导出评估日志为 Excel
func (h *AssessmentHandler) ExportAssessments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := parseInt(r.URL.Query().Get("limit"), 10000)

	logs, err := h.svc.ListAssessments(ctx, limit)
	if err != nil {
		h.logger.Error("ListAssessments failed for export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"detail": "Internal Server Error: export failed.",
		})
		return
	}

	excelData, err := export.GenerateAssessmentExport(logs)
	if err != nil {
		h.logger.Error("GenerateAssessmentExport failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"detail": "Internal Server Error: export failed.",
		})
		return
	}

	filename := export.ExportFilename(time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(excelData)
}
