package evaluator

import (
	"context"
	"fmt"
	"math"
	"time"

	"cardiorisk/internal/localization"
	"cardiorisk/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scorer 外部评分模型（黑盒，进程级只读句柄）
type Scorer interface {
	Predict(ctx context.Context, features []float64) (float64, error)
}

// Explainer 外部归因解释器（正类的 feature → signed attribution）
type Explainer interface {
	Explain(ctx context.Context, features []float64) (map[string]float64, error)
}

// Evaluator 临床风险评估编排器
// 除审计戳的时间戳/request_id 外完全确定：各阶段均为纯函数，
// 只读取请求域输入与注入的只读阈值/优先级/本地化表，可无锁并发
type Evaluator struct {
	thresholds   *Thresholds
	scorer       Scorer
	explainer    Explainer
	metrics      map[string]float64
	modelVersion string
	apiVersion   string
	logger       *zap.Logger
}

// NewEvaluator 创建评估编排器
func NewEvaluator(
	thresholds *Thresholds,
	scorer Scorer,
	explainer Explainer,
	metrics map[string]float64,
	modelVersion string,
	apiVersion string,
	logger *zap.Logger,
) *Evaluator {
	return &Evaluator{
		thresholds:   thresholds,
		scorer:       scorer,
		explainer:    explainer,
		metrics:      metrics,
		modelVersion: modelVersion,
		apiVersion:   apiVersion,
		logger:       logger,
	}
}

// Evaluate 执行完整临床决策管线，返回 clinical-grade 结果
// 评分或归因失败对本次请求是致命的：不降级为纯规则结果，
// 缺少概率的风险分类对临床是误导
func (e *Evaluator) Evaluate(ctx context.Context, patient *models.PatientRecord, lang localization.Language) (*models.RiskAssessmentResult, error) {
	loc := localization.ForLanguage(lang)
	features := patient.FeatureVector()
	bmi := patient.ComputedBMI()

	// 1. 风险概率（外部模型）
	probability, err := e.scorer.Predict(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("risk scoring failed: %w", err)
	}

	// 2. 风险分类 + 置信度
	category := CategorizeRisk(e.thresholds, probability)
	confidence := AssessConfidence(e.thresholds, probability)
	confidenceText := loc.Confidence[confidence]

	// 3. 安全警告
	warnings := CollectSafetyWarnings(patient, confidence, loc)

	// 4. 统计归因（外部解释器）+ 临床校正
	attributions, err := e.explainer.Explain(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("attribution explain failed: %w", err)
	}
	statistical := InterpretAttributions(e.thresholds, attributions, patient, loc, e.metrics)

	// 5. 规则因子 + 阈值旗标
	behavioral := CollectBehavioralFactors(e.thresholds, patient, loc)
	flags := CollectThresholdFlags(e.thresholds, patient)
	flagFactors := BuildFlagFactors(e.thresholds, flags, loc)
	conditions := BuildFlagConditions(flags, loc)

	// 6. 合并去重 + 优先级排序
	explanation := MergeExplanation(e.thresholds, statistical, behavioral, flagFactors, conditions)

	// 7. Risk card
	card := BuildRiskCard(loc, category, probability, confidence, confidenceText.Note, explanation)

	result := &models.RiskAssessmentResult{
		RiskProbability: round3(probability),
		RiskCategory:    category,
		RiskLabel:       loc.RiskCategory[category],

		ConfidenceLevel: confidence,
		ConfidenceTitle: confidenceText.Title,
		ConfidenceNote:  confidenceText.Note,

		ClinicalExplanation: explanation,
		ClinicalConditions:  conditions,

		SafetyWarnings: warnings,
		PatientBMI:     round1(bmi),

		RiskCard:           card,
		Disclaimer:         loc.Disclaimer,
		Audit:              e.buildAudit(),
		PerformanceMetrics: e.metrics,
	}

	e.logger.Info("Risk evaluation completed",
		zap.String("request_id", result.Audit.RequestID),
		zap.String("risk_category", category),
		zap.Float64("risk_probability", result.RiskProbability),
		zap.String("confidence_level", confidence),
		zap.Int("factor_count", len(explanation)),
		zap.Int("warning_count", len(warnings)),
	)

	return result, nil
}

// buildAudit 审计戳：结果中仅有的非确定性字段
func (e *Evaluator) buildAudit() models.AuditInfo {
	return models.AuditInfo{
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		ModelVersion: e.modelVersion,
		RequestID:    uuid.New().String(),
		APIVersion:   e.apiVersion,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
