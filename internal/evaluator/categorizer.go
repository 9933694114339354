package evaluator

import (
	"math"

	"cardiorisk/internal/models"
)

// CategorizeRisk 概率 → 三级风险分类（对 [0,1] 全定义，单调）
func CategorizeRisk(t *Thresholds, probability float64) string {
	switch {
	case probability < t.LowRiskMax:
		return models.RiskLow
	case probability < t.HighRiskMin:
		return models.RiskModerate
	default:
		return models.RiskHigh
	}
}

// AssessConfidence 按与高风险决策边界的距离评估预测置信度
// 置信度反映的是离边界的距离，不是模型整体校准水平
func AssessConfidence(t *Thresholds, probability float64) string {
	distance := math.Abs(probability - t.HighRiskMin)

	switch {
	case distance >= t.ConfidenceHigh:
		return models.RiskHigh
	case distance >= t.ConfidenceMod:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}
