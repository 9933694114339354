package scoring

import (
	"errors"

	"cardiorisk/internal/models"
)

// ModelVersion 当前部署的评分模型版本（审计戳使用）
const ModelVersion = "primary-care-cvd-risk-catboost-v1.0"

// ErrBadAttribution 解释器返回的归因形状不符合预期
// 对本次请求是致命错误：绝不部分解释
var ErrBadAttribution = errors.New("malformed attribution shape")

// Metrics 模型的静态性能指标（透明性展示 + 低精度提示判定）
// 模型以高敏感度为优化目标（Safety First）
func Metrics() map[string]float64 {
	return map[string]float64{
		"sensitivity": 0.90,
		"specificity": 0.4188,
		"roc_auc":     0.7989,
		"precision":   0.60,
		"recall":      0.9004,
		"f1_score":    0.72,
	}
}

// validateAttributions 校验归因映射：必须恰好覆盖 12 个已知特征键
func validateAttributions(attributions map[string]float64) error {
	if len(attributions) != len(models.FeatureOrder) {
		return ErrBadAttribution
	}
	for _, feature := range models.FeatureOrder {
		if _, ok := attributions[feature]; !ok {
			return ErrBadAttribution
		}
	}
	return nil
}
