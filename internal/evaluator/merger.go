package evaluator

import (
	"sort"

	"cardiorisk/internal/models"
)

// MergeExplanation 合并三个独立来源的因子并按临床优先级排序
//
// 去重规则：同一 key 首个来源生效，后续来源被抑制（不合并数值）。
// 合并顺序：统计解释 → 行为因子追加 → 旗标因子追加 → 旗标状态前插
// （状态用 ConditionWeight 标记为高显著性，排在列表头部）。
// 最后整体按优先级表稳定排序，同级保持插入顺序。
func MergeExplanation(
	t *Thresholds,
	statistical []models.ClinicalFactor,
	behavioral []models.ClinicalFactor,
	flagFactors []models.ClinicalFactor,
	conditions []models.ClinicalCondition,
) []models.ClinicalFactor {
	merged := make([]models.ClinicalFactor, 0, len(statistical)+len(behavioral)+len(flagFactors)+len(conditions))
	seen := make(map[string]bool)

	for _, factor := range statistical {
		if seen[factor.Key] {
			continue
		}
		merged = append(merged, factor)
		seen[factor.Key] = true
	}

	for _, factor := range behavioral {
		if seen[factor.Key] {
			continue
		}
		merged = append(merged, factor)
		seen[factor.Key] = true
	}

	for _, factor := range flagFactors {
		if seen[factor.Key] {
			continue
		}
		merged = append(merged, factor)
		seen[factor.Key] = true
	}

	for _, condition := range conditions {
		if seen[condition.Key] {
			continue
		}
		factor := models.ClinicalFactor{
			Key:          condition.Key,
			Factor:       condition.Condition,
			Direction:    models.DirectionIncreases,
			RawDirection: models.DirectionIncreases,
			ShapValue:    t.ConditionWeight,
			ClinicalNote: condition.Note,
		}
		merged = append([]models.ClinicalFactor{factor}, merged...)
		seen[condition.Key] = true
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return t.priorityRank(merged[i].Key) < t.priorityRank(merged[j].Key)
	})

	return merged
}
