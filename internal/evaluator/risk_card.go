package evaluator

import (
	"fmt"
	"strings"

	"cardiorisk/internal/localization"
	"cardiorisk/internal/models"
)

// 摘要卡片呈现的因子数量上限
const cardTopFactors = 3

// BuildRiskCard 面向医生的结构化摘要卡片
// 因子列表须已按临床优先级排序，卡片取前三项
func BuildRiskCard(
	loc *localization.Strings,
	category string,
	probability float64,
	confidenceLevel string,
	confidenceNote string,
	explanation []models.ClinicalFactor,
) models.RiskCard {
	top := explanation
	if len(top) > cardTopFactors {
		top = top[:cardTopFactors]
	}

	keyFactors := make([]models.KeyFactor, 0, len(top))
	for _, factor := range top {
		keyFactors = append(keyFactors, models.KeyFactor{
			Factor:    factor.Factor,
			Direction: factor.Direction,
		})
	}

	return models.RiskCard{
		Headline:               loc.RiskCardHeadline[category],
		RiskProbabilityPercent: round1(probability * 100),
		ConfidenceLevel:        confidenceLevel,
		ConfidenceNote:         confidenceNote,
		KeyFactors:             keyFactors,
		ClinicalSummary:        clinicalSummary(loc, category, top),
	}
}

// clinicalSummary 渲染分类对应的摘要模板
// low 模板没有替换点（低风险不罗列因子）
func clinicalSummary(loc *localization.Strings, category string, top []models.ClinicalFactor) string {
	template, ok := loc.RiskCardSummary[category]
	if !ok {
		return ""
	}
	if !strings.Contains(template, "%s") {
		return template
	}

	names := make([]string, 0, len(top))
	for _, factor := range top {
		names = append(names, factor.Factor)
	}
	return fmt.Sprintf(template, strings.Join(names, ", "))
}
