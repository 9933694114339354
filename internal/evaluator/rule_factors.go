package evaluator

import (
	"cardiorisk/internal/localization"
	"cardiorisk/internal/models"
)

// Threshold flag keys (also the dedup/priority keys of derived factors).
const (
	FlagHighBP               = "high_bp"
	FlagObesity              = "obesity"
	FlagCholesterolAttention = "cholesterol_attention"
	FlagCholesterolHigh      = "cholesterol_high"
)

// CollectBehavioralFactors 行为类规则因子（非统计来源，固定幅度）
// 存在即为升高风险：吸烟、血糖失控、饮酒、缺乏运动
func CollectBehavioralFactors(t *Thresholds, patient *models.PatientRecord, loc *localization.Strings) []models.ClinicalFactor {
	var factors []models.ClinicalFactor

	add := func(key string) {
		text, ok := loc.Factor(key)
		if !ok {
			return
		}
		factors = append(factors, models.ClinicalFactor{
			Key:          key,
			Factor:       text.Name,
			Direction:    models.DirectionIncreases,
			RawDirection: models.DirectionIncreases,
			ShapValue:    t.RuleFactorWeight,
			ClinicalNote: text.Note,
		})
	}

	if patient.Smoke == 1 {
		add(models.FeatureSmoke)
	}
	if patient.Gluc == 3 {
		add(models.FeatureGluc)
	}
	if patient.Alco == 1 {
		add(models.FeatureAlco)
	}
	if patient.Active == 0 {
		add(models.FeatureActive)
	}

	return factors
}

// CollectThresholdFlags 阈值触发的临床旗标
func CollectThresholdFlags(t *Thresholds, patient *models.PatientRecord) []string {
	var flags []string

	if float64(patient.APHi) >= t.Pathological.APHi {
		flags = append(flags, FlagHighBP)
	}
	if patient.ComputedBMI() >= t.Pathological.BMI {
		flags = append(flags, FlagObesity)
	}
	if patient.Cholesterol == 2 {
		flags = append(flags, FlagCholesterolAttention)
	}
	if patient.Cholesterol == 3 {
		flags = append(flags, FlagCholesterolHigh)
	}

	return flags
}

// BuildFlagFactors 旗标 → 因子记录（仅对有 clinical_factors 文案的旗标生效）
func BuildFlagFactors(t *Thresholds, flags []string, loc *localization.Strings) []models.ClinicalFactor {
	var factors []models.ClinicalFactor

	for _, flag := range flags {
		text, ok := loc.ClinicalFactor(flag)
		if !ok {
			continue
		}
		factors = append(factors, models.ClinicalFactor{
			Key:          flag,
			Factor:       text.Name,
			Direction:    models.DirectionIncreases,
			RawDirection: models.DirectionIncreases,
			ShapValue:    t.RuleFactorWeight,
			ClinicalNote: text.Note,
		})
	}

	return factors
}

// BuildFlagConditions 旗标 → 临床状态记录（名称 + 严重度 + 说明）
func BuildFlagConditions(flags []string, loc *localization.Strings) []models.ClinicalCondition {
	conditions := []models.ClinicalCondition{}

	for _, flag := range flags {
		text, ok := loc.ClinicalCondition(flag)
		if !ok {
			continue
		}
		conditions = append(conditions, models.ClinicalCondition{
			Key:       flag,
			Condition: text.Name,
			Severity:  text.Severity,
			Note:      text.Note,
		})
	}

	return conditions
}
