package evaluator

import (
	"cardiorisk/internal/localization"
	"cardiorisk/internal/models"
)

// SafetyChecker 的规则常量：与模型训练队列相关，独立于评估阈值表
const (
	safetyYoungAge = 40
	safetyOldAge   = 85
	safetyMinBMI   = 18.5
	safetyMaxBMI   = 50
	safetyMaxAPHi  = 200
	safetyMaxAPLo  = 120
)

// CollectSafetyWarnings 汇总全部安全/OOD 警告
// 所有规则相互独立，均不阻断评估，只做文本标注
func CollectSafetyWarnings(patient *models.PatientRecord, confidenceLevel string, loc *localization.Strings) []string {
	warnings := []string{}
	warnings = append(warnings, inputSanityWarnings(patient, loc)...)
	warnings = append(warnings, outOfDistributionWarnings(patient, loc)...)
	warnings = append(warnings, uncertaintyWarnings(confidenceLevel, loc)...)
	return warnings
}

// inputSanityWarnings 输入合理性检查
func inputSanityWarnings(patient *models.PatientRecord, loc *localization.Strings) []string {
	var warnings []string

	if patient.AgeYears < safetyYoungAge {
		warnings = appendWarning(warnings, loc, "young_age")
	}

	// 上游校验应已拒绝该情况，这里是第二道防线
	if patient.APHi <= patient.APLo {
		warnings = appendWarning(warnings, loc, "bp_inversion")
	}

	if patient.ComputedBMI() < safetyMinBMI {
		warnings = appendWarning(warnings, loc, "underweight")
	}

	if patient.AgeYears > safetyOldAge {
		warnings = appendWarning(warnings, loc, "very_old_age")
	}

	return warnings
}

// outOfDistributionWarnings 超出训练分布范围的检查
func outOfDistributionWarnings(patient *models.PatientRecord, loc *localization.Strings) []string {
	var warnings []string

	if patient.APHi > safetyMaxAPHi || patient.APLo > safetyMaxAPLo {
		warnings = appendWarning(warnings, loc, "extreme_bp")
	}

	if patient.ComputedBMI() > safetyMaxBMI {
		warnings = appendWarning(warnings, loc, "extreme_bmi")
	}

	return warnings
}

// uncertaintyWarnings 低置信度提示
func uncertaintyWarnings(confidenceLevel string, loc *localization.Strings) []string {
	if confidenceLevel == models.RiskLow {
		var warnings []string
		return appendWarning(warnings, loc, "low_confidence")
	}
	return nil
}

// appendWarning 追加本地化警告；缺失的文案直接跳过，不报错
func appendWarning(warnings []string, loc *localization.Strings, key string) []string {
	if text, ok := loc.Warning(key); ok {
		return append(warnings, text)
	}
	return warnings
}
