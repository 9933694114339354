package models

import (
	"fmt"

	"cardiorisk/internal/localization"
)

// Feature keys as emitted by the external explainer, in model input order.
const (
	FeatureAge         = "age"
	FeatureGender      = "gender"
	FeatureHeight      = "height"
	FeatureWeight      = "weight"
	FeatureAPHi        = "ap_hi"
	FeatureAPLo        = "ap_lo"
	FeatureCholesterol = "cholesterol"
	FeatureGluc        = "gluc"
	FeatureSmoke       = "smoke"
	FeatureAlco        = "alco"
	FeatureActive      = "active"
	FeatureBMI         = "bmi"
)

// FeatureOrder 模型特征向量的固定顺序（age 单位为天）
var FeatureOrder = []string{
	FeatureAge,
	FeatureGender,
	FeatureHeight,
	FeatureWeight,
	FeatureAPHi,
	FeatureAPLo,
	FeatureCholesterol,
	FeatureGluc,
	FeatureSmoke,
	FeatureAlco,
	FeatureActive,
	FeatureBMI,
}

// DaysPerYear converts age in years to the day unit the model was trained on.
const DaysPerYear = 365.25

// PatientRecord 患者输入数据（验证后不可变）
type PatientRecord struct {
	AgeYears    int      `json:"age_years"`
	Gender      int      `json:"gender"` // 1-female, 2-male
	Height      float64  `json:"height"` // cm
	Weight      float64  `json:"weight"` // kg
	APHi        int      `json:"ap_hi"`  // systolic, mmHg
	APLo        int      `json:"ap_lo"`  // diastolic, mmHg
	Cholesterol int      `json:"cholesterol"` // 1-normal, 2-above normal, 3-high
	Gluc        int      `json:"gluc"`        // 1-normal, 2-above normal, 3-high
	Smoke       int      `json:"smoke"`
	Alco        int      `json:"alco"`
	Active      int      `json:"active"`
	BMI         *float64 `json:"bmi,omitempty"` // computed from height/weight when absent
	UILanguage  string   `json:"ui_language"`
	Region      string   `json:"region,omitempty"`
}

// Validate 校验临床取值范围，返回错误列表（空 = 合法）
func (p *PatientRecord) Validate() []string {
	var errs []string

	if p.AgeYears < 18 || p.AgeYears > 90 {
		errs = append(errs, "age_years must be between 18 and 90")
	}
	if p.Gender < 1 || p.Gender > 2 {
		errs = append(errs, "gender must be 1 (female) or 2 (male)")
	}
	if p.Height < 100 || p.Height > 250 {
		errs = append(errs, "height must be between 100 and 250 cm")
	}
	if p.Weight < 30 || p.Weight > 250 {
		errs = append(errs, "weight must be between 30 and 250 kg")
	}
	if p.APHi < 60 || p.APHi > 240 {
		errs = append(errs, "ap_hi must be between 60 and 240 mmHg")
	}
	if p.APLo < 40 || p.APLo > 160 {
		errs = append(errs, "ap_lo must be between 40 and 160 mmHg")
	}
	if p.APHi <= p.APLo {
		errs = append(errs, "systolic pressure (ap_hi) must be higher than diastolic (ap_lo)")
	}
	if p.Cholesterol < 1 || p.Cholesterol > 3 {
		errs = append(errs, "cholesterol must be 1, 2 or 3")
	}
	if p.Gluc < 1 || p.Gluc > 3 {
		errs = append(errs, "gluc must be 1, 2 or 3")
	}
	if p.Smoke < 0 || p.Smoke > 1 {
		errs = append(errs, "smoke must be 0 or 1")
	}
	if p.Alco < 0 || p.Alco > 1 {
		errs = append(errs, "alco must be 0 or 1")
	}
	if p.Active < 0 || p.Active > 1 {
		errs = append(errs, "active must be 0 or 1")
	}
	if p.UILanguage != "" && !localization.Supported(p.UILanguage) {
		errs = append(errs, "ui_language must be one of en, ru, kr")
	}

	return errs
}

// ComputedBMI 返回 BMI：优先使用已提供的值，否则由身高体重计算
func (p *PatientRecord) ComputedBMI() float64 {
	if p.BMI != nil {
		return *p.BMI
	}
	if p.Height <= 0 {
		return 0
	}
	heightM := p.Height / 100.0
	return p.Weight / (heightM * heightM)
}

// AgeDays 年龄换算为天（与模型训练单位一致）
func (p *PatientRecord) AgeDays() float64 {
	return float64(p.AgeYears) * DaysPerYear
}

// FeatureVector 按 FeatureOrder 构造 12 维模型输入向量
func (p *PatientRecord) FeatureVector() []float64 {
	return []float64{
		p.AgeDays(),
		float64(p.Gender),
		p.Height,
		p.Weight,
		float64(p.APHi),
		float64(p.APLo),
		float64(p.Cholesterol),
		float64(p.Gluc),
		float64(p.Smoke),
		float64(p.Alco),
		float64(p.Active),
		p.ComputedBMI(),
	}
}

// FeatureValue 按特征键取患者实际值（age 以天为单位）
func (p *PatientRecord) FeatureValue(key string) (float64, bool) {
	switch key {
	case FeatureAge:
		return p.AgeDays(), true
	case FeatureGender:
		return float64(p.Gender), true
	case FeatureHeight:
		return p.Height, true
	case FeatureWeight:
		return p.Weight, true
	case FeatureAPHi:
		return float64(p.APHi), true
	case FeatureAPLo:
		return float64(p.APLo), true
	case FeatureCholesterol:
		return float64(p.Cholesterol), true
	case FeatureGluc:
		return float64(p.Gluc), true
	case FeatureSmoke:
		return float64(p.Smoke), true
	case FeatureAlco:
		return float64(p.Alco), true
	case FeatureActive:
		return float64(p.Active), true
	case FeatureBMI:
		return p.ComputedBMI(), true
	default:
		return 0, false
	}
}

// String 脱敏摘要（日志用，不含可识别信息）
func (p *PatientRecord) String() string {
	return fmt.Sprintf("patient{age=%d gender=%d ap=%d/%d}", p.AgeYears, p.Gender, p.APHi, p.APLo)
}
