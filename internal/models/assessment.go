package models

// Direction keys used by the reconciliation engine before localization.
const (
	DirectionIncreases = "increases"
	DirectionReduces   = "reduces"
)

// Risk categories and confidence levels (ordered low < moderate < high).
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// ClinicalFactor 单个风险解释因子
// key 在一次结果中唯一：首个贡献该 key 的来源生效，后续来源被抑制
type ClinicalFactor struct {
	Key          string  `json:"key"`
	Factor       string  `json:"factor"`
	Direction    string  `json:"direction"`     // localized display text
	RawDirection string  `json:"raw_direction"` // "increases" / "reduces"
	ShapValue    float64 `json:"shap_value"`
	ClinicalNote string  `json:"clinical_note"`
}

// ClinicalCondition 阈值触发的临床状态（高血压、肥胖等）
type ClinicalCondition struct {
	Key       string `json:"key"`
	Condition string `json:"condition"`
	Severity  string `json:"severity"`
	Note      string `json:"note"`
}

// KeyFactor risk card 摘要中的因子条目
type KeyFactor struct {
	Factor    string `json:"factor"`
	Direction string `json:"direction"`
}

// RiskCard 面向医生的结构化摘要卡片
type RiskCard struct {
	Headline               string      `json:"headline"`
	RiskProbabilityPercent float64     `json:"risk_probability_percent"`
	ConfidenceLevel        string      `json:"confidence_level"`
	ConfidenceNote         string      `json:"confidence_note"`
	KeyFactors             []KeyFactor `json:"key_factors"`
	ClinicalSummary        string      `json:"clinical_summary"`
}

// AuditInfo 审计信息（时间戳与 request_id 为结果中仅有的非确定性字段）
type AuditInfo struct {
	Timestamp    string `json:"timestamp"`
	ModelVersion string `json:"model_version"`
	RequestID    string `json:"request_id"`
	APIVersion   string `json:"api_version"`
}

// DataValidation 输入校验回显（与旧版 API 兼容）
type DataValidation struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// RiskAssessmentResult 完整的 clinical-grade 评估结果
// 字段名与嵌套结构必须与既有消费者保持一致，不可改动
type RiskAssessmentResult struct {
	RiskProbability float64 `json:"risk_probability"`
	RiskCategory    string  `json:"risk_category"`
	RiskLabel       string  `json:"risk_label"`

	ConfidenceLevel string `json:"confidence_level"`
	ConfidenceTitle string `json:"confidence_title"`
	ConfidenceNote  string `json:"confidence_note"`

	ClinicalExplanation []ClinicalFactor    `json:"clinical_explanation"`
	ClinicalConditions  []ClinicalCondition `json:"clinical_conditions"`

	SafetyWarnings []string `json:"safety_warnings"`
	PatientBMI     float64  `json:"patient_bmi"`

	RiskCard   RiskCard  `json:"risk_card"`
	Disclaimer string    `json:"disclaimer"`
	Audit      AuditInfo `json:"audit"`

	PerformanceMetrics map[string]float64 `json:"performance_metrics"`

	DataValidation *DataValidation `json:"data_validation,omitempty"`
}
