package evaluator

import (
	"math"

	"cardiorisk/internal/localization"
	"cardiorisk/internal/models"
)

// clinicalOnlyFeatures 只经阈值旗标路径评估的特征（不参与统计归因解释）
var clinicalOnlyFeatures = map[string]bool{
	models.FeatureCholesterol: true,
}

// directionContext 单个特征的方向判定上下文
type directionContext struct {
	thresholds *Thresholds
	patient    *models.PatientRecord

	feature      string
	value        float64
	hasValue     bool
	pathological bool
	attribution  float64
}

// directionRule 方向判定规则：ok=false 时交给链上的下一条规则
// 规则按固定顺序求值，插入新规则不需要改动既有分支
type directionRule struct {
	name    string
	resolve func(dc *directionContext) (string, bool)
}

// directionChain 方向判定优先级链（首个命中的规则生效）
var directionChain = []directionRule{
	{name: "pathological", resolve: resolvePathological},
	{name: "activity_override", resolve: resolveActivityOverride},
	{name: "behavior_absence", resolve: resolveBehaviorAbsence},
	{name: "clinical_prior", resolve: resolveClinicalPrior},
	{name: "statistical_fallback", resolve: resolveStatisticalFallback},
}

// resolvePathological 病理阈值强制覆盖：病理状态永远是升高风险
func resolvePathological(dc *directionContext) (string, bool) {
	if dc.pathological {
		return models.DirectionIncreases, true
	}
	return "", false
}

// resolveActivityOverride 体育活动强制覆盖
// 模型可能因采样偏差给健康行为算出升高风险的归因，绝不能呈现给医生
func resolveActivityOverride(dc *directionContext) (string, bool) {
	if dc.feature == models.FeatureActive && dc.hasValue && dc.value == 1 {
		return models.DirectionReduces, true
	}
	return "", false
}

// resolveBehaviorAbsence 风险行为不存在时不能显示为升高风险
func resolveBehaviorAbsence(dc *directionContext) (string, bool) {
	switch dc.feature {
	case models.FeatureSmoke, models.FeatureAlco:
		if !dc.hasValue || dc.value == 0 {
			return models.DirectionReduces, true
		}
	case models.FeatureGluc:
		if !dc.hasValue || dc.value <= 1 {
			return models.DirectionReduces, true
		}
	}
	return "", false
}

// resolveClinicalPrior 临床先验 + 边界值判定（未达病理阈值的灰区）
func resolveClinicalPrior(dc *directionContext) (string, bool) {
	if !dc.hasValue {
		return "", false
	}
	if dc.thresholds.ClinicalPriors[dc.feature] != models.DirectionIncreases {
		return "", false
	}

	b := dc.thresholds.Borderline
	switch dc.feature {
	case models.FeatureAPHi:
		return borderlineDirection(dc.value >= b.APHi), true
	case models.FeatureAPLo:
		return borderlineDirection(dc.value >= b.APLo), true
	case models.FeatureAge:
		// 边界值按年比较（病理阈值按天）
		return borderlineDirection(float64(dc.patient.AgeYears) >= b.AgeYears), true
	case models.FeatureBMI:
		return borderlineDirection(dc.value >= b.BMI), true
	}
	return "", false
}

// resolveStatisticalFallback 无临床先验时沿用统计符号（链尾，总是命中）
func resolveStatisticalFallback(dc *directionContext) (string, bool) {
	if dc.attribution > 0 {
		return models.DirectionIncreases, true
	}
	return models.DirectionReduces, true
}

func borderlineDirection(elevated bool) string {
	if elevated {
		return models.DirectionIncreases
	}
	return models.DirectionReduces
}

// isPathological 病理阈值表判定
func isPathological(t *Thresholds, feature string, value float64, hasValue bool) bool {
	if !hasValue {
		return false
	}
	switch feature {
	case models.FeatureAPHi:
		return value >= t.Pathological.APHi
	case models.FeatureAPLo:
		return value >= t.Pathological.APLo
	case models.FeatureGluc:
		return value > t.Pathological.GlucNormal
	case models.FeatureSmoke, models.FeatureAlco:
		return value == 1
	case models.FeatureActive:
		return value == 0
	case models.FeatureBMI:
		return value >= t.Pathological.BMI
	case models.FeatureAge:
		return value >= t.Pathological.AgeDays
	}
	return false
}

// InterpretAttributions 将统计归因转换为临床可解释因子
// 统计信号与医学事实冲突时，以病理阈值和临床先验为准：
// 解释器是确定性的、可审计的过滤器，绝不与既定临床事实矛盾
func InterpretAttributions(
	t *Thresholds,
	attributions map[string]float64,
	patient *models.PatientRecord,
	loc *localization.Strings,
	metrics map[string]float64,
) []models.ClinicalFactor {
	factors := []models.ClinicalFactor{}

	// 按固定特征顺序遍历，保证输出确定性（map 遍历无序）
	for _, feature := range models.FeatureOrder {
		attribution, ok := attributions[feature]
		if !ok {
			continue
		}
		if clinicalOnlyFeatures[feature] {
			continue
		}

		value, hasValue := patient.FeatureValue(feature)
		pathological := isPathological(t, feature, value, hasValue)

		// 纳入过滤：病理状态必须呈现，统计噪声（弱且无病理）跳过
		if !pathological && math.Abs(attribution) < t.Significance {
			continue
		}

		text, ok := loc.Factor(feature)
		if !ok {
			// 缺失文案：宁可省略该因子也不中断评估
			continue
		}

		dc := &directionContext{
			thresholds:   t,
			patient:      patient,
			feature:      feature,
			value:        value,
			hasValue:     hasValue,
			pathological: pathological,
			attribution:  attribution,
		}
		direction := resolveDirection(dc)

		factors = append(factors, models.ClinicalFactor{
			Key:          feature,
			Factor:       text.Name,
			Direction:    loc.Direction(direction),
			RawDirection: direction,
			ShapValue:    syncAttribution(t, direction, attribution),
			ClinicalNote: text.Note,
		})
	}

	appendPrecisionCaveat(factors, metrics, loc)

	return factors
}

// resolveDirection 按优先级链判定方向
func resolveDirection(dc *directionContext) string {
	for _, rule := range directionChain {
		if direction, ok := rule.resolve(dc); ok {
			return direction
		}
	}
	// unreachable: statistical_fallback 总是命中
	return models.DirectionReduces
}

// syncAttribution 数值符号与判定方向同步
// 统计值与临床方向矛盾时，夹取到固定小幅度而不是展示矛盾的符号
func syncAttribution(t *Thresholds, direction string, attribution float64) float64 {
	if direction == models.DirectionIncreases && attribution < 0 {
		return math.Max(t.SyncMagnitude, math.Abs(attribution))
	}
	if direction == models.DirectionReduces && attribution > 0 {
		return math.Min(-t.SyncMagnitude, -math.Abs(attribution))
	}
	return attribution
}

// appendPrecisionCaveat 模型精度不足时，仅对首个升高风险因子附加一条全局提示
func appendPrecisionCaveat(factors []models.ClinicalFactor, metrics map[string]float64, loc *localization.Strings) {
	if metrics == nil {
		return
	}
	precision := 0.5
	if v, ok := metrics["precision"]; ok {
		precision = v
	}
	if precision >= 0.6 {
		return
	}
	caveat, ok := loc.MetricWarnings["low_precision"]
	if !ok {
		return
	}
	for i := range factors {
		if factors[i].RawDirection == models.DirectionIncreases {
			factors[i].ClinicalNote += " " + caveat
			break
		}
	}
}
