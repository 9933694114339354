package evaluator

import "cardiorisk/internal/models"

// Thresholds 风险评估的只读配置表（进程启动时构建一次，注入 Evaluator）
// 边界值（borderline）为待临床专家确认的配置常量，不随模型重训调整
type Thresholds struct {
	// 风险分类切点（为筛查场景的高敏感度调优，非 50/50）
	LowRiskMax     float64 // below → low
	HighRiskMin    float64 // at/above → high（决策边界，confidence 以此为基准）
	ConfidenceHigh float64 // |p - HighRiskMin| ≥ → high confidence
	ConfidenceMod  float64 // ≥ → moderate confidence

	// 统计显著性过滤：非病理特征 |attribution| 低于该值不进入解释
	Significance float64
	// 方向与统计值冲突时的同步幅度（±）
	SyncMagnitude float64
	// 规则因子的固定幅度（非统计来源）
	RuleFactorWeight float64
	// 临床状态因子前插时的高显著性幅度
	ConditionWeight float64

	Pathological PathologicalThresholds
	Borderline   BorderlineThresholds

	// ClinicalPriors 特征的临床先验方向（用于 borderline 判定）
	ClinicalPriors map[string]string
	// Priority 因子排序优先级（数值越小越靠前，缺失 → 99）
	Priority map[string]int
}

// PathologicalThresholds 病理阈值（Medical Ground Truth，强制覆盖统计方向）
type PathologicalThresholds struct {
	APHi       float64 // systolic ≥
	APLo       float64 // diastolic ≥
	GlucNormal float64 // gluc category > normal
	BMI        float64 // ≥
	AgeDays    float64 // ≥ (60y * 365)
}

// BorderlineThresholds 边界值：未达病理阈值但临床先验判为升高风险的切点
type BorderlineThresholds struct {
	APHi     float64
	APLo     float64
	AgeYears float64
	BMI      float64
}

// 排序优先级表中缺失 key 的默认值
const priorityUnranked = 99

// DefaultThresholds 生产配置
func DefaultThresholds() *Thresholds {
	return &Thresholds{
		LowRiskMax:     0.15,
		HighRiskMin:    0.2673, // tuned for 90% sensitivity
		ConfidenceHigh: 0.10,
		ConfidenceMod:  0.04,

		Significance:     0.05,
		SyncMagnitude:    0.05,
		RuleFactorWeight: 0.05,
		ConditionWeight:  0.1,

		Pathological: PathologicalThresholds{
			APHi:       140,
			APLo:       90,
			GlucNormal: 1,
			BMI:        30,
			AgeDays:    21900,
		},
		Borderline: BorderlineThresholds{
			APHi:     135,
			APLo:     85,
			AgeYears: 55,
			BMI:      25,
		},

		ClinicalPriors: map[string]string{
			models.FeatureAPHi:        models.DirectionIncreases,
			models.FeatureAPLo:        models.DirectionIncreases,
			models.FeatureAge:         models.DirectionIncreases,
			models.FeatureBMI:         models.DirectionIncreases,
			models.FeatureCholesterol: models.DirectionIncreases,
			models.FeatureGluc:        models.DirectionIncreases,
			models.FeatureSmoke:       models.DirectionIncreases,
			models.FeatureAlco:        models.DirectionIncreases,
		},

		Priority: map[string]int{
			"high_bp":               1,
			"obesity":               2,
			"cholesterol_high":      3,
			"cholesterol_attention": 4,
			"age_years":             5,
			"bmi":                   6,
			"ap_hi":                 7,
			"ap_lo":                 8,
			"smoke":                 9,
			"gluc":                  10,
			"alco":                  11,
			"active":                12,
		},
	}
}

// priorityRank 查表取优先级，缺失 key 排到最后
func (t *Thresholds) priorityRank(key string) int {
	if rank, ok := t.Priority[key]; ok {
		return rank
	}
	return priorityUnranked
}
