package localization

var korean = &Strings{
	RiskCategory: map[string]string{
		"low":      "낮은 심혈관 위험",
		"moderate": "중등도 심혈관 위험",
		"high":     "높은 심혈관 위험",
	},
	Confidence: map[string]TitledNote{
		"high": {
			Title: "예측 신뢰도 높음",
			Note:  "예측 결과는 안정적이며 위험 기준값과 명확히 구분됩니다.",
		},
		"moderate": {
			Title: "예측 신뢰도 중간",
			Note:  "예측 결과는 위험 기준값에 근접하여 임상적 해석이 필요합니다.",
		},
		"low": {
			Title: "예측 신뢰도 낮음",
			Note:  "예측 결과가 불안정하여 주의 깊은 해석이 필요합니다.",
		},
	},
	Warnings: map[string]string{
		"young_age":      "40세 미만 환자에서는 모델 정확도가 낮을 수 있습니다",
		"bp_inversion":   "수축기 혈압이 이완기 혈압보다 낮습니다. 입력 데이터의 정확성을 확인하세요.",
		"underweight":    "체중 지수가 저체중을 나타냅니다. 심혈관 위험의 해석이 달라질 수 있습니다.",
		"very_old_age":   "환자의 나이가 모델 학습 시 사용된 범위를 초과합니다. 예측의 신뢰성은 감소할 수 있습니다.",
		"extreme_bp":     "혈압 값이 모델 학습 시 관찰된 일반적인 임상 범위를 벗어납니다.",
		"extreme_bmi":    "BMI 값이 극단적으로 높습니다. 모델 예측은 신뢰성이 낮을 수 있습니다.",
		"low_confidence": "예측 결과가 임상적 기준치에 가깝습니다. 결과 해석 시 주의가 필요합니다.",
	},
	MetricWarnings: map[string]string{
		"low_precision":           "참고: 모델의 정밀도가 중간 수준입니다. 추가 임상 평가를 고려하세요.",
		"moderate_discrimination": "모델 판별력이 중간 수준입니다. 결과를 신중하게 해석하세요.",
	},
	RiskCardHeadline: map[string]string{
		"high":     "높은 심혈관 위험",
		"moderate": "중등도 심혈관 위험",
		"low":      "낮은 심혈관 위험",
	},
	RiskCardSummary: map[string]string{
		"high":     "환자는 높은 심혈관 위험을 보입니다. 주요 위험 요인은 %s입니다. 임상적 개입이 권장됩니다.",
		"moderate": "환자에게 중등도의 심혈관 위험이 확인되었으며, 이는 다음 요인에 의해 영향을 받습니다: %s. 경과 관찰 및 생활습관 교정이 권장됩니다.",
		"low":      "심혈관 위험은 낮은 수준입니다. 임상적으로 유의한 위험 요인은 확인되지 않았습니다.",
	},
	Factors: map[string]FactorText{
		"age": {
			Name: "나이",
			Note: "환자의 나이는 심혈관 위험의 중요한 요소입니다.",
		},
		"height": {
			Name: "키",
			Note: "신장은 체질량 지수를 계산하는 데 사용됩니다.",
		},
		"weight": {
			Name: "몸무게",
			Note: "과체중은 심장 부하를 증가시킬 수 있습니다.",
		},
		"ap_hi": {
			Name: "수축기 혈압",
			Note: "수축기 혈압 ≥ 140 mmHg는 고혈압을 나타냅니다.",
		},
		"ap_lo": {
			Name: "이완기 혈압",
			Note: "이완기 혈압 ≥ 90 mmHg는 심혈관 위험을 증가시킵니다.",
		},
		"cholesterol": {
			Name: "콜레스테롤 수치",
			Note: "총 콜레스테롤 수치 상승은 죽상동맥경화증 발병의 핵심 요소입니다.",
		},
		"bmi": {
			Name: "체질량 지수",
			Note: "BMI ≥ 30 kg/m²는 심혈관 합병증 위험을 높이는 비만을 나타냅니다.",
		},
		"gluc": {
			Name: "혈당 수치",
			Note: "높은 혈당 수치는 심혈관 위험 증가와 관련이 있습니다.",
		},
		"smoke": {
			Name: "흡연 상태",
			Note: "흡연은 독립적인 심혈관 위험 요인입니다.",
		},
		"active": {
			Name: "신체 활동",
			Note: "낮은 신체 활동 수준은 심혈관 위험을 증가시킵니다.",
		},
		"alco": {
			Name: "음주",
			Note: "규칙적인 음주는 심혈관 위험 증가와 관련이 있습니다.",
		},
		"gender": {
			Name: "성별",
			Note: "환자의 성별은 기본적인 심혈관 위험 수준에 영향을 미칩니다.",
		},
	},
	ClinicalFactors: map[string]FactorText{
		"cholesterol_attention": {
			Name: "콜레스테롤 수치",
			Note: "콜레스테롤 수치가 정상 범위를 초과합니다. 관리 및 생활습관 교정이 권장됩니다.",
		},
		"cholesterol_high": {
			Name: "콜레스테롤 수치",
			Note: "높은 총 콜레스테롤 수치는 높은 심혈관 위험과 관련이 있습니다.",
		},
	},
	ClinicalConditions: map[string]ConditionText{
		"high_bp": {
			Name:     "고혈압",
			Severity: "high",
			Note:     "수축기 혈압 ≥ 140 mmHg",
		},
		"obesity": {
			Name:     "비만",
			Severity: "moderate",
			Note:     "체질량 지수 ≥ 30 kg/m²",
		},
	},
	Directions: map[string]string{
		"increases": "위험 증가",
		"reduces":   "위험 감소",
		"neutral":   "영향 없음",
	},
	Disclaimer: "이 도구는 임상 의사 결정을 지원하기 위한 목적으로만 사용되며 전문적인 의료 조언을 대체하지 않습니다.",
}
