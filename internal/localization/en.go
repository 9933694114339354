package localization

var english = &Strings{
	RiskCategory: map[string]string{
		"low":      "Low cardiovascular risk",
		"moderate": "Moderate cardiovascular risk",
		"high":     "High cardiovascular risk",
	},
	Confidence: map[string]TitledNote{
		"high": {
			Title: "High prediction confidence",
			Note:  "The prediction is stable and clearly distinguished from risk thresholds.",
		},
		"moderate": {
			Title: "Moderate prediction confidence",
			Note:  "The prediction is close to risk thresholds and requires clinical interpretation.",
		},
		"low": {
			Title: "Low prediction confidence",
			Note:  "The prediction is unstable and should be interpreted with caution.",
		},
	},
	Warnings: map[string]string{
		"young_age":      "The model is less accurate for patients under 40 years old",
		"bp_inversion":   "Systolic blood pressure is lower than diastolic. Please check the accuracy of the input data.",
		"underweight":    "Body mass index indicates underweight. Interpretation of cardiovascular risk may differ.",
		"very_old_age":   "The patient's age exceeds the range used during model training. Prediction reliability may be reduced.",
		"extreme_bp":     "Blood pressure values are outside the typical clinical ranges observed during model training.",
		"extreme_bmi":    "Extremely high BMI value detected. Model prediction may be unreliable.",
		"low_confidence": "The prediction is close to clinical threshold values. Interpret the result with caution.",
	},
	MetricWarnings: map[string]string{
		"low_precision":           "Note: Model has moderate precision, consider additional clinical evaluation.",
		"moderate_discrimination": "Model discrimination is moderate, interpret results cautiously.",
	},
	RiskCardHeadline: map[string]string{
		"high":     "High cardiovascular risk",
		"moderate": "Moderate cardiovascular risk",
		"low":      "Low cardiovascular risk",
	},
	RiskCardSummary: map[string]string{
		"high":     "The patient has a high cardiovascular risk. Key factors: %s. Clinical intervention is recommended.",
		"moderate": "A moderate cardiovascular risk has been identified, influenced by factors: %s. Monitoring and lifestyle modification are advised.",
		"low":      "Cardiovascular risk is low. No clinically significant risk factors were identified.",
	},
	Factors: map[string]FactorText{
		"age": {
			Name: "Age",
			Note: "Patient age is a significant factor in cardiovascular risk.",
		},
		"height": {
			Name: "Height",
			Note: "Patient height is used for BMI calculation.",
		},
		"weight": {
			Name: "Weight",
			Note: "Increased weight can contribute to cardiac strain.",
		},
		"ap_hi": {
			Name: "Systolic Blood Pressure",
			Note: "Systolic blood pressure ≥ 140 mmHg indicates hypertension.",
		},
		"ap_lo": {
			Name: "Diastolic Blood Pressure",
			Note: "Diastolic blood pressure ≥ 90 mmHg increases cardiovascular risk.",
		},
		"cholesterol": {
			Name: "Cholesterol Level",
			Note: "Total cholesterol level is a key factor in atherosclerosis development.",
		},
		"bmi": {
			Name: "Body Mass Index",
			Note: "BMI ≥ 30 kg/m² indicates obesity, which increases risk.",
		},
		"gluc": {
			Name: "Glucose Level",
			Note: "High blood glucose levels are associated with increased cardiovascular risk.",
		},
		"smoke": {
			Name: "Smoking Status",
			Note: "Smoking is an independent cardiovascular risk factor.",
		},
		"active": {
			Name: "Physical Activity",
			Note: "Low levels of physical activity increase cardiovascular risk.",
		},
		"alco": {
			Name: "Alcohol Consumption",
			Note: "Regular alcohol consumption is associated with increased cardiovascular risk.",
		},
		"gender": {
			Name: "Sex",
			Note: "Patient sex influences the baseline cardiovascular risk level.",
		},
	},
	ClinicalFactors: map[string]FactorText{
		"cholesterol_attention": {
			Name: "Cholesterol Level",
			Note: "Cholesterol level is above normal. Management and lifestyle modification are recommended.",
		},
		"cholesterol_high": {
			Name: "Cholesterol Level",
			Note: "Elevated total cholesterol level is associated with high cardiovascular risk.",
		},
	},
	ClinicalConditions: map[string]ConditionText{
		"high_bp": {
			Name:     "Hypertension",
			Severity: "high",
			Note:     "Systolic blood pressure ≥ 140 mmHg",
		},
		"obesity": {
			Name:     "Obesity",
			Severity: "moderate",
			Note:     "Body mass index ≥ 30 kg/m²",
		},
	},
	Directions: map[string]string{
		"increases": "increases risk",
		"reduces":   "reduces risk",
		"neutral":   "no effect",
	},
	Disclaimer: "This tool is intended for clinical decision support only and does not replace professional medical advice.",
}
