package localization

var russian = &Strings{
	RiskCategory: map[string]string{
		"low":      "Низкий сердечно-сосудистый риск",
		"moderate": "Умеренный сердечно-сосудистый риск",
		"high":     "Высокий сердечно-сосудистый риск",
	},
	Confidence: map[string]TitledNote{
		"high": {
			Title: "Высокая достоверность прогноза",
			Note:  "Прогноз стабилен и уверенно отличается от пороговых значений риска.",
		},
		"moderate": {
			Title: "Умеренная достоверность прогноза",
			Note:  "Прогноз близок к пороговым значениям риска и требует клинической интерпретации.",
		},
		"low": {
			Title: "Низкая достоверность прогноза",
			Note:  "Прогноз нестабилен и должен интерпретироваться с осторожностью.",
		},
	},
	Warnings: map[string]string{
		"young_age":      "Модель менее точна у пациентов младше 40 лет",
		"bp_inversion":   "Систолическое давление ниже диастолического. Проверьте корректность введённых данных.",
		"underweight":    "Индекс массы тела указывает на недостаточный вес. Интерпретация сердечно-сосудистого риска может отличаться.",
		"very_old_age":   "Возраст пациента превышает диапазон, использованный при обучении модели. Достоверность прогноза может быть снижена.",
		"extreme_bp":     "Значения артериального давления выходят за пределы типичных клинических диапазонов, наблюдавшихся при обучении модели.",
		"extreme_bmi":    "Обнаружено экстремально высокое значение ИМТ. Прогноз модели может быть ненадёжным.",
		"low_confidence": "Прогноз близок к клиническому пороговому значению. Интерпретируйте результат с осторожностью.",
	},
	MetricWarnings: map[string]string{
		"low_precision":           "Примечание: Модель имеет умеренную точность, рассмотрите дополнительную клиническую оценку.",
		"moderate_discrimination": "Дискриминация модели умеренная, интерпретируйте результаты осторожно.",
	},
	RiskCardHeadline: map[string]string{
		"high":     "Высокий сердечно-сосудистый риск",
		"moderate": "Умеренный сердечно-сосудистый риск",
		"low":      "Низкий сердечно-сосудистый риск",
	},
	RiskCardSummary: map[string]string{
		"high":     "Пациент имеет высокий сердечно-сосудистый риск. Основные факторы: %s. Рекомендуется клиническое вмешательство.",
		"moderate": "Выявлен умеренный сердечно-сосудистый риск, обусловленный факторами: %s. Рекомендовано наблюдение и коррекция образа жизни.",
		"low":      "Сердечно-сосудистый риск низкий. Значимые факторы риска не выявлены.",
	},
	Factors: map[string]FactorText{
		"age": {
			Name: "Возраст",
			Note: "Возраст пациента является значимым фактором сердечно-сосудистого риска.",
		},
		"height": {
			Name: "Рост",
			Note: "Рост пациента используется для расчета индекса массы тела.",
		},
		"weight": {
			Name: "Вес",
			Note: "Повышенный вес может способствовать увеличению нагрузки на сердце.",
		},
		"ap_hi": {
			Name: "Систолическое АД",
			Note: "Систолическое артериальное давление ≥ 140 мм рт. ст. указывает на гипертензию.",
		},
		"ap_lo": {
			Name: "Диастолическое АД",
			Note: "Диастолическое артериальное давление ≥ 90 мм рт. ст. повышает сердечно-сосудистый риск.",
		},
		"cholesterol": {
			Name: "Уровень холестерина",
			Note: "Уровень общего холестерина является ключевым фактором развития атеросклероза.",
		},
		"bmi": {
			Name: "Индекс массы тела",
			Note: "ИМТ ≥ 30 кг/м² указывает на ожирение, что повышает риск сердечно-сосудистых осложнений.",
		},
		"gluc": {
			Name: "Уровень глюкозы",
			Note: "Повышенный уровень глюкозы крови ассоциирован с повышенным сердечно-сосудистым риском.",
		},
		"smoke": {
			Name: "Курение",
			Note: "Курение является независимым фактором сердечно-сосудистого риска.",
		},
		"active": {
			Name: "Физическая активность",
			Note: "Низкий уровень физической активности повышает сердечно-сосудистый риск.",
		},
		"alco": {
			Name: "Алкоголь",
			Note: "Регулярное употребление алкоголя связано с повышенным сердечно-сосудистым риском.",
		},
		"gender": {
			Name: "Пол",
			Note: "Пол пациента влияет на базовый уровень сердечно-сосудистого риска.",
		},
	},
	ClinicalFactors: map[string]FactorText{
		"cholesterol_attention": {
			Name: "Уровень холестерина",
			Note: "Уровень холестерина выше нормы. Рекомендуется контроль и коррекция образа жизни.",
		},
		"cholesterol_high": {
			Name: "Уровень холестерина",
			Note: "Повышенный уровень общего холестерина ассоциирован с высоким сердечно-сосудистым риском.",
		},
	},
	ClinicalConditions: map[string]ConditionText{
		"high_bp": {
			Name:     "Артериальная гипертензия",
			Severity: "high",
			Note:     "Систолическое артериальное давление ≥ 140 мм рт. ст.",
		},
		"obesity": {
			Name:     "Ожирение",
			Severity: "moderate",
			Note:     "Индекс массы тела ≥ 30 кг/м².",
		},
	},
	Directions: map[string]string{
		"increases": "повышает риск",
		"reduces":   "снижает риск",
		"neutral":   "не влияет",
	},
	Disclaimer: "Данный инструмент предназначен только для клинической поддержки принятия решений и не заменяет профессиональное медицинское заключение.",
}
