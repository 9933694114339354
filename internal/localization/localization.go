package localization

// Language 输出语言代码
type Language string

const (
	LangEN Language = "en"
	LangRU Language = "ru"
	LangKR Language = "kr"
)

// DefaultLanguage 显式回退语言：未知语言一律回退到英文
const DefaultLanguage = LangEN

// TitledNote 带标题的说明文本（confidence 等级）
type TitledNote struct {
	Title string
	Note  string
}

// FactorText 因子显示名与临床说明
type FactorText struct {
	Name string
	Note string
}

// ConditionText 临床状态显示文本
type ConditionText struct {
	Name     string
	Severity string
	Note     string
}

// Strings 单一语言的全部字符串表（进程级只读）
type Strings struct {
	RiskCategory       map[string]string
	Confidence         map[string]TitledNote
	Warnings           map[string]string
	MetricWarnings     map[string]string
	RiskCardHeadline   map[string]string
	RiskCardSummary    map[string]string // %s = comma-joined factor names
	Factors            map[string]FactorText
	ClinicalFactors    map[string]FactorText
	ClinicalConditions map[string]ConditionText
	Directions         map[string]string
	Disclaimer         string
}

var bundle = map[Language]*Strings{
	LangEN: english,
	LangRU: russian,
	LangKR: korean,
}

// Supported 判断语言代码是否受支持
func Supported(lang string) bool {
	_, ok := bundle[Language(lang)]
	return ok
}

// ForLanguage 返回指定语言的字符串表，未知语言回退到 DefaultLanguage
func ForLanguage(lang Language) *Strings {
	if s, ok := bundle[lang]; ok {
		return s
	}
	return bundle[DefaultLanguage]
}

// Warning 查找安全警告文本
func (s *Strings) Warning(key string) (string, bool) {
	v, ok := s.Warnings[key]
	return v, ok
}

// Factor 查找统计因子文本
func (s *Strings) Factor(key string) (FactorText, bool) {
	v, ok := s.Factors[key]
	return v, ok
}

// ClinicalFactor 查找阈值因子文本
func (s *Strings) ClinicalFactor(key string) (FactorText, bool) {
	v, ok := s.ClinicalFactors[key]
	return v, ok
}

// ClinicalCondition 查找临床状态文本
func (s *Strings) ClinicalCondition(key string) (ConditionText, bool) {
	v, ok := s.ClinicalConditions[key]
	return v, ok
}

// Direction 方向键的本地化显示（未知键原样返回）
func (s *Strings) Direction(key string) string {
	if v, ok := s.Directions[key]; ok {
		return v
	}
	return key
}
