package types

// UserIntent 用户意图枚举
//
// 上游定义的固定大写蛇形token集合，本包只负责按名称序列化其成员
type UserIntent string

const (
	UserIntentExplainCodeSelection     UserIntent = "EXPLAIN_CODE_SELECTION"
	UserIntentSuggestAlternateImpl     UserIntent = "SUGGEST_ALTERNATE_IMPLEMENTATION"
	UserIntentApplyCommonBestPractices UserIntent = "APPLY_COMMON_BEST_PRACTICES"
	UserIntentImproveCode              UserIntent = "IMPROVE_CODE"
	UserIntentShowExamples             UserIntent = "SHOW_EXAMPLES"
	UserIntentCiteSources              UserIntent = "CITE_SOURCES"
	UserIntentExplainLineByLine        UserIntent = "EXPLAIN_LINE_BY_LINE"
)

// IsValid 判断是否为已知的用户意图token
// 解码时不强制校验（集合归上游所有，可能扩充），由调用方按需检查
func (u UserIntent) IsValid() bool {
	switch u {
	case UserIntentExplainCodeSelection, UserIntentSuggestAlternateImpl,
		UserIntentApplyCommonBestPractices, UserIntentImproveCode,
		UserIntentShowExamples, UserIntentCiteSources, UserIntentExplainLineByLine:
		return true
	default:
		return false
	}
}
