package quiz

import (
	"encoding/json"
	"fmt"
)

// Display labels. The service and its study material are Chinese-first, so
// the verdict and placeholder strings follow suit.
const (
	emptyAnswerText   = "未作答"     // learner skipped the question
	emptyExpectedText = "未提供"     // service supplied no reference value
	noReferenceText   = "暂无参考答案" // free-text question without a reference answer
	judgeTrueLabel    = "正确"
	judgeFalseLabel   = "错误"
)

// TypeLabels maps question types to their short display names.
var TypeLabels = map[QuestionType]string{
	TypeSingle:      "单选",
	TypeJudge:       "判断",
	TypeShort:       "简答",
	TypeFillBlank:   "填空",
	TypeCalculation: "计算",
	TypeWritten:     "论述",
}

// DifficultyLabels maps difficulty levels to their short display names.
var DifficultyLabels = map[Difficulty]string{
	DifficultyEasy:   "易",
	DifficultyMedium: "中",
	DifficultyHard:   "难",
}

// TypeLabel returns the display name for a question type, falling back to
// the raw value for types this client does not know.
func TypeLabel(t QuestionType) string {
	if label, ok := TypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// DifficultyLabel returns the display name for a difficulty level.
func DifficultyLabel(d Difficulty) string {
	if label, ok := DifficultyLabels[d]; ok {
		return label
	}
	return string(d)
}

// Verdict is the three-way presentation state of a graded question.
// Ungraded is distinct from both correct and incorrect and must never be
// collapsed into either.
type Verdict int

const (
	VerdictCorrect Verdict = iota
	VerdictWrong
	VerdictPending
)

// VerdictOf maps the service's tri-state correctness flag to a Verdict.
func VerdictOf(correct *bool) Verdict {
	switch {
	case correct == nil:
		return VerdictPending
	case *correct:
		return VerdictCorrect
	default:
		return VerdictWrong
	}
}

// String returns the verdict's wire name, used by the local event log.
func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictWrong:
		return "wrong"
	default:
		return "pending"
	}
}

// Label returns the verdict's display name.
func (v Verdict) Label() string {
	switch v {
	case VerdictCorrect:
		return "正确"
	case VerdictWrong:
		return "错误"
	default:
		return "未评分"
	}
}

// FormatUserAnswer renders the learner's submitted answer for display.
// The answer may be an Envelope, a decoded JSON value from the grading
// response, or nil.
func FormatUserAnswer(t QuestionType, answer any, options []string) string {
	switch {
	case t == TypeSingle:
		return formatChoice(normalizeChoice(answer), options, emptyAnswerText)
	case t == TypeJudge:
		return formatJudge(normalizeJudge(answer), emptyAnswerText)
	case t.FreeText():
		if text := normalizeText(answer, "text"); text != "" {
			return text
		}
		return emptyAnswerText
	}
	return formatVerbatim(answer, emptyAnswerText)
}

// FormatExpectedAnswer renders the service's reference answer for display.
// Free-text questions prefer a dedicated reference_answer field over the
// generic text field.
func FormatExpectedAnswer(t QuestionType, answer any, options []string) string {
	switch {
	case t == TypeSingle:
		return formatChoice(normalizeChoice(answer), options, emptyExpectedText)
	case t == TypeJudge:
		return formatJudge(normalizeJudge(answer), emptyExpectedText)
	case t.FreeText():
		if text := normalizeText(answer, "reference_answer", "text"); text != "" {
			return text
		}
		return noReferenceText
	}
	return formatVerbatim(answer, emptyExpectedText)
}

// FormatRecommendation renders the next-quiz recommendation carried in a
// last-quiz summary.
func FormatRecommendation(summary map[string]any) string {
	if len(summary) == 0 {
		return "暂无推荐"
	}
	if summary["next_quiz_recommendation"] == "easy_first" {
		return "下次建议优先简单题。"
	}
	return "暂无特殊推荐。"
}

// formatChoice resolves a stored option letter against the question's
// options. Letters that do not index a valid option fall back to the
// placeholder rather than risking an out-of-bounds lookup.
func formatChoice(choice string, options []string, fallback string) string {
	if choice == "" {
		return fallback
	}
	index := int(choice[0]) - 'A'
	if index >= 0 && index < len(options) {
		return fmt.Sprintf("%s. %s", choice, options[index])
	}
	return fallback
}

func formatJudge(value *bool, fallback string) string {
	if value == nil {
		return fallback
	}
	if *value {
		return judgeTrueLabel
	}
	return judgeFalseLabel
}

// formatVerbatim handles answer shapes the client has no rule for. Strings
// pass through; any other non-nil value is stringified as JSON so nothing
// the service sent is silently dropped.
func formatVerbatim(answer any, fallback string) string {
	switch v := answer.(type) {
	case nil:
		return fallback
	case string:
		return v
	case TextAnswer:
		return v.Text
	case RawAnswer:
		return formatVerbatim(v.Value, fallback)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
