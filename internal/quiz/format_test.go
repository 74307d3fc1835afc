package quiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruitOptions = []string{"苹果", "香蕉", "橙子", "葡萄"}

func TestFormatUserAnswerSingle(t *testing.T) {
	tests := []struct {
		name   string
		answer any
		want   string
	}{
		{"valid letter", "B", "B. 香蕉"},
		{"envelope", ChoiceAnswer{Choice: "A"}, "A. 苹果"},
		{"decoded object", map[string]any{"choice": "d"}, "D. 葡萄"},
		{"absent", nil, "未作答"},
		{"out of range letter", "F", "未作答"},
		{"garbage letter", "#", "未作答"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUserAnswer(TypeSingle, tt.answer, fruitOptions))
		})
	}
}

func TestFormatSingleOutOfRangeNormalized(t *testing.T) {
	// Normalizing a letter that is not among the options and then
	// formatting it must yield the placeholder, never an option lookup.
	env := Normalize(TypeSingle, "Z")
	require.Equal(t, ChoiceAnswer{Choice: "Z"}, env)
	assert.Equal(t, "未作答", FormatUserAnswer(TypeSingle, env, fruitOptions))
	assert.Equal(t, "未提供", FormatExpectedAnswer(TypeSingle, env, fruitOptions))
}

func TestFormatJudge(t *testing.T) {
	tests := []struct {
		name         string
		answer       any
		wantUser     string
		wantExpected string
	}{
		{"true bool", true, "正确", "正确"},
		{"false envelope", JudgeAnswer{Value: false}, "错误", "错误"},
		{"decoded true", map[string]any{"value": true}, "正确", "正确"},
		{"absent", nil, "未作答", "未提供"},
		{"non-boolean", "true", "未作答", "未提供"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantUser, FormatUserAnswer(TypeJudge, tt.answer, nil))
			assert.Equal(t, tt.wantExpected, FormatExpectedAnswer(TypeJudge, tt.answer, nil))
		})
	}
}

func TestFormatFreeText(t *testing.T) {
	assert.Equal(t, "线粒体", FormatUserAnswer(TypeShort, TextAnswer{Text: "线粒体"}, nil))
	assert.Equal(t, "未作答", FormatUserAnswer(TypeFillBlank, nil, nil))
	assert.Equal(t, "未作答", FormatUserAnswer(TypeWritten, map[string]any{"text": "  "}, nil))

	// Expected answers prefer the dedicated reference field.
	decoded := map[string]any{"reference_answer": "ATP 合成", "text": "别的"}
	assert.Equal(t, "ATP 合成", FormatExpectedAnswer(TypeCalculation, decoded, nil))
	assert.Equal(t, "别的", FormatExpectedAnswer(TypeShort, map[string]any{"text": "别的"}, nil))
	assert.Equal(t, "暂无参考答案", FormatExpectedAnswer(TypeShort, nil, nil))

	// The user-side formatter ignores reference_answer.
	assert.Equal(t, "未作答", FormatUserAnswer(TypeShort, map[string]any{"reference_answer": "x"}, nil))
}

func TestFormatUnknownTypeVerbatim(t *testing.T) {
	// Shapes the client has no rule for are stringified, not dropped.
	assert.Equal(t, "好的", FormatUserAnswer("matching", "好的", nil))
	got := FormatUserAnswer("matching", map[string]any{"pairs": []any{"a"}}, nil)
	assert.JSONEq(t, `{"pairs":["a"]}`, got)
	assert.Equal(t, "未作答", FormatUserAnswer("matching", nil, nil))
	assert.Equal(t, "未提供", FormatExpectedAnswer("matching", nil, nil))
}

func TestVerdictOf(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, VerdictCorrect, VerdictOf(&yes))
	assert.Equal(t, VerdictWrong, VerdictOf(&no))
	assert.Equal(t, VerdictPending, VerdictOf(nil))

	assert.Equal(t, "正确", VerdictCorrect.Label())
	assert.Equal(t, "错误", VerdictWrong.Label())
	assert.Equal(t, "未评分", VerdictPending.Label())
}

func TestJudgeResultEndToEnd(t *testing.T) {
	// A graded judge question as it comes off the wire: the learner
	// answered false, the reference is true, and grading marked it wrong.
	payload := []byte(`{
		"question_id": 7,
		"correct": false,
		"user_answer": {"value": false},
		"expected_answer": {"value": true}
	}`)
	var res QuestionResult
	require.NoError(t, json.Unmarshal(payload, &res))

	assert.Equal(t, "错误", FormatUserAnswer(TypeJudge, res.UserAnswer, nil))
	assert.Equal(t, "正确", FormatExpectedAnswer(TypeJudge, res.ExpectedAnswer, nil))
	require.NotNil(t, res.Correct)
	assert.Equal(t, VerdictWrong, VerdictOf(res.Correct))
}

func TestSubmissionWireShape(t *testing.T) {
	att := NewAttempt(Quiz{
		QuizID: 9,
		Questions: []Question{
			{QuestionID: 1, Type: TypeSingle, Options: fruitOptions},
			{QuestionID: 2, Type: TypeJudge},
		},
	})
	att.SetRaw(1, "A")

	b, err := json.Marshal(att.Submission())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"quiz_id": 9,
		"answers": [
			{"question_id": 1, "user_answer": {"choice": "A"}},
			{"question_id": 2, "user_answer": null}
		]
	}`, string(b))
}

func TestFormatRecommendation(t *testing.T) {
	assert.Equal(t, "暂无推荐", FormatRecommendation(nil))
	assert.Equal(t, "暂无推荐", FormatRecommendation(map[string]any{}))
	assert.Equal(t, "下次建议优先简单题。", FormatRecommendation(map[string]any{"next_quiz_recommendation": "easy_first"}))
	assert.Equal(t, "暂无特殊推荐。", FormatRecommendation(map[string]any{"accuracy": 0.8}))
}

func TestTypeAndDifficultyLabels(t *testing.T) {
	assert.Equal(t, "单选", TypeLabel(TypeSingle))
	assert.Equal(t, "matching", TypeLabel("matching"))
	assert.Equal(t, "易", DifficultyLabel(DifficultyEasy))
	assert.Equal(t, "Legendary", DifficultyLabel("Legendary"))
}

func TestDifficultyPlanTotal(t *testing.T) {
	plan := DifficultyPlan{DifficultyEasy: 2, DifficultyMedium: 2, DifficultyHard: 1}
	assert.Equal(t, 5, plan.Total())
	assert.Equal(t, 0, DifficultyPlan{}.Total())
}
