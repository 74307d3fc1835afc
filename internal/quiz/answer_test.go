package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSingle(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Envelope
	}{
		{"letter", "A", ChoiceAnswer{Choice: "A"}},
		{"lowercase letter", "b", ChoiceAnswer{Choice: "B"}},
		{"padded letter", "  C ", ChoiceAnswer{Choice: "C"}},
		{"absent", nil, nil},
		{"blank", "   ", nil},
		{"decoded object", map[string]any{"choice": "d"}, ChoiceAnswer{Choice: "D"}},
		{"object without choice", map[string]any{"value": true}, nil},
		{"wrong shape bool", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(TypeSingle, tt.raw))
		})
	}
}

func TestNormalizeJudge(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Envelope
	}{
		{"true", true, JudgeAnswer{Value: true}},
		{"false", false, JudgeAnswer{Value: false}},
		{"absent", nil, nil},
		{"decoded object", map[string]any{"value": false}, JudgeAnswer{Value: false}},
		// Present-but-not-boolean must not be coerced into false: the
		// answer is unknown, not incorrect.
		{"string value", "true", nil},
		{"numeric value", float64(1), nil},
		{"object with string value", map[string]any{"value": "yes"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(TypeJudge, tt.raw))
		})
	}
}

func TestNormalizeFreeText(t *testing.T) {
	for _, qt := range []QuestionType{TypeShort, TypeFillBlank, TypeCalculation, TypeWritten} {
		t.Run(string(qt), func(t *testing.T) {
			assert.Equal(t, TextAnswer{Text: "光合作用"}, Normalize(qt, "  光合作用 "))
			assert.Nil(t, Normalize(qt, ""))
			assert.Nil(t, Normalize(qt, "   "))
			assert.Nil(t, Normalize(qt, nil))
			assert.Equal(t, TextAnswer{Text: "x"}, Normalize(qt, map[string]any{"text": "x"}))
		})
	}
}

func TestNormalizeUnknownType(t *testing.T) {
	// Unknown types never block submission: strings get the free-text
	// treatment, other values pass through untouched.
	assert.Nil(t, Normalize("matching", nil))
	assert.Equal(t, TextAnswer{Text: "paired"}, Normalize("matching", " paired "))
	assert.Equal(t,
		RawAnswer{Value: map[string]any{"pairs": []any{"a", "b"}}},
		Normalize("matching", map[string]any{"pairs": []any{"a", "b"}}),
	)
}

func TestNormalizeIdempotent(t *testing.T) {
	tests := []struct {
		name string
		qt   QuestionType
		env  Envelope
	}{
		{"choice", TypeSingle, ChoiceAnswer{Choice: "B"}},
		{"judge true", TypeJudge, JudgeAnswer{Value: true}},
		{"judge false", TypeJudge, JudgeAnswer{Value: false}},
		{"text", TypeShort, TextAnswer{Text: "答案"}},
		{"raw", "matching", RawAnswer{Value: float64(3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Normalize(tt.qt, tt.env)
			assert.Equal(t, tt.env, once)
			assert.Equal(t, once, Normalize(tt.qt, once))
		})
	}
}

func TestNormalizeEnvelopeShapeMismatch(t *testing.T) {
	// An envelope whose shape does not match the declared type normalizes
	// to the null envelope instead of being reinterpreted.
	assert.Nil(t, Normalize(TypeJudge, TextAnswer{Text: "true"}))
	assert.Nil(t, Normalize(TypeSingle, JudgeAnswer{Value: true}))
	assert.Nil(t, Normalize(TypeShort, JudgeAnswer{Value: true}))
}

func TestAttemptSubmission(t *testing.T) {
	qz := Quiz{
		QuizID: 41,
		Questions: []Question{
			{QuestionID: 1, Type: TypeSingle, Options: []string{"甲", "乙", "丙", "丁"}},
			{QuestionID: 2, Type: TypeJudge},
			{QuestionID: 3, Type: TypeShort},
			{QuestionID: 4, Type: TypeJudge},
		},
	}
	att := NewAttempt(qz)
	att.SetRaw(1, "C")
	att.SetRaw(2, false)
	att.SetRaw(3, "  细胞膜 ")

	req := att.Submission()
	assert.Equal(t, 41, req.QuizID)
	assert.Len(t, req.Answers, 4)
	assert.Equal(t, ChoiceAnswer{Choice: "C"}, req.Answers[0].UserAnswer)
	assert.Equal(t, JudgeAnswer{Value: false}, req.Answers[1].UserAnswer)
	assert.Equal(t, TextAnswer{Text: "细胞膜"}, req.Answers[2].UserAnswer)
	// Question 4 was never answered: null envelope, not false.
	assert.Nil(t, req.Answers[3].UserAnswer)
}

func TestAttemptSetRawClears(t *testing.T) {
	att := NewAttempt(Quiz{Questions: []Question{{QuestionID: 1, Type: TypeShort}}})
	att.SetRaw(1, "x")
	assert.Equal(t, 1, att.Answered())
	att.SetRaw(1, nil)
	assert.Equal(t, 0, att.Answered())
	_, ok := att.Raw(1)
	assert.False(t, ok)
}
