package learnpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPathNoSignal(t *testing.T) {
	assert.Empty(t, BuildPath(Profile{}))
	assert.Empty(t, BuildPath(Profile{
		WeakConcepts:    []WeakConcept{},
		LastQuizSummary: map[string]any{},
	}))
}

func TestBuildPathFrustrationAloneIsNotSignal(t *testing.T) {
	// The empty-signal rule short-circuits before the frustration rule is
	// ever evaluated, so a frustrated learner with no concepts and no quiz
	// summary still gets no plan.
	p := Profile{
		FrustrationScore: 7,
		WeakConcepts:     []WeakConcept{},
		LastQuizSummary:  map[string]any{},
	}
	assert.Empty(t, BuildPath(p))
}

func TestBuildPathBounds(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
	}{
		{
			name: "one weak concept",
			profile: Profile{
				WeakConcepts: []WeakConcept{{Concept: "细胞呼吸", WrongCount: 2, WrongRate: 0.5}},
			},
		},
		{
			name: "everything firing",
			profile: Profile{
				FrustrationScore: 9,
				WeakConcepts: []WeakConcept{
					{Concept: "a", WrongCount: 9, WrongRate: 0.9},
					{Concept: "b", WrongCount: 8, WrongRate: 0.8},
					{Concept: "c", WrongCount: 7, WrongRate: 0.7},
					{Concept: "d", WrongCount: 6, WrongRate: 0.6},
				},
				LastQuizSummary: map[string]any{
					"accuracy":                 0.4,
					"next_quiz_recommendation": "easy_first",
				},
			},
		},
		{
			name: "summary only",
			profile: Profile{
				LastQuizSummary: map[string]any{"accuracy": 0.9},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := BuildPath(tt.profile)
			require.GreaterOrEqual(t, len(steps), MinSteps)
			require.LessOrEqual(t, len(steps), MaxSteps)

			titles := make(map[string]bool)
			for _, s := range steps {
				assert.False(t, titles[s.Title], "duplicate title %q", s.Title)
				titles[s.Title] = true
				assert.NotEmpty(t, s.Reason)
			}
		})
	}
}

func TestBuildPathWeakConceptOrdering(t *testing.T) {
	p := Profile{
		WeakConcepts: []WeakConcept{
			{Concept: "低频", WrongCount: 1, WrongRate: 0.2},
			{Concept: "并列一", WrongCount: 4, WrongRate: 0.4},
			{Concept: "高频", WrongCount: 6, WrongRate: 0.6},
			{Concept: "并列二", WrongCount: 4, WrongRate: 0.5},
		},
	}
	steps := BuildPath(p)
	require.GreaterOrEqual(t, len(steps), 3)

	assert.Equal(t, "复习概念：高频", steps[0].Title)
	// Equal wrong counts keep their original profile order (stable sort).
	assert.Equal(t, "复习概念：并列一", steps[1].Title)
	assert.Equal(t, "复习概念：并列二", steps[2].Title)
}

func TestBuildPathCapsWeakConcepts(t *testing.T) {
	p := Profile{
		WeakConcepts: []WeakConcept{
			{Concept: "a", WrongCount: 5},
			{Concept: "b", WrongCount: 4},
			{Concept: "c", WrongCount: 3},
			{Concept: "d", WrongCount: 2},
		},
	}
	steps := BuildPath(p)
	review := 0
	for _, s := range steps {
		if s.Source != nil && s.Source.Label == "学习画像" {
			review++
		}
	}
	assert.Equal(t, 3, review)
}

func TestBuildPathAccuracyStep(t *testing.T) {
	p := Profile{
		LastQuizSummary: map[string]any{"accuracy": 0.65},
	}
	steps := BuildPath(p)
	require.NotEmpty(t, steps)
	assert.Equal(t, "回顾最近测验错题", steps[0].Title)
	assert.Contains(t, steps[0].Reason, "65%")

	// A non-numeric accuracy does not produce the step.
	p.LastQuizSummary = map[string]any{"accuracy": "high"}
	for _, s := range BuildPath(p) {
		assert.NotEqual(t, "回顾最近测验错题", s.Title)
	}
}

func TestBuildPathEasyFirst(t *testing.T) {
	hasEasyFirst := func(steps []Step) bool {
		for _, s := range steps {
			if s.Title == "先做简单题巩固基础" {
				return true
			}
		}
		return false
	}

	// Triggered by the service recommendation.
	p := Profile{LastQuizSummary: map[string]any{"next_quiz_recommendation": "easy_first"}}
	assert.True(t, hasEasyFirst(BuildPath(p)))

	// Triggered by frustration, given some other signal exists.
	p = Profile{
		FrustrationScore: 6,
		WeakConcepts:     []WeakConcept{{Concept: "x", WrongCount: 1}},
	}
	assert.True(t, hasEasyFirst(BuildPath(p)))

	// Below threshold and no recommendation: absent.
	p = Profile{
		FrustrationScore: 5,
		WeakConcepts:     []WeakConcept{{Concept: "x", WrongCount: 1}},
	}
	assert.False(t, hasEasyFirst(BuildPath(p)))
}

func TestBuildPathDeterministic(t *testing.T) {
	p := Profile{
		FrustrationScore: 8,
		WeakConcepts: []WeakConcept{
			{Concept: "一", WrongCount: 3, WrongRate: 0.3},
			{Concept: "二", WrongCount: 3, WrongRate: 0.6},
		},
		LastQuizSummary: map[string]any{"accuracy": 0.5},
	}
	first := BuildPath(p)
	for range 10 {
		assert.Equal(t, first, BuildPath(p))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50%", FormatPercent(0.5))
	assert.Equal(t, "67%", FormatPercent(2.0/3.0))
	assert.Equal(t, "0%", FormatPercent(0))
	assert.Equal(t, "100%", FormatPercent(1))
}
