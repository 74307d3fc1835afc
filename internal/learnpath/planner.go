// Package learnpath turns a learner profile into an ordered list of
// recommended next actions. The planner is a pure rule engine: identical
// profiles always produce identical step lists, and nothing is kept
// between runs.
package learnpath

import (
	"fmt"
	"math"
	"sort"
)

const (
	// MinSteps and MaxSteps bound a non-empty plan.
	MinSteps = 3
	MaxSteps = 5

	// frustrationThreshold is the score at or above which the planner
	// recommends starting with easy questions.
	frustrationThreshold = 6

	// maxWeakConceptSteps caps how many review-concept steps lead the plan.
	maxWeakConceptSteps = 3
)

// WeakConcept is a profile-tracked topic with its historical error stats.
type WeakConcept struct {
	Concept    string  `json:"concept"`
	WrongCount int     `json:"wrong_count"`
	WrongRate  float64 `json:"wrong_rate"`
}

// Profile is the learner profile as served by the assessment service.
// It is read-only input: the planner never mutates or persists it.
type Profile struct {
	AbilityLevel     string        `json:"ability_level"`
	FrustrationScore int           `json:"frustration_score"`
	WeakConcepts     []WeakConcept `json:"weak_concepts"`

	// LastQuizSummary may be absent or an empty object, both meaning
	// "no summary yet". Its fields are service-defined, so it stays a map.
	LastQuizSummary map[string]any `json:"last_quiz_summary"`
}

// Source points a step at the part of the app that backs it.
type Source struct {
	Label  string
	Target string
}

// Step is one ordered unit of the learning path. Title doubles as the
// de-duplication key within a single planning run.
type Step struct {
	Title  string
	Reason string
	Source *Source
}

// fillers pad a short plan up to MinSteps, in this fixed order.
var fillers = []Step{
	{
		Title:  "回看资料并标注关键段落",
		Reason: "把与薄弱概念相关的段落标注出来，降低遗忘率。",
		Source: &Source{Label: "资料管理", Target: "upload"},
	},
	{
		Title:  "围绕薄弱概念提一个问题",
		Reason: "用问答验证理解是否完整。",
		Source: &Source{Label: "问答", Target: "ask"},
	},
	{
		Title:  "完成一轮小测验",
		Reason: "将复习结果应用到新的题目上。",
		Source: &Source{Label: "测验", Target: "quiz"},
	},
}

// BuildPath produces 3 to 5 recommendation steps for the profile, or nothing
// at all when the profile carries no signal to act on. The rule order is
// fixed: weak concepts first, then the last-quiz review, then the easy-first
// suggestion, then fillers up to the minimum, truncated at the maximum.
func BuildPath(p Profile) []Step {
	// No weak concepts and no quiz summary means no signal, and no signal
	// means no plan. This short-circuits before any other rule runs, so a
	// high frustration score alone never produces steps.
	if len(p.WeakConcepts) == 0 && len(p.LastQuizSummary) == 0 {
		return nil
	}

	var steps []Step
	seen := make(map[string]bool)
	push := func(s Step) {
		if s.Title == "" || seen[s.Title] {
			return
		}
		seen[s.Title] = true
		steps = append(steps, s)
	}

	// Worst concepts first. The sort is stable so that concepts with equal
	// wrong counts keep their profile order.
	concepts := make([]WeakConcept, len(p.WeakConcepts))
	copy(concepts, p.WeakConcepts)
	sort.SliceStable(concepts, func(i, j int) bool {
		return concepts[i].WrongCount > concepts[j].WrongCount
	})
	if len(concepts) > maxWeakConceptSteps {
		concepts = concepts[:maxWeakConceptSteps]
	}
	for _, c := range concepts {
		name := c.Concept
		if name == "" {
			name = "未命名概念"
		}
		push(Step{
			Title:  fmt.Sprintf("复习概念：%s", name),
			Reason: fmt.Sprintf("该概念错题 %d 次，错误率 %s。", c.WrongCount, FormatPercent(c.WrongRate)),
			Source: &Source{Label: "学习画像", Target: "profile"},
		})
	}

	if accuracy, ok := summaryNumber(p.LastQuizSummary, "accuracy"); ok {
		push(Step{
			Title:  "回顾最近测验错题",
			Reason: fmt.Sprintf("最近一次测验准确率为 %s，建议复盘错题。", FormatPercent(accuracy)),
			Source: &Source{Label: "最近测验", Target: "quiz"},
		})
	}

	if p.FrustrationScore >= frustrationThreshold ||
		p.LastQuizSummary["next_quiz_recommendation"] == "easy_first" {
		push(Step{
			Title:  "先做简单题巩固基础",
			Reason: "系统建议优先简单题，逐步建立信心。",
			Source: &Source{Label: "测验建议", Target: "quiz"},
		})
	}

	for _, filler := range fillers {
		if len(steps) >= MinSteps {
			break
		}
		push(filler)
	}

	if len(steps) > MaxSteps {
		steps = steps[:MaxSteps]
	}
	return steps
}

// FormatPercent renders a 0..1 ratio as a rounded percentage, or an em-dash
// placeholder for missing values.
func FormatPercent(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

// summaryNumber reads a numeric field out of a decoded summary object.
// JSON numbers decode as float64; other types do not count as present.
func summaryNumber(summary map[string]any, key string) (float64, bool) {
	v, ok := summary[key].(float64)
	return v, ok
}
