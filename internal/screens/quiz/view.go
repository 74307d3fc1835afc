package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quizcore "github.com/bazs0328/graduation/internal/quiz"
	"github.com/bazs0328/graduation/internal/ui/components"
	"github.com/bazs0328/graduation/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.phase {
	case phaseSetup:
		return s.viewSetup(width, height)
	case phaseGenerating:
		return centered(width, height, theme.Hint.Render("正在生成测验…"))
	case phaseActive:
		return s.viewActive(width, height)
	case phaseSubmitting:
		return centered(width, height, theme.Hint.Render("正在评分…"))
	default:
		return s.viewResult(width, height)
	}
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func cursorMark(active bool) string {
	if active {
		return theme.Selected.Render("▸ ")
	}
	return "  "
}

func (s *QuizScreen) viewSetup(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("新测验") + "\n\n")

	b.WriteString(cursorMark(s.setupCursor == 0))
	b.WriteString(theme.Body.Render("题目数量: ") + s.countInput.View() + "\n\n")

	b.WriteString(theme.Body.Render("  题型:") + "\n")
	for i, t := range setupTypes {
		mark := "[ ]"
		if s.typeEnabled[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, quizcore.TypeLabel(t))
		b.WriteString(cursorMark(s.setupCursor == i+1))
		if s.typeEnabled[i] {
			b.WriteString(theme.Selected.Render(line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(cursorMark(s.setupCursor == len(setupTypes)+1))
	b.WriteString(theme.Body.Render("重点概念: ") + s.focusInput.View() + "\n")

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg) + "\n")
	}

	return centered(width, height, b.String())
}

func (s *QuizScreen) viewActive(width, height int) string {
	if s.confirming {
		return centered(width, height,
			theme.Body.Render("放弃本次测验？未提交的答案将丢失。")+"\n\n"+
				theme.Hint.Render("Y 放弃    N 继续"))
	}

	q := s.quiz.Questions[s.current]

	var b strings.Builder

	total := len(s.quiz.Questions)
	bar := components.NewProgressBar(
		fmt.Sprintf("第 %d/%d 题", s.current+1, total),
		float64(s.attempt.Answered())/float64(total),
		false, min(width-8, 60),
	)
	b.WriteString(bar.View() + "\n\n")

	meta := fmt.Sprintf("%s · %s", quizcore.TypeLabel(q.Type), quizcore.DifficultyLabel(q.Difficulty))
	b.WriteString(theme.Hint.Render(meta) + "\n\n")

	b.WriteString(theme.Body.Bold(true).Render(q.Stem) + "\n\n")

	switch {
	case q.Type == quizcore.TypeSingle:
		b.WriteString(s.options[s.current].View())
	case q.Type == quizcore.TypeJudge:
		b.WriteString(s.judges[s.current].View() + "\n")
	default:
		b.WriteString(s.texts[s.current].View() + "\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg) + "\n")
	}

	return centered(width, height, b.String())
}

func (s *QuizScreen) viewResult(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("测验结果") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("得分 %.1f    正确率 %.0f%%",
		s.result.Score, s.result.Accuracy*100)) + "\n")
	if s.result.FeedbackText != "" {
		b.WriteString(theme.Hint.Render(s.result.FeedbackText) + "\n")
	}
	b.WriteString("\n")

	questionByID := make(map[int]quizcore.Question, len(s.quiz.Questions))
	for _, q := range s.quiz.Questions {
		questionByID[q.QuestionID] = q
	}

	for i, r := range s.result.PerQuestion {
		q := questionByID[r.QuestionID]
		verdict := quizcore.VerdictOf(r.Correct)

		var vs lipgloss.Style
		switch verdict {
		case quizcore.VerdictCorrect:
			vs = theme.Correct
		case quizcore.VerdictWrong:
			vs = theme.Incorrect
		default:
			vs = theme.Ungraded
		}

		b.WriteString(fmt.Sprintf("%d. %s  %s\n", i+1, vs.Render(verdict.Label()), q.Stem))
		b.WriteString(theme.Body.Render("   你的答案: "+quizcore.FormatUserAnswer(q.Type, r.UserAnswer, q.Options)) + "\n")
		b.WriteString(theme.Body.Render("   参考答案: "+quizcore.FormatExpectedAnswer(q.Type, r.ExpectedAnswer, q.Options)) + "\n")
		if q.Explanation != "" {
			b.WriteString(theme.Hint.Render("   解析: "+q.Explanation) + "\n")
		}
		if cite := s.renderCitations(q); cite != "" {
			b.WriteString(cite)
		}
		b.WriteString("\n")
	}

	return centered(width, height, b.String())
}

// renderCitations lists the resolved sources of one question; chunk ids
// without a resolved record render as the bare id.
func (s *QuizScreen) renderCitations(q quizcore.Question) string {
	if len(q.SourceChunkIDs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(q.SourceChunkIDs))
	for _, id := range q.SourceChunkIDs {
		if rec, ok := s.citations[id]; ok && rec.DocumentName != "" {
			parts = append(parts, fmt.Sprintf("%s #%d", rec.DocumentName, rec.ChunkID))
		} else {
			parts = append(parts, fmt.Sprintf("#%d", id))
		}
	}
	return theme.Citation.Render("   出处: "+strings.Join(parts, ", ")) + "\n"
}
