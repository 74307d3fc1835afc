package cmd

import (
	"fmt"
	"strings"

	"github.com/bazs0328/graduation/internal/learnpath"
	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recent graded quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		ctx, client, sess, cleanup, err := cliSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		quizzes, err := client.RecentQuizzes(ctx, *sess, limit)
		if err != nil {
			return fmt.Errorf("list recent quizzes: %w", err)
		}
		if len(quizzes) == 0 {
			fmt.Println("还没有做过测验。")
			return nil
		}

		fmt.Printf("%-8s  %-19s  %-8s  %s\n", "测验", "时间", "得分", "正确率")
		fmt.Println(strings.Repeat("─", 52))
		for _, q := range quizzes {
			when := "-"
			if q.SubmittedAt != nil {
				when = q.SubmittedAt.Local().Format("2006-01-02 15:04")
			}
			score := "-"
			if q.Score != nil {
				score = fmt.Sprintf("%.1f", *q.Score)
			}
			accuracy := "-"
			if q.Accuracy != nil {
				accuracy = learnpath.FormatPercent(*q.Accuracy)
			}
			fmt.Printf("%-8d  %-19s  %-8s  %s\n", q.QuizID, when, score, accuracy)
		}
		return nil
	},
}

func init() {
	recentCmd.Flags().IntP("limit", "n", 10, "Number of quizzes to show")
}
