package cmd

import (
	"github.com/bazs0328/graduation/internal/app"
	"github.com/bazs0328/graduation/internal/screen"
	quizscreen "github.com/bazs0328/graduation/internal/screens/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Open the TUI directly on a new quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		types, _ := cmd.Flags().GetStringSlice("types")
		doc, _ := cmd.Flags().GetInt("doc")

		return runApp(cmd, func(opts app.Options) screen.Screen {
			if doc > 0 {
				opts.Session.DocumentID = doc
			}
			return quizscreen.New(opts.Ctx, opts.Client, opts.Events, opts.Session,
				quizscreen.WithCount(count),
				quizscreen.WithTypes(types),
			)
		})
	},
}

func init() {
	quizCmd.Flags().IntP("count", "n", 0, "Number of questions")
	quizCmd.Flags().StringSlice("types", nil, "Question types (e.g. single,judge,short)")
	quizCmd.Flags().Int("doc", 0, "Scope generation to one document id")
}
