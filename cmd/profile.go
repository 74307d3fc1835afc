package cmd

import (
	"fmt"

	"github.com/bazs0328/graduation/internal/learnpath"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, client, sess, cleanup, err := cliSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		p, err := client.Profile(ctx, *sess)
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}

		ability := p.AbilityLevel
		if ability == "" {
			ability = "未评估"
		}
		fmt.Printf("能力水平: %s\n", ability)
		fmt.Printf("挫败指数: %d/10\n", p.FrustrationScore)

		if len(p.WeakConcepts) > 0 {
			fmt.Println("\n薄弱概念:")
			for _, w := range p.WeakConcepts {
				fmt.Printf("  %s  答错 %d 次, 错误率 %s\n",
					w.Concept, w.WrongCount, learnpath.FormatPercent(w.WrongRate))
			}
		}
		return nil
	},
}
