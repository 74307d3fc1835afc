package cmd

import (
	"fmt"

	"github.com/bazs0328/graduation/internal/learnpath"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the recommended learning path",
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

		steps := learnpath.BuildPath(*p)
		if len(steps) == 0 {
			fmt.Println("暂无学习建议，先做一次测验吧。")
			return nil
		}
		for i, s := range steps {
			fmt.Printf("%d. %s\n", i+1, s.Title)
			if s.Reason != "" {
				fmt.Printf("   %s\n", s.Reason)
			}
			if s.Source != nil {
				fmt.Printf("   → %s\n", s.Source.Label)
			}
		}
		return nil
	},
}
