package cmd

import (
	"fmt"
	"strings"

	"github.com/bazs0328/graduation/internal/backend"
	"github.com/bazs0328/graduation/internal/sources"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question grounded in your documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, client, sess, cleanup, err := cliSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		query := strings.TrimSpace(strings.Join(args, " "))
		res, err := client.Ask(ctx, *sess, backend.AskRequest{Query: query})
		if err != nil {
			return fmt.Errorf("ask: %w", err)
		}

		fmt.Println(res.Answer)

		ids := sources.Dedupe(res.ChunkIDs())
		if len(ids) == 0 {
			return nil
		}

		// Citations are best effort; the answer already printed.
		records, err := client.ResolveSources(ctx, *sess, ids)
		if err != nil || len(records) == 0 {
			return nil
		}
		fmt.Println()
		fmt.Println("出处:")
		for _, r := range records {
			fmt.Printf("  [%d] %s: %s\n", r.ChunkID, r.DocumentName, r.TextPreview)
		}
		return nil
	},
}
