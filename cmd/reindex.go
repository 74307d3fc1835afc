package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the service's search index",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, client, sess, cleanup, err := cliSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		status, err := client.RebuildIndex(ctx, *sess)
		if err != nil {
			return fmt.Errorf("rebuild index: %w", err)
		}
		fmt.Printf("索引已重建：%s，共 %d 个片段\n", status.Status, status.ChunkCount)
		return nil
	},
}
