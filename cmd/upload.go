package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload documents for ingestion",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, client, sess, cleanup, err := cliSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		for _, path := range args {
			res, err := client.UploadDocument(ctx, *sess, path)
			if err != nil {
				return fmt.Errorf("upload %s: %w", path, err)
			}
			fmt.Printf("已上传 %s  (doc %d, %d 个片段)\n", res.Filename, res.DocumentID, res.ChunkCount)
		}
		return nil
	},
}
