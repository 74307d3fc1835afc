package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs [id]",
	Short: "List uploaded documents, or show one document's detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, client, sess, cleanup, err := cliSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid document id %q", args[0])
			}
			doc, err := client.GetDocument(ctx, *sess, id)
			if err != nil {
				return fmt.Errorf("get document: %w", err)
			}
			fmt.Printf("ID:     %d\n", doc.DocumentID)
			fmt.Printf("名称:   %s\n", doc.Name)
			fmt.Printf("片段数: %d\n", doc.ChunkCount)
			if doc.CreatedAt != nil {
				fmt.Printf("上传于: %s\n", doc.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		}

		docs, err := client.ListDocuments(ctx, *sess)
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		if len(docs) == 0 {
			fmt.Println("还没有上传任何材料。用 studymate upload <file> 开始。")
			return nil
		}

		fmt.Printf("%-6s  %-40s  %s\n", "ID", "名称", "片段数")
		fmt.Println(strings.Repeat("─", 60))
		for _, d := range docs {
			name := d.Name
			if len([]rune(name)) > 40 {
				name = string([]rune(name)[:40])
			}
			fmt.Printf("%-6d  %-40s  %d\n", d.DocumentID, name, d.ChunkCount)
		}
		return nil
	},
}
