package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bazs0328/graduation/internal/backend"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Keep research notebooks on the service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var researchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List research notebooks, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, client, sess, cleanup, err := cliSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		items, err := client.ListResearch(ctx, *sess)
		if err != nil {
			return fmt.Errorf("list research: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("还没有研究笔记。用 studymate research new <title> 开始。")
			return nil
		}

		fmt.Printf("%-6s  %-30s  %-6s  %s\n", "ID", "标题", "条目", "更新于")
		fmt.Println(strings.Repeat("─", 64))
		for _, it := range items {
			title := it.Title
			if title == "" {
				title = "(未命名)"
			}
			if len([]rune(title)) > 30 {
				title = string([]rune(title)[:30])
			}
			updated := "-"
			if it.UpdatedAt != nil {
				updated = it.UpdatedAt.Local().Format("2006-01-02 15:04")
			}
			fmt.Printf("%-6d  %-30s  %-6d  %s\n", it.ResearchID, title, it.EntryCount, updated)
		}
		return nil
	},
}

var researchNewCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a research notebook",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, client, sess, cleanup, err := cliSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		req := backend.ResearchCreateRequest{Summary: researchSummary}
		if len(args) == 1 {
			req.Title = args[0]
		}
		res, err := client.CreateResearch(ctx, *sess, req)
		if err != nil {
			return fmt.Errorf("create research: %w", err)
		}
		fmt.Printf("已创建研究笔记 %d\n", res.ResearchID)
		return nil
	},
}

var researchShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a notebook and its entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid research id %q", args[0])
		}

		ctx, client, sess, cleanup, err := cliSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		detail, err := client.GetResearch(ctx, *sess, id)
		if err != nil {
			return fmt.Errorf("get research: %w", err)
		}

		title := detail.Title
		if title == "" {
			title = "(未命名)"
		}
		fmt.Printf("研究笔记 %d: %s\n", detail.ResearchID, title)
		if detail.Summary != "" {
			fmt.Printf("摘要: %s\n", detail.Summary)
		}
		if len(detail.Entries) == 0 {
			fmt.Println("\n暂无条目。用 studymate research note 添加。")
			return nil
		}
		fmt.Println()
		for i, e := range detail.Entries {
			when := ""
			if e.CreatedAt != nil {
				when = "  " + e.CreatedAt.Local().Format("2006-01-02 15:04")
			}
			fmt.Printf("%d. [%s]%s\n", i+1, e.EntryType, when)
			fmt.Printf("   %s\n", e.Content)
		}
		return nil
	},
}

var researchNoteCmd = &cobra.Command{
	Use:   "note <id> <content>...",
	Short: "Append a note to a notebook",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid research id %q", args[0])
		}

		ctx, client, sess, cleanup, err := cliSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		req := backend.ResearchEntryRequest{
			EntryType: researchEntryType,
			Content:   strings.Join(args[1:], " "),
		}
		entry, err := client.AppendResearchEntry(ctx, *sess, id, req)
		if err != nil {
			return fmt.Errorf("append research entry: %w", err)
		}
		fmt.Printf("已添加条目 %d（笔记 %d）\n", entry.EntryID, entry.ResearchID)
		return nil
	},
}

var (
	researchSummary   string
	researchEntryType string
)

func init() {
	researchNewCmd.Flags().StringVar(&researchSummary, "summary", "", "notebook summary")
	researchNoteCmd.Flags().StringVar(&researchEntryType, "type", "note", "entry type")
	researchCmd.AddCommand(researchListCmd, researchNewCmd, researchShowCmd, researchNoteCmd)
}
