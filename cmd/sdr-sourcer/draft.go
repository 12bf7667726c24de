// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/a9austin/sdr-sourcer/internal/draft"
	"github.com/a9austin/sdr-sourcer/internal/sheets"
	"github.com/a9austin/sdr-sourcer/pkg/types"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate AI outreach drafts for sheet rows missing one",
	Long: `Draft reads the candidate sheet, generates a personalized outreach
message for each row whose AI Draft column is empty, and writes the
messages back in one batch update. Requires the anthropic-api-key secret.`,
	RunE: runDraft,
}

func init() {
	draftCmd.Flags().Int("limit", 10, "maximum number of drafts to generate")
	draftCmd.Flags().Bool("dry-run", false, "print drafts without writing the sheet")

	rootCmd.AddCommand(draftCmd)
}

func runDraft(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ctx := cmd.Context()

	backend, err := draft.NewClaudeBackend(&http.Client{Timeout: httpTimeout(cfg)}, cfg.Draft)
	if err != nil {
		return err
	}

	client, err := sheets.New(ctx, cfg.Sheet)
	if err != nil {
		return err
	}

	rows, err := client.Rows(ctx)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	drafts := make(map[int]string)
	for i, row := range rows {
		if len(drafts) >= limit {
			break
		}
		if row[colIdxDraft] != "" || row[colIdxHeadline] == "" {
			continue
		}

		c := &types.Candidate{
			FullName: row[colIdxName],
			Headline: row[colIdxHeadline],
			RoleFit:  types.RoleFit(row[colIdxRoleFit]),
		}
		text, err := backend.Draft(ctx, c)
		if err != nil {
			fmt.Printf("warn: draft for %s failed: %v\n", c.FullName, err)
			continue
		}

		drafts[i+2] = text
		fmt.Printf("--- %s ---\n%s\n\n", c.FullName, text)
	}

	if len(drafts) == 0 {
		fmt.Println("Nothing to draft.")
		return nil
	}
	if dryRun {
		fmt.Printf("dry run: %d drafts not written\n", len(drafts))
		return nil
	}

	if err := client.UpdateDrafts(ctx, drafts); err != nil {
		return err
	}
	fmt.Printf("updated %d rows\n", len(drafts))
	return nil
}
