// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/a9austin/sdr-sourcer/internal/classify"
	"github.com/a9austin/sdr-sourcer/internal/sheets"
)

// Column indexes in the 11-column sheet layout.
const (
	colIdxName     = 0
	colIdxHeadline = 2
	colIdxYears    = 3
	colIdxRoleFit  = 4
	colIdxDraft    = 10
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Estimate years of experience for sheet rows missing it",
	Long: `Experience reads every row of the candidate sheet, estimates years of
experience from the headline for rows whose Years of Experience column is
empty, and writes the estimates back in one batch update.`,
	RunE: runExperience,
}

func init() {
	experienceCmd.Flags().Bool("dry-run", false, "print estimates without writing the sheet")
	experienceCmd.Flags().Bool("all", false, "re-estimate every row, not just empty ones")

	rootCmd.AddCommand(experienceCmd)
}

func runExperience(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ctx := cmd.Context()

	client, err := sheets.New(ctx, cfg.Sheet)
	if err != nil {
		return err
	}

	rows, err := client.Rows(ctx)
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	estimates := make(map[int]string)
	for i, row := range rows {
		if row[colIdxYears] != "" && !all {
			continue
		}
		headline := row[colIdxHeadline]
		if headline == "" {
			continue
		}
		years := classify.Years(headline)
		if years == "" {
			continue
		}
		// Data rows start at sheet row 2.
		estimates[i+2] = years
		fmt.Printf("%-24s %-4s %s\n", row[colIdxName], years, headline)
	}

	if len(estimates) == 0 {
		fmt.Println("Nothing to update.")
		return nil
	}
	if dryRun {
		fmt.Printf("\ndry run: %d estimates not written\n", len(estimates))
		return nil
	}

	if err := client.UpdateYears(ctx, estimates); err != nil {
		return err
	}
	fmt.Printf("\nupdated %d rows\n", len(estimates))
	return nil
}
