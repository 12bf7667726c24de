// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/a9austin/sdr-sourcer/internal/ledger"
)

var recentCmd = &cobra.Command{
	Use:   "recent [n]",
	Short: "List the most recently sourced candidates",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 10
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed < 1 {
				return fmt.Errorf("invalid count %q", args[0])
			}
			n = parsed
		}

		cfg := loadConfig()
		store, err := ledger.Open(cfg.Backup.LedgerPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(n)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No candidates recorded yet.")
			return nil
		}

		for _, e := range entries {
			headline := e.Headline
			if len(headline) > 60 {
				headline = headline[:57] + "..."
			}
			fmt.Printf("%s  %-7s %-24s %s\n", e.DateAdded, e.RoleFit, e.Name, headline)
			fmt.Printf("            %s\n", e.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
}
