// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/a9austin/sdr-sourcer/internal/ledger"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show candidate counts from the local ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		store, err := ledger.Open(cfg.Backup.LedgerPath)
		if err != nil {
			return err
		}
		defer store.Close()

		st, err := store.Summarize()
		if err != nil {
			return err
		}

		fmt.Printf("total:   %d\n", st.Total)
		fmt.Printf("sdr:     %d\n", st.SDR)
		fmt.Printf("ae:      %d\n", st.AE)
		fmt.Printf("sdr/ae:  %d\n", st.Both)
		fmt.Printf("unknown: %d\n", st.Unknown)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
