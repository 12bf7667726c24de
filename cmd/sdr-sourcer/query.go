// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/a9austin/sdr-sourcer/internal/catalog"
	"github.com/a9austin/sdr-sourcer/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [\"search string\"]",
	Short: "Run one custom query, or preview the catalog",
	Long: `With a search string, query runs the full pipeline for that single
query, bypassing the catalog. Custom queries skip the SDR-only filter so
they can surface whoever the string asks for.

Without arguments, query prints the catalog queries the source command
would run, without touching the search API.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().Int("count", 0, "number of queries to preview (0 = whole catalog)")
	queryCmd.Flags().String("type", "both", "query type to preview: sdr, ae, or both")
	addSourcingFlags(queryCmd)

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return executeSourcing(cmd, []types.QuerySpec{catalog.Custom(args[0])})
	}

	roleFlag, _ := cmd.Flags().GetString("type")
	role, err := types.ParseRoleType(roleFlag)
	if err != nil {
		return err
	}

	count, _ := cmd.Flags().GetInt("count")
	if count == 0 {
		count = catalog.Size(role)
	}

	specs, err := catalog.Generate(role, count)
	if err != nil {
		return err
	}

	for i, spec := range specs {
		fmt.Printf("%3d [%s] %s\n", i+1, spec.Role, spec.Query)
	}
	fmt.Printf("\n%d queries (catalog: %d sdr, %d ae)\n",
		len(specs), catalog.Size(types.TypeSDR), catalog.Size(types.TypeAE))
	return nil
}
