// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/a9austin/sdr-sourcer/internal/catalog"
	"github.com/a9austin/sdr-sourcer/internal/filter"
	"github.com/a9austin/sdr-sourcer/internal/ledger"
	"github.com/a9austin/sdr-sourcer/internal/pipeline"
	"github.com/a9austin/sdr-sourcer/internal/search"
	"github.com/a9austin/sdr-sourcer/internal/sheets"
	"github.com/a9austin/sdr-sourcer/internal/sink"
	"github.com/a9austin/sdr-sourcer/pkg/types"
)

var sourceCmd = &cobra.Command{
	Use:   "source [batch]",
	Short: "Run the sourcing pipeline",
	Long: `Source executes catalog queries against the search engine, parses and
filters the hits, classifies role fit, and writes new candidates to the
Google Sheet, the CSV backup, and the local ledger.

With a positional batch number, only that catalog batch runs. Otherwise
--count selects how many queries to draw from the catalog. Use the query
command to run a single custom query instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSource,
}

func init() {
	sourceCmd.Flags().Int("count", 10, "number of catalog queries to run")
	sourceCmd.Flags().String("type", "both", "query type: sdr, ae, or both")
	addSourcingFlags(sourceCmd)

	rootCmd.AddCommand(sourceCmd)
}

// addSourcingFlags registers the flags shared by source and query.
func addSourcingFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "print the queries and exit without searching or writing")
	cmd.Flags().Bool("no-sheet", false, "skip the Google Sheet, write only local sinks")
	cmd.Flags().Bool("preload", true, "preload the dedup set from ledger, CSV, and sheet")
	cmd.Flags().String("keywords", "", "YAML file overriding the region keyword list")
}

func runSource(cmd *cobra.Command, args []string) error {
	specs, err := sourceSpecs(cmd, args)
	if err != nil {
		return err
	}
	return executeSourcing(cmd, specs)
}

// executeSourcing runs the pipeline over the given specs: shared by the
// source command and the query command's custom-query mode.
func executeSourcing(cmd *cobra.Command, specs []types.QuerySpec) error {
	cfg := loadConfig()
	ctx := cmd.Context()

	if len(specs) == 0 {
		return fmt.Errorf("no queries to run")
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		for i, spec := range specs {
			fmt.Printf("%3d [%s] %s\n", i+1, spec.Role, spec.Query)
		}
		fmt.Printf("\ndry run: %d queries, nothing searched or written\n", len(specs))
		return nil
	}

	chain := filter.NewChain()
	chain.SkipSDRFilterForAE = cfg.Pipeline.SkipSDRFilterForAE
	if path, _ := cmd.Flags().GetString("keywords"); path != "" {
		if err := chain.LoadKeywords(path); err != nil {
			return err
		}
	}

	client := &http.Client{Timeout: httpTimeout(cfg)}
	engine := search.Select(cfg.Search, client)
	fmt.Fprintf(os.Stderr, "search engine: %s\n", engine.Name())

	noSheet, _ := cmd.Flags().GetBool("no-sheet")
	preload, _ := cmd.Flags().GetBool("preload")

	store, err := ledger.Open(cfg.Backup.LedgerPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sess := pipeline.NewSession()
	if preload {
		preloadLocal(sess, store, cfg.Backup.CSVPath, os.Stderr)
	}

	out := &sink.MultiSink{
		Required: []sink.Sink{sink.NewCSVSink(cfg.Backup.CSVPath), store},
		Warnf: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, "warn: "+format+"\n", args...)
		},
	}

	if !noSheet {
		sheetSink, err := openSheetSink(ctx, cfg.Sheet)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warn: sheet unavailable, continuing with local sinks: %v\n", err)
		} else {
			out.BestEffort = append(out.BestEffort, sheetSink)
			if preload {
				sess.Preload(sheetSink.Known())
			}
		}
	}

	runCfg := pipeline.Config{Search: cfg.Search, Pipeline: cfg.Pipeline}
	if err := pipeline.Run(ctx, engine, specs, sess, chain, out, runCfg, os.Stdout); err != nil {
		return err
	}

	report := pipeline.BuildReport(sess, time.Now())
	path, err := pipeline.WriteReport(cfg.Backup, report)
	if err != nil {
		return err
	}

	fmt.Printf("\n%d queries, %d hits, %d accepted, %d duplicates\n",
		report.Queries, report.Hits, report.Accepted, report.Duplicates)
	for rule, n := range report.Rejections {
		fmt.Printf("  rejected %s: %d\n", rule, n)
	}
	fmt.Printf("report: %s\n", path)
	return nil
}

// preloadLocal seeds the session dedup set from the ledger and the CSV
// backup. A failed preload only weakens dedup for this run, so it warns
// instead of aborting.
func preloadLocal(sess *pipeline.Session, store *ledger.Store, csvPath string, w io.Writer) {
	if urls, err := store.SeenURLs(); err != nil {
		fmt.Fprintf(w, "warn: ledger preload failed: %v\n", err)
	} else {
		sess.Preload(urls)
	}
	if urls, err := sink.URLs(csvPath); err != nil {
		fmt.Fprintf(w, "warn: backup preload failed: %v\n", err)
	} else {
		sess.Preload(urls)
	}
}

// sourceSpecs turns the flags into the query list: one catalog batch or a
// count-based draw.
func sourceSpecs(cmd *cobra.Command, args []string) ([]types.QuerySpec, error) {
	roleFlag, _ := cmd.Flags().GetString("type")
	role, err := types.ParseRoleType(roleFlag)
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		var batch int
		if _, err := fmt.Sscanf(args[0], "%d", &batch); err != nil || batch < 1 {
			return nil, fmt.Errorf("invalid batch number %q", args[0])
		}
		size := viper.GetInt("pipeline.batch_size")
		if size < 1 {
			size = 8
		}
		return catalog.Batch(role, batch, size)
	}

	count, _ := cmd.Flags().GetInt("count")
	return catalog.Generate(role, count)
}

func openSheetSink(ctx context.Context, cfg types.SheetConfig) (*sheets.AppendSink, error) {
	client, err := sheets.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return sheets.NewAppendSink(ctx, client)
}
