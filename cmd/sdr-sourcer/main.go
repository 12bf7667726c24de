// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sdr-sourcer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/a9austin/sdr-sourcer/internal/secrets"
	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secret returns the named secret, or the viper value when the secret file
// is absent. Secrets win so keys never need to live in config files.
func secret(name, viperKey string) string {
	if v, ok := loadedSecrets[name]; ok {
		return v
	}
	return viper.GetString(viperKey)
}

// rootCmd is the base command for the sdr-sourcer CLI.
var rootCmd = &cobra.Command{
	Use:   "sdr-sourcer",
	Short: "Source SDR and AE candidates from LinkedIn X-Ray searches",
	Long: `sdr-sourcer runs curated X-Ray search queries against a web search API,
parses the results into candidate records, filters them for the target
region and seniority, classifies role fit, and writes survivors to a
Google Sheet with a local CSV backup and SQLite ledger.

Each operation is a subcommand: source runs the pipeline, query previews
the catalog, stats and recent read the ledger, experience estimates years
of experience for sheet rows, and draft generates outreach messages.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sdr-sourcer.yaml or ~/.config/sdr-sourcer/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sdr-sourcer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sdr-sourcer"))
		}
	}

	viper.SetEnvPrefix("SDR_SOURCER")
	viper.AutomaticEnv()

	viper.SetDefault("search.timeout", "30s")
	viper.SetDefault("search.user_agent", "sdr-sourcer/"+version)
	viper.SetDefault("search.results_per_query", 15)
	viper.SetDefault("pipeline.min_delay", "2s")
	viper.SetDefault("pipeline.max_delay", "4s")
	viper.SetDefault("pipeline.batch_size", 8)
	viper.SetDefault("pipeline.batch_pause", "10s")
	viper.SetDefault("pipeline.skip_sdr_filter_for_ae", true)
	viper.SetDefault("sheet.worksheet", "candidates")
	viper.SetDefault("sheet.credentials_file", "credentials.json")
	viper.SetDefault("backup.csv_path", "candidates.csv")
	viper.SetDefault("backup.ledger_path", "candidates.db")
	viper.SetDefault("backup.report_dir", "reports")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the full configuration from viper and secrets.
func loadConfig() types.SourcerConfig {
	return types.SourcerConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: viper.GetString("search.user_agent"),
			},
			ResultsPerQuery: viper.GetInt("search.results_per_query"),
			SerpAPIKey:      secret("serpapi-api-key", "search.serpapi_key"),
			MaxRetries:      viper.GetInt("search.max_retries"),
		},
		Pipeline: types.PipelineConfig{
			MinDelay:           viper.GetDuration("pipeline.min_delay"),
			MaxDelay:           viper.GetDuration("pipeline.max_delay"),
			BatchSize:          viper.GetInt("pipeline.batch_size"),
			BatchPause:         viper.GetDuration("pipeline.batch_pause"),
			SkipSDRFilterForAE: viper.GetBool("pipeline.skip_sdr_filter_for_ae"),
		},
		Sheet: types.SheetConfig{
			SheetID:         secret("sheet-id", "sheet.sheet_id"),
			Worksheet:       viper.GetString("sheet.worksheet"),
			CredentialsFile: viper.GetString("sheet.credentials_file"),
		},
		Backup: types.BackupConfig{
			CSVPath:    viper.GetString("backup.csv_path"),
			LedgerPath: viper.GetString("backup.ledger_path"),
			ReportDir:  viper.GetString("backup.report_dir"),
		},
		Draft: types.DraftConfig{
			Model:      viper.GetString("draft.model"),
			APIKey:     secret("anthropic-api-key", "draft.api_key"),
			MaxRetries: viper.GetInt("draft.max_retries"),
		},
	}
}

// httpTimeout falls back to a sane default when config leaves it zero.
func httpTimeout(cfg types.SourcerConfig) time.Duration {
	if cfg.Search.Timeout > 0 {
		return cfg.Search.Timeout
	}
	return 30 * time.Second
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
