// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "sdr-sourcer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search engines.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// ResultsPerQuery is the number of organic results requested per query
	// (default 15).
	ResultsPerQuery int `json:"results_per_query" yaml:"results_per_query"`

	// SerpAPIKey enables the SerpAPI (Google) engine when set. Without it
	// the DuckDuckGo engine is used.
	SerpAPIKey string `json:"serpapi_key,omitempty" yaml:"serpapi_key,omitempty"`

	// MaxRetries bounds backoff retries on rate-limited requests (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// PipelineConfig holds pacing and policy settings for a sourcing run.
type PipelineConfig struct {
	// MinDelay and MaxDelay bound the jittered pause between consecutive
	// queries, a cooperative rate limit against the search API's quota.
	MinDelay time.Duration `json:"min_delay" yaml:"min_delay"`
	MaxDelay time.Duration `json:"max_delay" yaml:"max_delay"`

	// BatchSize is the number of queries run before the longer batch pause
	// (default 8).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// BatchPause is the pause after each batch (default 10s).
	BatchPause time.Duration `json:"batch_pause" yaml:"batch_pause"`

	// SkipSDRFilterForAE skips the existing-SDR filter on AE-tagged queries
	// so SDR-to-AE promotion candidates survive to the classifier.
	SkipSDRFilterForAE bool `json:"skip_sdr_filter_for_ae" yaml:"skip_sdr_filter_for_ae"`
}

// SheetConfig holds Google Sheets settings.
type SheetConfig struct {
	// SheetID is the spreadsheet ID from the sheet URL.
	SheetID string `json:"sheet_id" yaml:"sheet_id"`

	// Worksheet is the tab name (default "candidates").
	Worksheet string `json:"worksheet" yaml:"worksheet"`

	// CredentialsFile is the path to the service-account JSON key.
	CredentialsFile string `json:"credentials_file" yaml:"credentials_file"`
}

// BackupConfig holds local backup settings.
type BackupConfig struct {
	// CSVPath is the append-only backup file (default "candidates.csv").
	CSVPath string `json:"csv_path" yaml:"csv_path"`

	// LedgerPath is the local SQLite candidate ledger (default "candidates.db").
	LedgerPath string `json:"ledger_path" yaml:"ledger_path"`

	// ReportDir receives YAML run reports (default ".").
	ReportDir string `json:"report_dir" yaml:"report_dir"`
}

// DraftConfig holds settings for AI outreach draft generation.
type DraftConfig struct {
	// Model is the AI model identifier.
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// SourcerConfig groups all stage configurations.
type SourcerConfig struct {
	Search   SearchConfig   `json:"search" yaml:"search"`
	Pipeline PipelineConfig `json:"pipeline" yaml:"pipeline"`
	Sheet    SheetConfig    `json:"sheet" yaml:"sheet"`
	Backup   BackupConfig   `json:"backup" yaml:"backup"`
	Draft    DraftConfig    `json:"draft" yaml:"draft"`
}
