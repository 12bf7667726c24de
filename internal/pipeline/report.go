// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// Report is the YAML summary written at the end of a sourcing run.
type Report struct {
	Started        time.Time         `yaml:"started"`
	Finished       time.Time         `yaml:"finished"`
	Queries        int               `yaml:"queries"`
	Hits           int               `yaml:"hits"`
	Accepted       int               `yaml:"accepted"`
	Duplicates     int               `yaml:"duplicates"`
	Rejections     map[string]int    `yaml:"rejections,omitempty"`
	ByRole         map[string]int    `yaml:"by_role,omitempty"`
	QuotaExhausted bool              `yaml:"quota_exhausted,omitempty"`
	Candidates     []reportCandidate `yaml:"candidates,omitempty"`
}

type reportCandidate struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Headline string `yaml:"headline,omitempty"`
	RoleFit  string `yaml:"role_fit"`
	Query    string `yaml:"query,omitempty"`
}

// BuildReport summarizes a finished session.
func BuildReport(sess *Session, finished time.Time) Report {
	r := Report{
		Started:        sess.Started,
		Finished:       finished,
		Queries:        sess.Queries,
		Hits:           sess.Hits,
		Accepted:       len(sess.Accepted),
		Duplicates:     sess.Duplicates,
		QuotaExhausted: sess.QuotaExhausted,
	}
	if len(sess.Rejections) > 0 {
		r.Rejections = sess.Rejections
	}
	if len(sess.Accepted) > 0 {
		r.ByRole = sess.ByRole()
	}
	for _, c := range sess.Accepted {
		r.Candidates = append(r.Candidates, reportCandidate{
			Name:     c.FullName,
			URL:      c.LinkedInURL,
			Headline: c.Headline,
			RoleFit:  string(c.RoleFit),
			Query:    c.SourceQuery,
		})
	}
	return r
}

// WriteReport writes the report as run-YYYYMMDD-HHMMSS.yaml under cfg.ReportDir
// and returns the file path.
func WriteReport(cfg types.BackupConfig, r Report) (string, error) {
	dir := cfg.ReportDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encoding run report: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("run-%s.yaml", r.Finished.Format("20060102-150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing run report: %w", err)
	}
	return path, nil
}
