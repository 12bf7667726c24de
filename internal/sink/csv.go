// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/a9austin/sdr-sourcer/internal/parse"
	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// CSVSink appends candidates to the local backup file. The file is
// append-only UTF-8 CSV with the fixed 11-column header written on first
// creation.
type CSVSink struct {
	Path string
}

// NewCSVSink returns a sink for the given path. The file is created lazily
// on the first append.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{Path: path}
}

// Name returns the sink identifier.
func (s *CSVSink) Name() string { return "csv" }

// Append writes one candidate row, creating the file with a header row
// first when needed.
func (s *CSVSink) Append(_ context.Context, c *types.Candidate) error {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening backup file %s: %w", s.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat backup file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(types.Header); err != nil {
			return fmt.Errorf("writing backup header: %w", err)
		}
	}
	if err := w.Write(c.Row()); err != nil {
		return fmt.Errorf("writing backup row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing backup row: %w", err)
	}
	return nil
}

// Load reads the backup file back into candidate records. A missing file
// yields an empty slice, matching a run that has not written yet.
func Load(path string) ([]types.Candidate, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening backup file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var candidates []types.Candidate
	header := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading backup file %s: %w", path, err)
		}
		if header {
			header = false
			continue
		}
		candidates = append(candidates, fromRow(row))
	}
	return candidates, nil
}

// URLs returns the set of normalized profile URLs already present in the
// backup file, for cross-run dedup preload.
func URLs(path string) (map[string]bool, error) {
	candidates, err := Load(path)
	if err != nil {
		return nil, err
	}
	urls := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if key, ok := parse.CleanURL(c.LinkedInURL); ok {
			urls[key] = true
		}
	}
	return urls, nil
}

func fromRow(row []string) types.Candidate {
	field := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	c := types.Candidate{
		FullName:        field(0),
		LinkedInURL:     field(1),
		Headline:        field(2),
		YearsExperience: field(3),
		RoleFit:         types.RoleFit(field(4)),
		Notes:           field(5),
		Email:           field(6),
		Phone:           field(7),
		Status:          field(9),
		AIDraft:         field(10),
	}
	if added, err := time.Parse("2006-01-02", field(8)); err == nil {
		c.DateAdded = added
	}
	return c
}
