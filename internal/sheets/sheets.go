// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheets maintains the candidate spreadsheet through the Google
// Sheets API. The pipeline consumes it through the small RowAppender
// interface so the test suite never touches the network.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/a9austin/sdr-sourcer/internal/parse"
	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// Column letters in the fixed 11-column layout.
const (
	colYears   = "D"
	colRoleFit = "E"
	colDate    = "I"
	colDraft   = "K"
)

// RowAppender is the capability the pipeline needs from the spreadsheet.
type RowAppender interface {
	Append(ctx context.Context, c *types.Candidate) error
	ExistingURLs(ctx context.Context) (map[string]int, error)
	Touch(ctx context.Context, row int, c *types.Candidate) error
}

// Client wraps the Sheets API for one spreadsheet and worksheet.
type Client struct {
	svc       *sheets.Service
	sheetID   string
	worksheet string
}

// New builds a client from the service-account credentials file and ensures
// the worksheet and header row exist. Extra options are for tests
// (endpoint override, no auth).
func New(ctx context.Context, cfg types.SheetConfig, opts ...option.ClientOption) (*Client, error) {
	if cfg.SheetID == "" {
		return nil, fmt.Errorf("no sheet ID configured: set sheet.sheet_id or the sheet-id secret")
	}
	worksheet := cfg.Worksheet
	if worksheet == "" {
		worksheet = "candidates"
	}

	if len(opts) == 0 {
		opts = []option.ClientOption{
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope),
		}
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating Sheets service: %w", err)
	}

	c := &Client{svc: svc, sheetID: cfg.SheetID, worksheet: worksheet}
	if err := c.ensureWorksheet(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// ensureWorksheet creates the worksheet tab and header row when missing.
func (c *Client) ensureWorksheet(ctx context.Context) error {
	ss, err := c.svc.Spreadsheets.Get(c.sheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("opening spreadsheet %s: %w", c.sheetID, err)
	}

	found := false
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == c.worksheet {
			found = true
			break
		}
	}
	if !found {
		req := &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: c.worksheet},
				},
			}},
		}
		if _, err := c.svc.Spreadsheets.BatchUpdate(c.sheetID, req).Context(ctx).Do(); err != nil {
			return fmt.Errorf("creating worksheet %s: %w", c.worksheet, err)
		}
	}

	head, err := c.svc.Spreadsheets.Values.Get(c.sheetID, c.rangeRef("A1:K1")).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("reading header row: %w", err)
	}
	if len(head.Values) == 0 || len(head.Values[0]) == 0 || head.Values[0][0] != "Full Name" {
		vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(types.Header)}}
		_, err := c.svc.Spreadsheets.Values.Update(c.sheetID, c.rangeRef("A1:K1"), vr).
			ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("writing header row: %w", err)
		}
	}
	return nil
}

// Append adds one candidate row after the existing data.
func (c *Client) Append(ctx context.Context, cand *types.Candidate) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(cand.Row())}}
	_, err := c.svc.Spreadsheets.Values.Append(c.sheetID, c.rangeRef("A:K"), vr).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("appending to sheet: %w", err)
	}
	return nil
}

// ExistingURLs returns normalized profile URL to 1-based row number for
// every data row, used for cross-run dedup preload and update-in-place.
func (c *Client) ExistingURLs(ctx context.Context) (map[string]int, error) {
	vr, err := c.svc.Spreadsheets.Values.Get(c.sheetID, c.rangeRef("B2:B")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading URL column: %w", err)
	}

	urls := make(map[string]int, len(vr.Values))
	for i, row := range vr.Values {
		if len(row) == 0 {
			continue
		}
		raw, ok := row[0].(string)
		if !ok || raw == "" {
			continue
		}
		if key, ok := parse.CleanURL(raw); ok {
			urls[key] = i + 2
		}
	}
	return urls, nil
}

// Touch refreshes Role Fit and Date Added for a candidate already in the
// sheet, instead of appending a duplicate row.
func (c *Client) Touch(ctx context.Context, row int, cand *types.Candidate) error {
	cells := cand.Row()
	updates := []*sheets.ValueRange{
		{
			Range:  c.cellRef(colRoleFit, row),
			Values: [][]interface{}{{cells[4]}},
		},
		{
			Range:  c.cellRef(colDate, row),
			Values: [][]interface{}{{cells[8]}},
		},
	}
	return c.batchUpdate(ctx, updates)
}

// Rows returns all data rows (row 2 onward) in the 11-column layout.
func (c *Client) Rows(ctx context.Context) ([][]string, error) {
	vr, err := c.svc.Spreadsheets.Values.Get(c.sheetID, c.rangeRef("A2:K")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading sheet rows: %w", err)
	}

	rows := make([][]string, 0, len(vr.Values))
	for _, raw := range vr.Values {
		row := make([]string, len(types.Header))
		for i := 0; i < len(row) && i < len(raw); i++ {
			if s, ok := raw[i].(string); ok {
				row[i] = s
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// UpdateYears batch-writes experience estimates keyed by 1-based row number.
func (c *Client) UpdateYears(ctx context.Context, estimates map[int]string) error {
	return c.updateColumn(ctx, colYears, estimates)
}

// UpdateDrafts batch-writes AI outreach drafts keyed by 1-based row number.
func (c *Client) UpdateDrafts(ctx context.Context, drafts map[int]string) error {
	return c.updateColumn(ctx, colDraft, drafts)
}

func (c *Client) updateColumn(ctx context.Context, col string, values map[int]string) error {
	if len(values) == 0 {
		return nil
	}
	updates := make([]*sheets.ValueRange, 0, len(values))
	for row, v := range values {
		updates = append(updates, &sheets.ValueRange{
			Range:  c.cellRef(col, row),
			Values: [][]interface{}{{v}},
		})
	}
	return c.batchUpdate(ctx, updates)
}

func (c *Client) batchUpdate(ctx context.Context, data []*sheets.ValueRange) error {
	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}
	if _, err := c.svc.Spreadsheets.Values.BatchUpdate(c.sheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("batch updating sheet: %w", err)
	}
	return nil
}

func (c *Client) rangeRef(cells string) string {
	return fmt.Sprintf("%s!%s", c.worksheet, cells)
}

func (c *Client) cellRef(col string, row int) string {
	return fmt.Sprintf("%s!%s%d", c.worksheet, col, row)
}

func toInterfaces(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
