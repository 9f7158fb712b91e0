// Package google implements the sheets ports against the Google Sheets API.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
	"github.com/ceugb69-B/yen-tracker2/internal/ledger"
	ports "github.com/ceugb69-B/yen-tracker2/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	ledgerSheet   string
	settingsSheet string
	budgetCell    string
}

// Ensure interface conformance
var (
	_ ports.RecordReader = (*Client)(nil)
	_ ports.RowAppender  = (*Client)(nil)
	_ ports.BulkReplacer = (*Client)(nil)
	_ ports.BudgetCell   = (*Client)(nil)
)

// NewFromEnv creates a Sheets client from environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Optional: GOOGLE_SHEET_NAME (default "Expenses"),
// GOOGLE_SETTINGS_SHEET_NAME (default "Settings"),
// GOOGLE_BUDGET_CELL (default "B1").
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	ledgerSheet := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME"))
	if ledgerSheet == "" {
		ledgerSheet = "Expenses"
	}
	settingsSheet := strings.TrimSpace(os.Getenv("GOOGLE_SETTINGS_SHEET_NAME"))
	if settingsSheet == "" {
		settingsSheet = "Settings"
	}
	budgetCell := strings.TrimSpace(os.Getenv("GOOGLE_BUDGET_CELL"))
	if budgetCell == "" {
		budgetCell = "B1"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		ledgerSheet:   ledgerSheet,
		settingsSheet: settingsSheet,
		budgetCell:    budgetCell,
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account credentials.
// Uses GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// ReadAll returns every data row of the ledger sheet as an untyped column
// mapping keyed by the header row. No schema is enforced here; blank and
// malformed rows travel through and the normalizer decides their fate.
func (c *Client) ReadAll(ctx context.Context) ([]ledger.Record, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!A:E", c.ledgerSheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	return rowsToRecords(resp.Values), nil
}

// AppendRow appends one entry in the fixed positional column order
// [date, item, amount, category, description]. The date is written as plain
// text in canonical form so Sheets cannot re-interpret it as a locale
// dependent date or formula.
func (c *Client) AppendRow(ctx context.Context, e core.Entry) (string, error) {
	if c.svc == nil {
		return "", errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!A:E", c.ledgerSheet)
	vr := &gsheet.ValueRange{Values: [][]any{entryToRow(e)}}
	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("append to sheet %s: %w", c.ledgerSheet, err)
	}

	ref := ""
	if resp.Updates != nil {
		ref = resp.Updates.UpdatedRange
	}
	slog.InfoContext(ctx, "Appended ledger row",
		"sheet", c.ledgerSheet,
		"item", e.Item,
		"amount_yen", e.Amount.Yen,
		"ref", ref)
	return ref, nil
}

// ReplaceAll overwrites the whole ledger sheet with the header and the given
// entries. Clear and update are two API calls, so a failure in between
// leaves the sheet in an unknown intermediate state; callers must re-read
// before retrying.
func (c *Client) ReplaceAll(ctx context.Context, header []string, entries []core.Entry) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}

	clearRng := fmt.Sprintf("%s!A:E", c.ledgerSheet)
	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, clearRng, &gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear sheet %s: %w", c.ledgerSheet, err)
	}

	values := make([][]any, 0, len(entries)+1)
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	values = append(values, headerRow)
	for _, e := range entries {
		values = append(values, entryToRow(e))
	}

	writeRng := fmt.Sprintf("%s!A1", c.ledgerSheet)
	vr := &gsheet.ValueRange{Values: values}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRng, vr).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("rewrite sheet %s: %w", c.ledgerSheet, err)
	}

	slog.InfoContext(ctx, "Rewrote ledger sheet", "sheet", c.ledgerSheet, "rows", len(entries))
	return nil
}

// ReadBudgetCell returns the raw budget cell text, or "" when the cell is
// empty or missing. Interpretation (comma stripping, the 300000 default)
// belongs to the ledger package.
func (c *Client) ReadBudgetCell(ctx context.Context) (string, error) {
	if c.svc == nil {
		return "", errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!%s", c.settingsSheet, c.budgetCell)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rng, err)
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return "", nil
	}
	return strings.TrimSpace(fmt.Sprint(resp.Values[0][0])), nil
}

// WriteBudgetCell stores the monthly budget as a plain integer.
func (c *Client) WriteBudgetCell(ctx context.Context, yen int64) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!%s", c.settingsSheet, c.budgetCell)
	vr := &gsheet.ValueRange{Values: [][]any{{strconv.FormatInt(yen, 10)}}}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("write %s: %w", rng, err)
	}
	slog.InfoContext(ctx, "Updated budget cell", "cell", rng, "yen", yen)
	return nil
}
