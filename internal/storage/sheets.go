package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// cacheDuration is how long a materialized snapshot is served before the
// spreadsheet is read again.
const cacheDuration = 30 * time.Second

// SheetsBackend stores each collection in a tab of one Google spreadsheet.
// Reads go through a short-lived cache; every mutation rewrites the affected
// tabs in full and refreshes the cache.
type SheetsBackend struct {
	svc           *sheets.Service
	spreadsheetID string

	cache    *Snapshot
	loadedAt time.Time
}

// NewSheetsBackend authenticates with a service account key (the JSON
// document itself, not a path) and returns a backend bound to one
// spreadsheet.
func NewSheetsBackend(ctx context.Context, spreadsheetID, serviceAccountKey string) (*SheetsBackend, error) {
	cfg, err := google.JWTConfigFromJSON([]byte(serviceAccountKey), sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account key: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}

	logrus.WithField("spreadsheet_id", spreadsheetID).Info("Google Sheets connected")
	return &SheetsBackend{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (b *SheetsBackend) Load(ctx context.Context) (*Snapshot, error) {
	if b.cache != nil && time.Since(b.loadedAt) < cacheDuration {
		return b.cache, nil
	}

	snap := NewSnapshot()
	for _, col := range Collections {
		rng := fmt.Sprintf("%s!A:Z", col)
		resp, err := b.svc.Spreadsheets.Values.Get(b.spreadsheetID, rng).Context(ctx).Do()
		if err != nil {
			// An unreadable tab counts as empty so one broken tab does
			// not take the whole API down.
			logrus.WithError(err).WithField("tab", col).Warn("Failed to read sheet tab")
			continue
		}
		decodeRows(col, resp.Values, snap)
	}
	snap.deriveNextIDs()

	b.cache = snap
	b.loadedAt = time.Now()
	return snap, nil
}

func (b *SheetsBackend) Persist(ctx context.Context, snap *Snapshot, cols ...Collection) error {
	if len(cols) == 0 {
		cols = Collections
	}

	for _, col := range cols {
		if err := b.writeTab(ctx, col, snap); err != nil {
			return err
		}
	}

	b.cache = snap
	b.loadedAt = time.Now()
	return nil
}

func (b *SheetsBackend) writeTab(ctx context.Context, col Collection, snap *Snapshot) error {
	rng := fmt.Sprintf("%s!A:Z", col)
	if _, err := b.svc.Spreadsheets.Values.Clear(b.spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clearing tab %s: %w", col, err)
	}

	rows := encodeRows(col, snap)
	_, err := b.svc.Spreadsheets.Values.Update(b.spreadsheetID, fmt.Sprintf("%s!A1", col), &sheets.ValueRange{
		Values: rows,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("writing tab %s: %w", col, err)
	}

	logrus.WithFields(logrus.Fields{"tab": col, "rows": len(rows) - 1}).Debug("Sheet tab rewritten")
	return nil
}

// SetupSheets creates any missing collection tabs. Existing tabs and their
// data are left alone.
func (b *SheetsBackend) SetupSheets(ctx context.Context) error {
	doc, err := b.svc.Spreadsheets.Get(b.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("fetching spreadsheet: %w", err)
	}

	existing := map[string]bool{}
	for _, sh := range doc.Sheets {
		existing[sh.Properties.Title] = true
	}

	var requests []*sheets.Request
	for _, col := range Collections {
		if existing[string(col)] {
			continue
		}
		requests = append(requests, &sheets.Request{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: string(col)},
			},
		})
	}
	if len(requests) == 0 {
		return nil
	}

	_, err = b.svc.Spreadsheets.BatchUpdate(b.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("creating sheet tabs: %w", err)
	}

	logrus.WithField("created", len(requests)).Info("Sheet tabs created")
	return nil
}
