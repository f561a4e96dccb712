package gelbook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export format.
// It is a plain CSV (RFC-4180 quoting) that external tools can produce, so
// importing must merge rows into the ledger without creating duplicates.

// ErrInvalidFormat rejects an import whose header lacks a required column.
var ErrInvalidFormat = errors.New("invalid CSV format: missing required columns")

// csvHeader is the fixed export column list. Imports also accept the older
// 12-column layout without the "YTD Income" column.
var csvHeader = []string{
	"Date", "User ID", "User Name", "Taxpayer ID",
	"Currency Code", "Currency Name",
	"Amount", "Rate", "Quantity", "Converted GEL", "YTD Income",
	"Comment", "Timestamp",
}

// requiredColumns must appear somewhere in the header line for an import to
// proceed at all.
var requiredColumns = []string{"Date", "Currency Code", "Converted GEL"}

// ImportReport counts the outcome of an import. Malformed rows are skipped
// individually and appear in no counter.
type ImportReport struct {
	Imported     int // rows appended to the ledger
	Skipped      int // rows whose timestamp already existed
	CreatedUsers int // users auto-provisioned from rows
}

func (r ImportReport) String() string {
	return fmt.Sprintf("imported %d, skipped %d duplicates, created %d users", r.Imported, r.Skipped, r.CreatedUsers)
}

// ExportCSV writes transactions to w in the import/export format, one row per
// transaction, in the given order. YTD values come from the precomputed
// mapping (see PrecalculateAllYTD). Output is deterministic for a given input.
func ExportCSV(w io.Writer, transactions []Transaction, users []User, ytd map[string]decimal.Decimal) error {
	byID := make(map[string]User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, t := range transactions {
		u := byID[t.UserID]
		record := []string{
			t.Date.String(),
			t.UserID,
			u.Name,
			u.TaxpayerID,
			t.CurrencyCode,
			t.CurrencyName,
			t.Amount.String(),
			t.Rate.String(),
			t.Quantity.String(),
			t.ConvertedGEL.String(),
			ytd[t.ID].String(),
			t.Comment,
			t.Timestamp,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV row for %q: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV parses CSV text from r and merges its rows into the ledger.
//
// The header must contain the Date, Currency Code and Converted GEL columns
// in any position, else the whole import fails with ErrInvalidFormat and no
// side effects. Rows are then processed independently: a row needs at least
// 12 fields, a valid date, a valid currency code and numeric amounts, or it
// is skipped. A row whose timestamp already exists in the ledger is counted
// as a duplicate and never overwritten. Rows referencing an unknown user
// auto-provision that user from the row's name and taxpayer id. Imported YTD
// values are ignored, YTD is always rederivable.
func (l *Ledger) ImportCSV(r io.Reader) (ImportReport, error) {
	var report ImportReport

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return report, ErrInvalidFormat
	}
	headerLine := strings.Join(header, ",")
	for _, col := range requiredColumns {
		if !strings.Contains(headerLine, col) {
			return report, ErrInvalidFormat
		}
	}

	seen := make(map[string]bool, len(l.transactions))
	for _, t := range l.transactions {
		seen[t.Timestamp] = true
	}
	knownUsers := make(map[string]bool, len(l.users))
	for _, u := range l.users {
		knownUsers[u.ID] = true
	}

	users := l.Users()
	transactions := l.Transactions()

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // malformed row, not fatal to the import
		}
		if !validRow(record) {
			continue
		}

		// The 12-column layout has no YTD column; either way the last two
		// fields are the comment and the timestamp.
		comment, timestamp := record[10], record[11]
		if len(record) >= 13 {
			comment, timestamp = record[11], record[12]
		}
		if timestamp == "" {
			timestamp = time.Now().UTC().Format(TimestampFormat)
		}
		if seen[timestamp] {
			report.Skipped++
			continue
		}

		tx := Transaction{
			ID:           uuid.NewString(),
			UserID:       record[1],
			Date:         MustParse(record[0]), // validRow guarantees it parses
			CurrencyCode: record[4],
			CurrencyName: record[5],
			Amount:       parseDecimal(record[6]),
			Rate:         parseDecimal(record[7]),
			Quantity:     parseDecimal(record[8]),
			ConvertedGEL: parseDecimal(record[9]),
			Comment:      comment,
			Timestamp:    timestamp,
		}
		if !tx.Valid() {
			continue
		}

		if !knownUsers[tx.UserID] {
			name := record[2]
			if name == "" {
				name = tx.UserID
			}
			users = append(users, User{ID: tx.UserID, Name: name, TaxpayerID: record[3]})
			knownUsers[tx.UserID] = true
			report.CreatedUsers++
		}

		transactions = append(transactions, tx)
		seen[timestamp] = true
		report.Imported++
	}

	if report.Imported == 0 && report.CreatedUsers == 0 {
		return report, nil
	}
	if err := l.saveUsers(users); err != nil {
		return ImportReport{}, err
	}
	if err := l.saveTransactions(transactions); err != nil {
		return ImportReport{}, err
	}
	return report, nil
}

// validRow implements the per-row acceptance check: at least 12 fields, a
// valid date and currency code, and numeric amount fields.
func validRow(record []string) bool {
	if len(record) < 12 {
		return false
	}
	if !ValidDateString(record[0]) {
		return false
	}
	if !ValidCurrencyCode(record[4]) {
		return false
	}
	if _, err := decimal.NewFromString(record[6]); err != nil {
		return false
	}
	if _, err := decimal.NewFromString(record[9]); err != nil {
		return false
	}
	return true
}

// parseDecimal is lenient: snapshot fields that fail to parse become zero,
// the row-level validity check already guarded the fields that matter.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
