package pos

import (
	"fmt"
	"io"
	"strings"
)

// csvTimeFormat is how sale timestamps appear in the export.
const csvTimeFormat = "2006-01-02 15:04:05"

// csvColumns is the fixed header of a sales export.
var csvColumns = []string{"receipt", "date", "customer", "payment", "total", "items"}

// ExportCSV writes the whole ledger as CSV, one row per sale, most recent
// first. Every field is double-quoted with inner quotes doubled, so any CSV
// reader recovers the original values. Callers decide what to do with an
// empty ledger; ExportCSV itself writes the header regardless.
func (l *SalesLedger) ExportCSV(w io.Writer) error {
	if err := writeCSVRow(w, csvColumns); err != nil {
		return err
	}
	for _, s := range l.sales {
		row := []string{
			s.ID,
			s.Date.Format(csvTimeFormat),
			s.CustomerName,
			string(s.PaymentMethod),
			s.Total.Number(),
			s.ItemsSummary(),
		}
		if err := writeCSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVRow writes one comma-separated, newline-terminated row. The csv
// package quotes only when necessary; the export format quotes every field,
// so rows are formatted by hand.
func writeCSVRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	if _, err := fmt.Fprintln(w, strings.Join(quoted, ",")); err != nil {
		return fmt.Errorf("cannot write export row: %w", err)
	}
	return nil
}

// ExportFilename returns the dated file name for a sales export.
func ExportFilename(on Date) string {
	return fmt.Sprintf("smartviews_sales_%s.csv", on.String())
}
