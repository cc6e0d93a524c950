// Package export renders case records into downloadable artifacts: a
// delimited-text listing and a per-case PDF report.
package export

import (
	"encoding/csv"
	"io"

	"github.com/spec-kit/case-service/internal/domain"
)

// utf8BOM lets spreadsheet tools detect the character set of the download.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"NUP", "Title", "Origin", "Status", "Assignee", "Date", "Description"}

// WriteCSV streams the given records as quoted delimited text, preserving
// the input order. Embedded delimiters, quotes and newlines are escaped per
// standard quoted-field rules.
func WriteCSV(w io.Writer, records []domain.CaseRecord) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.CaseNumber,
			rec.Title,
			string(rec.Origin),
			string(rec.Status),
			rec.Assignee,
			rec.CreatedAt.Format("2006-01-02"),
			rec.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
