package export

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/spec-kit/case-service/internal/domain"
)

// WriteReport renders a single case as a paginated PDF: a header, a
// key/value table of the case fields and the full description text.
func WriteReport(record *domain.CaseRecord, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Case Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 6, "Generated at: "+generatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)
	pdf.SetTextColor(0, 0, 0)

	deadline := "not set"
	if record.Deadline != nil {
		deadline = record.Deadline.Format("2006-01-02")
	}
	fields := [][2]string{
		{"NUP", record.CaseNumber},
		{"Title", record.Title},
		{"Origin", string(record.Origin)},
		{"Status", string(record.Status)},
		{"Assignee", record.Assignee},
		{"Deadline", deadline},
		{"Created", record.CreatedAt.Format("2006-01-02")},
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(79, 70, 229)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(50, 8, "Field", "1", 0, "L", true, 0, "")
	pdf.CellFormat(130, 8, "Value", "1", 1, "L", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	fill := false
	pdf.SetFillColor(240, 240, 245)
	for _, field := range fields {
		pdf.CellFormat(50, 8, field[0], "1", 0, "L", fill, 0, "")
		pdf.CellFormat(130, 8, field[1], "1", 1, "L", fill, 0, "")
		fill = !fill
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, "Description")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(180, 5, record.Description, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
