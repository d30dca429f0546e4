package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iksnae/ticket-desk/internal"
)

// csvHeaders matches the column layout of the web dashboard's export
var csvHeaders = []string{
	"Ticket ID",
	"Status",
	"User Query",
	"AI Answer",
	"User Feedback",
	"Submitted",
	"Resolved",
	"Resolved By",
	"Comments Count",
}

// CSVExporter exports tickets as an RFC 4180 CSV table
type CSVExporter struct{}

// Export writes the header row followed by one row per ticket
func (e *CSVExporter) Export(tickets []internal.Ticket, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range tickets {
		row := []string{
			t.ID,
			t.Status,
			t.UserQuery,
			t.AIAnswer,
			t.UserFeedback,
			t.SubmittedAt,
			t.ResolvedAt,
			t.ResolvedBy,
			strconv.Itoa(len(t.Comments)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write ticket %s: %w", t.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Extension returns the file extension for this format
func (e *CSVExporter) Extension() string {
	return "csv"
}
