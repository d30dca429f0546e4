package export

import (
	"fmt"
	"io"
	"time"

	"github.com/iksnae/ticket-desk/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(tickets []internal.Ticket, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "csv":
		return &CSVExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: csv, json, jsonl, md, yaml)", format)
	}
}

// Filename returns the export filename for the given day and format,
// e.g. tickets-export-2026-08-28.csv
func Filename(now time.Time, e Exporter) string {
	return fmt.Sprintf("tickets-export-%s.%s", now.Format("2006-01-02"), e.Extension())
}
