package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/ticket-desk/internal"
)

// JSONExporter exports tickets in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports all tickets as one JSON array
func (e *JSONExporter) Export(tickets []internal.Ticket, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(tickets)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
