package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/ticket-desk/internal"
)

// JSONLExporter exports tickets in JSONL format (one ticket per line)
type JSONLExporter struct{}

// Export encodes each ticket on its own line
func (e *JSONLExporter) Export(tickets []internal.Ticket, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, t := range tickets {
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("failed to encode ticket %s: %w", t.ID, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
