package export

import (
	"io"

	"github.com/iksnae/ticket-desk/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports tickets in YAML format
type YAMLExporter struct{}

// Export exports all tickets as one YAML document
func (e *YAMLExporter) Export(tickets []internal.Ticket, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(tickets)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
