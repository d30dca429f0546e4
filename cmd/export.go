package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iksnae/ticket-desk/internal"
	"github.com/iksnae/ticket-desk/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat     string
	exportOutputDir  string
	exportStatus     string
	exportSearch     string
	exportClearCache bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tickets to file",
	Long: `Export escalated tickets to a file (csv, json, jsonl, md, yaml).

Tickets can be narrowed by status or free-text search before exporting.
The output file is named tickets-export-<date>.<ext>.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(); err != nil {
			return err
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		client := newClient()
		cm, err := newCacheManager()
		if err != nil {
			internal.LogWarn("Ticket cache unavailable: %v", err)
			cm = nil
		}

		if exportClearCache && cm != nil {
			if err := cm.ClearCache(); err != nil {
				internal.LogWarn("Failed to clear cache: %v", err)
			} else {
				internal.LogInfo("Cache cleared")
			}
		}

		var tickets []internal.Ticket
		err = internal.ShowProgress(cmd.Context(), "Loading tickets", func() error {
			var loadErr error
			tickets, loadErr = internal.FetchTickets(cmd.Context(), client, cm, noCache)
			return loadErr
		})
		if err != nil {
			return fmt.Errorf("failed to load tickets: %w", err)
		}

		tickets = internal.FilterByStatus(tickets, exportStatus)
		if exportSearch != "" {
			tickets = internal.FilterTickets(tickets, exportSearch)
		}

		// Ensure output directory exists
		if err := os.MkdirAll(exportOutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		path := filepath.Join(exportOutputDir, export.Filename(time.Now(), exporter))
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create file %s: %w", path, err)
		}

		if err := exporter.Export(tickets, file); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to export tickets: %w", err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close file %s: %w", path, err)
		}

		internal.PrintSuccess(fmt.Sprintf("Export complete: %d ticket(s) written to %s", len(tickets), path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Export format (csv, json, jsonl, md, yaml)")
	exportCmd.Flags().StringVarP(&exportOutputDir, "out", "o", ".", "Output directory")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "Filter by status before exporting")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "Filter by text before exporting")
	exportCmd.Flags().BoolVar(&exportClearCache, "clear-cache", false, "Clear the cache before running")
}
