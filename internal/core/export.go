package core

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/kilupskalvis/qsolog/internal/adif"
)

// ErrNoExportPath is returned when an export is requested without a destination
var ErrNoExportPath = errors.New("no export path given")

// ExportRequest holds the raw values collected for an export
type ExportRequest struct {
	Start string // optional, "YYYY-MM-DD HH:MM:SS"
	End   string // optional, "YYYY-MM-DD HH:MM:SS"
	Path  string
}

// ExportResult describes a completed export
type ExportResult struct {
	Path    string
	Records int
}

// Export filters the log and writes the matching entries to req.Path as ADIF,
// newest first
func Export(src EnrichedReader, req ExportRequest) (*ExportResult, error) {
	if strings.TrimSpace(req.Path) == "" {
		return nil, ErrNoExportPath
	}

	entries, err := ExportRange(src, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	records := make([][]adif.Field, 0, len(entries))
	for _, e := range entries {
		records = append(records, adif.RecordFields(e))
	}

	if err := adif.WriteFile(req.Path, adif.HeaderFields(), records); err != nil {
		return nil, err
	}

	slog.Info("exported log", "path", req.Path, "records", len(records), "start", req.Start, "end", req.End)

	return &ExportResult{Path: req.Path, Records: len(records)}, nil
}
