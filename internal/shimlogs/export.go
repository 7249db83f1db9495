package shimlogs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/gasupport/internal/common"
)

// The export keeps the legacy Swedish block format byte for byte, so files
// produced here are interchangeable with the ones the old tool downloaded.
const (
	exportHeader    = "Shimslogg Geometri - Data\n==========================\n\n"
	exportRule      = "--------------------------"
	exportSeparator = "**************************"
)

// exportTimeLayout is the sv-SE locale date-time rendering.
const exportTimeLayout = "2006-01-02 15:04:05"

// ExportFileName returns the download-style file name for the given day,
// e.g. "shimslogg_export_2026-08-31.txt".
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("shimslogg_export_%s.txt", now.Format("2006-01-02"))
}

// RenderText renders the full collection, one block per entry in the given
// (newest-first) order, each carrying a 1-based reverse index so the oldest
// entry is MÄTNING #1. It consumes Store.List output unmodified.
func RenderText(logs []ShimLog) (string, error) {
	if len(logs) == 0 {
		return "", common.ErrorNothingToExport
	}

	var b strings.Builder
	b.WriteString(exportHeader)
	for i, l := range logs {
		fmt.Fprintf(&b, "MÄTNING #%d\n", len(logs)-i)
		fmt.Fprintf(&b, "Datum: %s\n", l.Timestamp.Local().Format(exportTimeLayout))
		fmt.Fprintf(&b, "Maskin-ID: %s\n", l.MachineID)
		b.WriteString(exportRule + "\n")
		b.WriteString("VÄRDEN (mm):\n")
		for _, axis := range []struct {
			label                string
			before, after, delta string
		}{
			{"X", l.Before.X, l.After.X, l.Delta.X},
			{"Y", l.Before.Y, l.After.Y, l.Delta.Y},
			{"Z", l.Before.Z, l.After.Z, l.Delta.Z},
		} {
			fmt.Fprintf(&b, "%s: Före: %s | Efter: %s | Diff: %s\n",
				axis.label, orZero(axis.before), orZero(axis.after), axis.delta)
		}
		if l.Note != "" {
			fmt.Fprintf(&b, "Notering: %s\n", l.Note)
		}
		b.WriteString("\n" + exportSeparator + "\n\n")
	}
	return b.String(), nil
}

// WriteExport renders logs and writes the result into dir, returning the
// full path of the written file.
func WriteExport(dir string, logs []ShimLog, now time.Time) (string, error) {
	content, err := RenderText(logs)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ExportFileName(now))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

func orZero(s string) string {
	if s == "" {
		return "0.00"
	}
	return s
}
