package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/gasupport/internal/shimlogs"
)

// AddShimLog collects one shim measurement (machine id, before/after per
// axis, optional note) and persists it. The stored delta is printed back so
// the operator can verify it on the spot.
func (a *App) AddShimLog(ctx context.Context) error {
	machineID, err := getSimpleText(a.reader, "Machine id (e.g. Motor 04 / Pump B)", os.Stdout)
	if err != nil {
		return err
	}

	before, err := a.readAxes("before")
	if err != nil {
		return err
	}
	after, err := a.readAxes("after")
	if err != nil {
		return err
	}

	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}

	entry, err := a.shimlogs.Create(ctx, shimlogs.Params{
		MachineID: machineID,
		Before:    before,
		After:     after,
		Note:      note,
	})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Saved. Delta: X %s  Y %s  Z %s", entry.Delta.X, entry.Delta.Y, entry.Delta.Z))
	return nil
}

func (a *App) readAxes(label string) (shimlogs.Axes, error) {
	var axes shimlogs.Axes
	for _, p := range []struct {
		name string
		dst  *string
	}{
		{"X", &axes.X},
		{"Y", &axes.Y},
		{"Z", &axes.Z},
	} {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s %s (mm, empty = 0)", label, p.name), os.Stdout)
		if err != nil {
			return axes, err
		}
		*p.dst = v
	}
	return axes, nil
}

// ListShimLogs prints every stored measurement, newest first.
func (a *App) ListShimLogs(ctx context.Context) error {
	logs, err := a.shimlogs.List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(logs) == 0 {
		printlnFn("No measurements saved yet.")
		return nil
	}
	for _, l := range logs {
		printlnFn(fmt.Sprintf("%s  %s  %s  ΔX %s  ΔY %s  ΔZ %s",
			l.ID, l.Timestamp.Local().Format("2006-01-02 15:04"), l.MachineID,
			l.Delta.X, l.Delta.Y, l.Delta.Z))
		if l.Note != "" {
			printlnFn("    note:", l.Note)
		}
	}
	return nil
}

// DeleteShimLog removes one measurement by id.
func (a *App) DeleteShimLog(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter measurement id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.shimlogs.Delete(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Deleted.")
	return nil
}

// Export writes the full shim log to a dated text file in the configured
// export directory.
func (a *App) Export(ctx context.Context) error {
	logs, err := a.shimlogs.List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	path, err := shimlogs.WriteExport(a.config.ExportDir, logs, time.Now())
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Exported to", path)
	return nil
}
