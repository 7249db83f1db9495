// Package shimlogs owns the geometry shim adjustment log: per-axis
// before/after measurements, the derived delta and the legacy text export.
package shimlogs

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Axes holds one decimal value per axis. Values are kept as strings, the
// way the operator typed them; an empty value means 0.
type Axes struct {
	X string `json:"x"`
	Y string `json:"y"`
	Z string `json:"z"`
}

// ShimLog is immutable once created. Delta is computed once at save time
// and stored, never recomputed later.
type ShimLog struct {
	ID        string    `json:"id"`
	MachineID string    `json:"machineId"`
	Before    Axes      `json:"before"`
	After     Axes      `json:"after"`
	Delta     Axes      `json:"delta"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

// RecordID implements records.Record.
func (l ShimLog) RecordID() string { return l.ID }

// ComputeDelta derives after-before per axis, formatted to exactly two
// decimals. Empty inputs count as 0; an unparsable input yields "0.00",
// matching the legacy calculator.
func ComputeDelta(before, after Axes) Axes {
	return Axes{
		X: diff(after.X, before.X),
		Y: diff(after.Y, before.Y),
		Z: diff(after.Z, before.Z),
	}
}

func diff(after, before string) string {
	a, okA := parseAxis(after)
	b, okB := parseAxis(before)
	if !okA || !okB {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", a-b)
}

func parseAxis(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
