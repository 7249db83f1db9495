// Package reports owns the measurement report collection: the record model,
// its creation-time validation and the file-to-data-URL ingestion used for
// attachments and pictures.
package reports

import (
	"slices"
	"time"
)

// Places is the fixed set of valid report locations.
var Places = []string{"Pretrim", "Trim", "Final", "Övrigt"}

// Schedules is the fixed set of valid schedule states.
var Schedules = []string{"Planning", "Ongoing", "Done", "Delayed"}

// Attachment is an uploaded file embedded in the record as a data URL.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Picture is an uploaded image embedded in the record as a data URL.
type Picture struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Report is immutable once created; the only later operation is
// whole-record deletion. JSON field names match the legacy store layout.
type Report struct {
	ID          string       `json:"id"`
	Job         string       `json:"job"`
	Place       string       `json:"place"`
	PlaceNumber string       `json:"placeNumber"`
	Notes       string       `json:"notes"`
	Schedule    string       `json:"schedule"`
	Attachments []Attachment `json:"attachments"`
	Pictures    []Picture    `json:"pictures"`
	Timestamp   time.Time    `json:"timestamp"`
}

// RecordID implements records.Record.
func (r Report) RecordID() string { return r.ID }

// ValidPlace reports whether place belongs to the fixed set.
func ValidPlace(place string) bool { return slices.Contains(Places, place) }

// ValidSchedule reports whether schedule belongs to the fixed set.
func ValidSchedule(schedule string) bool { return slices.Contains(Schedules, schedule) }
