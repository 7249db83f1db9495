package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gasupport/internal/common"
	"github.com/dmitrijs2005/gasupport/internal/records"
	"github.com/dmitrijs2005/gasupport/internal/storage"
)

// Params carries the caller-provided fields for a new report.
type Params struct {
	Job         string
	Place       string
	PlaceNumber string
	Notes       string
	Schedule    string
	Attachments []Attachment
	Pictures    []Picture
}

// Store is the report collection persisted under storage.ReportsKey,
// newest first.
type Store struct {
	records *records.Store[Report]
}

func NewStore(kv storage.KV) *Store {
	return &Store{records: records.NewStore[Report](kv, storage.ReportsKey)}
}

// List returns all reports, newest first, read fresh from the store.
func (s *Store) List(ctx context.Context) ([]Report, error) {
	return s.records.List(ctx)
}

// Create validates p, assigns id and timestamp, prepends the record to the
// persisted collection and returns it. Validation failures are reported
// before anything is persisted.
func (s *Store) Create(ctx context.Context, p Params) (*Report, error) {
	if strings.TrimSpace(p.Job) == "" {
		return nil, fmt.Errorf("job is required: %w", common.ErrorValidation)
	}
	if !ValidPlace(p.Place) {
		return nil, fmt.Errorf("place %q is not one of %v: %w", p.Place, Places, common.ErrorValidation)
	}
	if !ValidSchedule(p.Schedule) {
		return nil, fmt.Errorf("schedule %q is not one of %v: %w", p.Schedule, Schedules, common.ErrorValidation)
	}

	rep := Report{
		ID:          uuid.NewString(),
		Job:         p.Job,
		Place:       p.Place,
		PlaceNumber: p.PlaceNumber,
		Notes:       p.Notes,
		Schedule:    p.Schedule,
		Attachments: p.Attachments,
		Pictures:    p.Pictures,
		Timestamp:   time.Now().UTC(),
	}
	// Keep the sequences non-null in the persisted JSON, as the legacy
	// store does.
	if rep.Attachments == nil {
		rep.Attachments = []Attachment{}
	}
	if rep.Pictures == nil {
		rep.Pictures = []Picture{}
	}

	if err := s.records.Prepend(ctx, rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// Delete removes the report with the given id; unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}
